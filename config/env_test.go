package config

import (
	"testing"
	"time"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_STRING", "hello")

	if got := getEnvAsString("TEST_STRING", "fallback"); got != "hello" {
		t.Errorf("got %q, want hello", got)
	}
	if got := getEnvAsString("TEST_STRING_MISSING", "fallback"); got != "fallback" {
		t.Errorf("got %q, want fallback", got)
	}
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "forty-two")

	if got := getEnvAsInt("TEST_INT", 7); got != 42 {
		t.Errorf("got %d, want 42", got)
	}
	if got := getEnvAsInt("TEST_INT_BAD", 7); got != 7 {
		t.Errorf("got %d, want fallback 7", got)
	}
	if got := getEnvAsInt("TEST_INT_MISSING", 7); got != 7 {
		t.Errorf("got %d, want fallback 7", got)
	}
}

func TestGetEnvAsTimeDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	t.Setenv("TEST_DURATION_BARE", "30")
	t.Setenv("TEST_DURATION_BAD", "soon")

	if got := getEnvAsTimeDuration("TEST_DURATION", time.Minute); got != 90*time.Second {
		t.Errorf("got %v, want 90s", got)
	}
	// Bare numbers are read as seconds
	if got := getEnvAsTimeDuration("TEST_DURATION_BARE", time.Minute); got != 30*time.Second {
		t.Errorf("got %v, want 30s", got)
	}
	if got := getEnvAsTimeDuration("TEST_DURATION_BAD", time.Minute); got != time.Minute {
		t.Errorf("got %v, want fallback 1m", got)
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BOOL_BAD", "yep")

	if got := getEnvAsBool("TEST_BOOL", false); got != true {
		t.Error("got false, want true")
	}
	if got := getEnvAsBool("TEST_BOOL_BAD", true); got != true {
		t.Error("got false, want fallback true")
	}
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_SLICE", "a, b ,c")

	got := getEnvAsSlice("TEST_SLICE", []string{"x"})
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("got %v, want [a b c]", got)
	}

	fallback := getEnvAsSlice("TEST_SLICE_MISSING", []string{"x"})
	if len(fallback) != 1 || fallback[0] != "x" {
		t.Errorf("got %v, want [x]", fallback)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Server.Port == "" {
		t.Error("server port should have a default")
	}
	if cfg.Database.Name == "" {
		t.Error("database name should have a default")
	}
	if cfg.Cache.PublishTokenExpiry <= 0 {
		t.Error("publish token expiry should have a positive default")
	}
	if cfg.Cache.OTPExpiry <= 0 {
		t.Error("OTP expiry should have a positive default")
	}
}
