package lib

import (
	"strings"
	"testing"
)

func TestGenerateRandomToken(t *testing.T) {
	a, err := GenerateRandomToken()
	if err != nil {
		t.Fatalf("GenerateRandomToken failed: %v", err)
	}
	b, err := GenerateRandomToken()
	if err != nil {
		t.Fatalf("GenerateRandomToken failed: %v", err)
	}

	if a == b {
		t.Error("two tokens should never collide")
	}
	if len(a) == 0 {
		t.Error("token is empty")
	}
}

func TestGenerateOTP(t *testing.T) {
	otp, err := GenerateOTP()
	if err != nil {
		t.Fatalf("GenerateOTP failed: %v", err)
	}
	if len(otp) != 6 {
		t.Fatalf("expected 6 digits, got %q", otp)
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			t.Errorf("non-digit %q in OTP %q", r, otp)
		}
	}
}

func TestGenerateBillNumber(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		n, err := GenerateBillNumber()
		if err != nil {
			t.Fatalf("GenerateBillNumber failed: %v", err)
		}
		if !strings.HasPrefix(n, "SB-") {
			t.Fatalf("bill number %q missing SB- prefix", n)
		}
		if len(n) != len("SB-")+8 {
			t.Fatalf("bill number %q has wrong length", n)
		}
		if seen[n] {
			t.Fatalf("duplicate bill number %q after %d draws", n, i)
		}
		seen[n] = true
	}
}
