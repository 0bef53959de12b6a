package lib

import (
	"strings"
	"testing"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple", nil)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("hash has wrong prefix: %s", hash)
	}

	ok, err := VerifyPassword("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if !ok {
		t.Error("correct password did not verify")
	}

	ok, err = VerifyPassword("wrong password", hash)
	if err != nil {
		t.Fatalf("VerifyPassword failed: %v", err)
	}
	if ok {
		t.Error("wrong password verified")
	}
}

func TestHashPasswordUniqueSalt(t *testing.T) {
	a, err := HashPassword("secret", nil)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	b, err := HashPassword("secret", nil)
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if a == b {
		t.Error("two hashes of the same password should differ by salt")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$argon2i$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=1,p=4$c2FsdA",
	}
	for _, c := range cases {
		if _, err := VerifyPassword("anything", c); err == nil {
			t.Errorf("expected error for malformed hash %q", c)
		}
	}
}
