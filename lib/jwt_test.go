package lib

import (
	"storebill_server/structs/tables"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGenerateAndParseToken(t *testing.T) {
	user := &tables.User{
		Id:    uuid.New(),
		Phone: "+919876543210",
	}

	token, err := GenerateToken(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ParseToken(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}

	if claims.Sub != user.Id {
		t.Errorf("sub = %s, want %s", claims.Sub, user.Id)
	}
	if claims.Phone != user.Phone {
		t.Errorf("phone = %s, want %s", claims.Phone, user.Phone)
	}
	if claims.Jti == uuid.Nil {
		t.Error("jti should be set")
	}
	if !claims.Exp.After(time.Now()) {
		t.Error("exp should be in the future")
	}
}

func TestParseTokenWrongSecret(t *testing.T) {
	user := &tables.User{Id: uuid.New(), Phone: "+911111111111"}

	token, err := GenerateToken(user, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(token, "secret-b"); err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestParseTokenExpired(t *testing.T) {
	user := &tables.User{Id: uuid.New(), Phone: "+911111111111"}

	token, err := GenerateToken(user, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ParseToken(token, "test-secret"); err == nil {
		t.Error("expected error for expired token")
	}
}

func TestParseTokenGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token", "test-secret"); err == nil {
		t.Error("expected error for malformed token")
	}
}
