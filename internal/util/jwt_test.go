package util

import (
	"testing"
	"time"
)

func TestJWTManagerRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, expiresAt, err := manager.Generate("user-123")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatal("expected expiry in the future")
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != "user-123" {
		t.Fatalf("expected user id 'user-123', got %q", claims.UserID)
	}
}

func TestJWTManagerRejectsWrongSecret(t *testing.T) {
	token, _, err := NewJWTManager("secret-a", time.Hour).Generate("user-123")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := NewJWTManager("secret-b", time.Hour).Parse(token); err == nil {
		t.Fatal("expected error for token signed with a different secret")
	}
}

func TestJWTManagerRejectsExpiredToken(t *testing.T) {
	token, _, err := NewJWTManager("secret", -time.Minute).Generate("user-123")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if _, err := NewJWTManager("secret", -time.Minute).Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}
