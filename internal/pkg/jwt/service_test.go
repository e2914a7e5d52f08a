package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func testService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := testService()
	id := uuid.New()

	tok, err := svc.GenerateAccessToken(id, "user@example.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.UserID != id || claims.Email != "user@example.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token, got %s", claims.TokenType)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token misdetected as refresh")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := testService()
	id := uuid.New()

	tok, err := svc.GenerateRefreshToken(id)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := svc.ValidateToken(tok)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("expected refresh token, got %s", claims.TokenType)
	}
	if claims.Email != "" {
		t.Fatalf("refresh token must not carry an email")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	if _, err := testService().ValidateToken("not.a.token"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	other := NewHMACService("different", "secrets", 15*time.Minute, 24*time.Hour)
	tok, err := other.GenerateAccessToken(uuid.New(), "a@b.co")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, err := testService().ValidateToken(tok); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	svc := testService()
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	tok, err := svc.GenerateAccessToken(uuid.New(), "a@b.co")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	svc.now = time.Now
	if _, err := svc.ValidateToken(tok); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}
