package service

import (
	"errors"
	"testing"
	"time"

	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/domain"
)

func TestJWTService_GenerateParseAccess(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)
	user := domain.User{
		ID:       "u1",
		Username: "alice",
		Email:    "alice@example.com",
	}

	token, err := svc.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	claims, err := svc.ParseAccessToken(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != "u1" || claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestJWTService_WrongSecretRejected(t *testing.T) {
	svcA := NewJWTService("secret-a", 15*time.Minute)
	svcB := NewJWTService("secret-b", 15*time.Minute)

	token, err := svcA.GenerateAccessToken(domain.User{ID: "u1"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svcB.ParseAccessToken(token); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}

func TestJWTService_EmptyTokenRejected(t *testing.T) {
	svc := NewJWTService("secret", 15*time.Minute)
	if _, err := svc.ParseAccessToken("  "); !errors.Is(err, ErrJWTInvalid) {
		t.Fatalf("expected ErrJWTInvalid, got %v", err)
	}
}
