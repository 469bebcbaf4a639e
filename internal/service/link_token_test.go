package service

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestLinkTokenCodec_RoundTrip(t *testing.T) {
	codec, err := NewLinkTokenCodec("secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	token := codec.Issue("user@example.com", TokenPurposeEmailConfirm)
	if token == "" {
		t.Fatalf("expected token")
	}

	payload, err := codec.Redeem(token, TokenPurposeEmailConfirm, LinkTokenTTL)
	if err != nil {
		t.Fatalf("redeem: %v", err)
	}
	if payload != "user@example.com" {
		t.Fatalf("unexpected payload: %q", payload)
	}
}

func TestLinkTokenCodec_CrossPurposeRejected(t *testing.T) {
	codec, err := NewLinkTokenCodec("secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	token := codec.Issue("user@example.com", TokenPurposePasswordReset)
	_, err = codec.Redeem(token, TokenPurposeEmailConfirm, LinkTokenTTL)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestLinkTokenCodec_Expired(t *testing.T) {
	codec, err := NewLinkTokenCodec("secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	token := codec.Issue("user@example.com", TokenPurposeEmailConfirm)

	// Adelanta el reloj mas alla de la vigencia.
	codec.now = func() time.Time { return time.Now().UTC().Add(LinkTokenTTL + time.Minute) }
	_, err = codec.Redeem(token, TokenPurposeEmailConfirm, LinkTokenTTL)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestLinkTokenCodec_Tampered(t *testing.T) {
	codec, err := NewLinkTokenCodec("secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	token := codec.Issue("user@example.com", TokenPurposeEmailConfirm)
	parts := strings.Split(token, ".")
	tampered := parts[0] + "x." + parts[1] + "." + parts[2]

	_, err = codec.Redeem(tampered, TokenPurposeEmailConfirm, LinkTokenTTL)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}

	if _, err := codec.Redeem("not-a-token", TokenPurposeEmailConfirm, LinkTokenTTL); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for malformed token, got %v", err)
	}
}

func TestLinkTokenCodec_DifferentSecretRejected(t *testing.T) {
	codecA, err := NewLinkTokenCodec("secret-a")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	codecB, err := NewLinkTokenCodec("secret-b")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}

	token := codecA.Issue("user@example.com", TokenPurposeEmailConfirm)
	if _, err := codecB.Redeem(token, TokenPurposeEmailConfirm, LinkTokenTTL); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestNewLinkTokenCodec_EmptySecret(t *testing.T) {
	if _, err := NewLinkTokenCodec("  "); err == nil {
		t.Fatalf("expected error for empty secret")
	}
}
