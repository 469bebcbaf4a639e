package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Propositos de token; cada uno es un namespace independiente, un token
// emitido para uno no se puede canjear en el otro.
const (
	TokenPurposeEmailConfirm  = "email-confirm"
	TokenPurposePasswordReset = "password-reset"
)

// LinkTokenTTL es la vigencia de los links de verificacion y reset.
const LinkTokenTTL = time.Hour

var (
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenExpired = errors.New("token expired")
)

// LinkTokenCodec emite y valida tokens firmados con un solo payload
// (un email) atado a un proposito y a su hora de emision. No guarda
// estado: la firma y la edad son toda la validacion.
type LinkTokenCodec struct {
	secret []byte
	now    func() time.Time
}

func NewLinkTokenCodec(secret string) (*LinkTokenCodec, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token secret is required")
	}
	return &LinkTokenCodec{
		secret: []byte(secret),
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Issue firma (payload, purpose, ahora) y devuelve el token opaco.
func (c *LinkTokenCodec) Issue(payload, purpose string) string {
	payloadPart := base64.RawURLEncoding.EncodeToString([]byte(payload))
	tsPart := base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatInt(c.now().Unix(), 10)))
	sig := c.sign(payloadPart, tsPart, purpose)
	return payloadPart + "." + tsPart + "." + sig
}

// Redeem valida firma, proposito y edad, y devuelve el payload original.
func (c *LinkTokenCodec) Redeem(token, purpose string, maxAge time.Duration) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", ErrTokenInvalid
	}
	payloadPart, tsPart, sig := parts[0], parts[1], parts[2]

	expected := c.sign(payloadPart, tsPart, purpose)
	if !hmac.Equal([]byte(sig), []byte(expected)) {
		return "", ErrTokenInvalid
	}

	tsBytes, err := base64.RawURLEncoding.DecodeString(tsPart)
	if err != nil {
		return "", ErrTokenInvalid
	}
	issuedAt, err := strconv.ParseInt(string(tsBytes), 10, 64)
	if err != nil {
		return "", ErrTokenInvalid
	}
	if c.now().Sub(time.Unix(issuedAt, 0)) > maxAge {
		return "", ErrTokenExpired
	}

	payload, err := base64.RawURLEncoding.DecodeString(payloadPart)
	if err != nil {
		return "", ErrTokenInvalid
	}
	return string(payload), nil
}

// sign deriva una clave por proposito para que los namespaces no se crucen.
func (c *LinkTokenCodec) sign(payloadPart, tsPart, purpose string) string {
	key := sha256.Sum256([]byte(fmt.Sprintf("%s:%s", c.secret, purpose)))
	mac := hmac.New(sha256.New, key[:])
	mac.Write([]byte(payloadPart + "." + tsPart))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
