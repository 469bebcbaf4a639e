package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/domain"
	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/email"
	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/repository"
)

var (
	ErrMissingFields      = errors.New("missing username, email, or password")
	ErrPasswordRequired   = errors.New("new password is required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrRateLimited        = errors.New("rate limited")
)

// AuthService coordina registro, login, verificacion de email y reset
// de password sobre el repositorio de usuarios.
type AuthService struct {
	logger      *zap.Logger
	users       repository.UserRepository
	tokens      *LinkTokenCodec
	emailSender email.Sender
	limiter     ResetRateLimiter
	baseURL     string
}

func NewAuthService(
	logger *zap.Logger,
	users repository.UserRepository,
	tokens *LinkTokenCodec,
	emailSender email.Sender,
	limiter ResetRateLimiter,
	baseURL string,
) *AuthService {
	if limiter == nil {
		limiter = NewResetRateLimiter(time.Hour, 5)
	}
	return &AuthService{
		logger:      logger,
		users:       users,
		tokens:      tokens,
		emailSender: emailSender,
		limiter:     limiter,
		baseURL:     strings.TrimRight(baseURL, "/"),
	}
}

// Register crea el usuario y despacha el correo de verificacion. El
// despacho es best-effort: una falla del correo no revierte el alta.
func (s *AuthService) Register(ctx context.Context, username, emailAddr, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	emailAddr = normalizeEmail(emailAddr)
	if username == "" || emailAddr == "" || password == "" {
		return domain.User{}, ErrMissingFields
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        emailAddr,
		PasswordHash: string(hashBytes),
		IsVerified:   false,
		CreatedAt:    time.Now().UTC(),
	}

	// El indice unico decide los conflictos; nada de pre-chequeos.
	if err := s.users.Create(ctx, user); err != nil {
		return domain.User{}, err
	}

	token := s.tokens.Issue(emailAddr, TokenPurposeEmailConfirm)
	link := s.baseURL + "/auth/verify-email/" + token
	s.dispatchEmail(ctx, "Verify Your Email for OpenQQuantify", emailAddr, "Click to verify your email: "+link)

	return user, nil
}

// Authenticate valida credenciales. Usuario inexistente y password
// incorrecto colapsan en el mismo error para no filtrar cual fallo.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	// Nota: el login no exige email verificado.

	now := time.Now().UTC()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn("update last login failed", zap.Error(err), zap.String("user_id", user.ID))
	} else {
		user.LastLoginAt = &now
	}
	return user, nil
}

// VerifyEmail canjea el token de confirmacion y marca el usuario como
// verificado. Repetir el canje con un token valido es idempotente.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) (alreadyVerified bool, err error) {
	emailAddr, err := s.tokens.Redeem(token, TokenPurposeEmailConfirm, LinkTokenTTL)
	if err != nil {
		return false, err
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	if user.IsVerified {
		return true, nil
	}
	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return false, err
	}
	return false, nil
}

// RequestPasswordReset emite el token de reset y despacha el correo con
// el link. Responde not found si el email no existe.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	emailAddr = normalizeEmail(emailAddr)
	if emailAddr == "" {
		return ErrUserNotFound
	}
	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	// El limiter se consulta despues del lookup para no gastar cupo en
	// emails inexistentes.
	if s.limiter != nil && !s.limiter.Allow(emailAddr) {
		return ErrRateLimited
	}

	// La marca de solicitud se persiste antes de despachar: si la
	// escritura falla, el correo no sale.
	if err := s.users.SetResetRequestedAt(ctx, user.ID, time.Now().UTC()); err != nil {
		return err
	}

	token := s.tokens.Issue(emailAddr, TokenPurposePasswordReset)
	link := s.baseURL + "/auth/reset-password/" + token
	s.dispatchEmail(ctx, "Password Reset for OpenQQuantify", emailAddr, "Click to reset your password: "+link)
	return nil
}

// ResetPassword canjea el token de reset, reemplaza el hash y limpia la
// marca de solicitud.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	emailAddr, err := s.tokens.Redeem(token, TokenPurposePasswordReset, LinkTokenTTL)
	if err != nil {
		return err
	}

	user, err := s.users.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrUserNotFound
		}
		return err
	}

	if strings.TrimSpace(newPassword) == "" {
		return ErrPasswordRequired
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, user.ID, string(hashBytes))
}

// GetUser devuelve el usuario por id.
func (s *AuthService) GetUser(ctx context.Context, id string) (domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

func (s *AuthService) dispatchEmail(ctx context.Context, subject, recipient, body string) {
	if s.emailSender == nil {
		return
	}
	sendCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.emailSender.Send(sendCtx, subject, recipient, body); err != nil {
		s.logger.Warn("email dispatch failed",
			zap.Error(err),
			zap.String("subject", subject),
			zap.String("recipient", recipient),
		)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
