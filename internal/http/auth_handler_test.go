package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/domain"
	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/repository"
	"github.com/ValenciaW9/OpenQQuantify-Agents-AI-plugin/internal/service"
)

type mockUserRepo struct {
	usersByID     map[string]domain.User
	idsByUsername map[string]string
	idsByEmail    map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:     make(map[string]domain.User),
		idsByUsername: make(map[string]string),
		idsByEmail:    make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	if _, ok := m.idsByUsername[user.Username]; ok {
		return repository.ErrUsernameTaken
	}
	if _, ok := m.idsByEmail[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	m.usersByID[user.ID] = user
	m.idsByUsername[user.Username] = user.ID
	m.idsByEmail[user.Email] = user.ID
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (domain.User, error) {
	id, ok := m.idsByUsername[username]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.idsByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func (m *mockUserRepo) MarkVerified(_ context.Context, id string) error {
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.IsVerified = true
	m.usersByID[id] = user
	return nil
}

func (m *mockUserRepo) SetResetRequestedAt(_ context.Context, id string, at time.Time) error {
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.ResetRequestedAt = &at
	m.usersByID[id] = user
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id, passwordHash string) error {
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.PasswordHash = passwordHash
	user.ResetRequestedAt = nil
	m.usersByID[id] = user
	return nil
}

func (m *mockUserRepo) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	user, ok := m.usersByID[id]
	if !ok {
		return pgx.ErrNoRows
	}
	user.LastLoginAt = &at
	m.usersByID[id] = user
	return nil
}

type mockEmailSender struct {
	lastSubject   string
	lastRecipient string
	lastBody      string
	err           error
}

func (m *mockEmailSender) Send(_ context.Context, subject, recipient, body string) error {
	m.lastSubject = subject
	m.lastRecipient = recipient
	m.lastBody = body
	return m.err
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(string) bool { return true }

func setupAuthRouter(t *testing.T, repo repository.UserRepository, sender *mockEmailSender) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec, err := service.NewLinkTokenCodec("test-secret")
	if err != nil {
		t.Fatalf("new codec: %v", err)
	}
	authSvc := service.NewAuthService(zap.NewNop(), repo, codec, sender, allowAllLimiter{}, "http://localhost:8080")
	jwtSvc := service.NewJWTService("test-secret", 15*time.Minute)

	r := gin.New()
	h := NewAuthHandler(zap.NewNop(), authSvc, jwtSvc)
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.GET("/auth/verify-email/:token", h.VerifyEmail)
	r.POST("/auth/request-reset", h.RequestReset)
	r.POST("/auth/reset-password/:token", h.ResetPassword)
	r.GET("/auth/me", JWTAuthMiddleware(jwtSvc), h.Me)
	return r
}

func performRequest(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestRegisterEndpoint(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockEmailSender{}
	r := setupAuthRouter(t, repo, sender)

	rec := performRequest(r, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if sender.lastRecipient != "alice@example.com" {
		t.Fatalf("expected verification email, got recipient %q", sender.lastRecipient)
	}

	// Campo faltante.
	rec = performRequest(r, http.MethodPost, "/auth/register", gin.H{
		"username": "bob",
		"email":    "bob@example.com",
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	// Username duplicado con email nuevo.
	rec = performRequest(r, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"email":    "fresh@example.com",
		"password": "pw",
	}, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Username already exists" {
		t.Fatalf("unexpected error: %v", body["error"])
	}

	// Email duplicado con username nuevo.
	rec = performRequest(r, http.MethodPost, "/auth/register", gin.H{
		"username": "carol",
		"email":    "alice@example.com",
		"password": "pw",
	}, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["error"] != "Email already exists" {
		t.Fatalf("unexpected error: %v", body["error"])
	}
}

func TestRegisterEndpointAcceptsNonRFCEmail(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockEmailSender{}
	r := setupAuthRouter(t, repo, sender)

	// Cualquier email no vacio se acepta; no hay validacion de formato.
	rec := performRequest(r, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"email":    "not-an-address",
		"password": "pw",
	}, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if sender.lastRecipient != "not-an-address" {
		t.Fatalf("expected verification email dispatch, got recipient %q", sender.lastRecipient)
	}

	rec = performRequest(r, http.MethodPost, "/auth/request-reset", gin.H{"email": "also not rfc"}, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown email, got %d", rec.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	repo := newMockUserRepo()
	r := setupAuthRouter(t, repo, &mockEmailSender{})

	performRequest(r, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	}, nil)

	rec := performRequest(r, http.MethodPost, "/auth/login", gin.H{
		"username": "alice",
		"password": "hunter22",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	token, _ := body["access_token"].(string)
	if token == "" {
		t.Fatalf("expected access_token in response")
	}

	rec = performRequest(r, http.MethodPost, "/auth/login", gin.H{
		"username": "alice",
		"password": "wrong",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/auth/login", gin.H{
		"username": "ghost",
		"password": "whatever",
	}, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", rec.Code)
	}
}

func TestVerifyEmailEndpoint(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockEmailSender{}
	r := setupAuthRouter(t, repo, sender)

	performRequest(r, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "pw",
	}, nil)

	token := sender.lastBody[strings.LastIndexByte(sender.lastBody, '/')+1:]

	rec := performRequest(r, http.MethodGet, "/auth/verify-email/"+token, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if body := decodeBody(t, rec); body["message"] != "Email verified successfully!" {
		t.Fatalf("unexpected message: %v", body["message"])
	}

	// Segundo canje: idempotente.
	rec = performRequest(r, http.MethodGet, "/auth/verify-email/"+token, nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on repeat, got %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["message"] != "Email already verified." {
		t.Fatalf("unexpected message: %v", body["message"])
	}

	rec = performRequest(r, http.MethodGet, "/auth/verify-email/garbage", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad token, got %d", rec.Code)
	}
}

func TestPasswordResetEndpoints(t *testing.T) {
	repo := newMockUserRepo()
	sender := &mockEmailSender{}
	r := setupAuthRouter(t, repo, sender)

	performRequest(r, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "old-pw",
	}, nil)

	rec := performRequest(r, http.MethodPost, "/auth/request-reset", gin.H{"email": "ghost@example.com"}, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown email, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/auth/request-reset", gin.H{"email": "alice@example.com"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	token := sender.lastBody[strings.LastIndexByte(sender.lastBody, '/')+1:]

	rec = performRequest(r, http.MethodPost, "/auth/reset-password/"+token, gin.H{"password": ""}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty password, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/auth/reset-password/"+token, gin.H{"password": "new-pw"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = performRequest(r, http.MethodPost, "/auth/reset-password/garbage", gin.H{"password": "x"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad token, got %d", rec.Code)
	}

	// Login con el password nuevo.
	rec = performRequest(r, http.MethodPost, "/auth/login", gin.H{
		"username": "alice",
		"password": "new-pw",
	}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with new password, got %d", rec.Code)
	}
}

func TestMeEndpoint(t *testing.T) {
	repo := newMockUserRepo()
	r := setupAuthRouter(t, repo, &mockEmailSender{})

	performRequest(r, http.MethodPost, "/auth/register", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "pw",
	}, nil)
	rec := performRequest(r, http.MethodPost, "/auth/login", gin.H{
		"username": "alice",
		"password": "pw",
	}, nil)
	token, _ := decodeBody(t, rec)["access_token"].(string)

	rec = performRequest(r, http.MethodGet, "/auth/me", nil, map[string]string{
		"Authorization": "Bearer " + token,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	user, _ := body["user"].(map[string]any)
	if user == nil || user["username"] != "alice" {
		t.Fatalf("unexpected user payload: %v", body)
	}

	rec = performRequest(r, http.MethodGet, "/auth/me", nil, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}
