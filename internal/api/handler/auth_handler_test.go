package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/sellora/storefront-admin/internal/api/middleware"
	"github.com/sellora/storefront-admin/internal/core/domain"
)

type stubAuthService struct {
	users map[string]*domain.User
}

func newStubAuthService(users ...*domain.User) *stubAuthService {
	s := &stubAuthService{users: make(map[string]*domain.User)}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *stubAuthService) Validate(_ context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrMissingCredentials
	}
	user, ok := s.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if user.Password != password {
		return nil, domain.ErrIncorrectPassword
	}
	clone := *user
	clone.IsAdmin = true
	return &clone, nil
}

type stubSessions struct {
	sessions map[string]*domain.User
	counter  int
}

func newStubSessions() *stubSessions {
	return &stubSessions{sessions: make(map[string]*domain.User)}
}

func (m *stubSessions) Login(_ context.Context, user *domain.User) (string, error) {
	m.counter++
	token := "tok-" + user.Username
	m.sessions[token] = user
	return token, nil
}

func (m *stubSessions) Logout(_ context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func (m *stubSessions) Current(_ context.Context, token string) (*domain.User, error) {
	user, ok := m.sessions[token]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (m *stubSessions) TTL() time.Duration { return 24 * time.Hour }

func postLogin(t *testing.T, h *AuthHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

var alice = &domain.User{ID: 1, Username: "alice", Email: "alice@example.com", Password: "pw1"}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(alice), newStubSessions(), false)

	rec := postLogin(t, h, `{"username":"alice","password":"pw1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["username"] != "alice" {
		t.Fatalf("unexpected username: %v", resp["username"])
	}
	if resp["isAdmin"] != true {
		t.Fatalf("expected forced admin flag, got %v", resp["isAdmin"])
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password serialized in response")
	}

	cookies := rec.Result().Cookies()
	var found *http.Cookie
	for _, ck := range cookies {
		if ck.Name == middleware.SessionCookie {
			found = ck
		}
	}
	if found == nil {
		t.Fatalf("no session cookie set")
	}
	if found.Value == "" || !found.HttpOnly {
		t.Fatalf("session cookie not opaque http-only: %+v", found)
	}
}

func TestAuthHandler_Login_RejectionsAreIndistinguishable(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(alice), newStubSessions(), false)

	unknown := postLogin(t, h, `{"username":"ghost","password":"pw1"}`)
	wrongPw := postLogin(t, h, `{"username":"alice","password":"wrong"}`)
	missing := postLogin(t, h, `{"username":"alice","password":""}`)

	for name, rec := range map[string]*httptest.ResponseRecorder{
		"unknown user": unknown, "wrong password": wrongPw, "missing password": missing,
	} {
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %d", name, rec.Code)
		}
	}

	// Identical bodies: the response must not reveal which check failed.
	if unknown.Body.String() != wrongPw.Body.String() || wrongPw.Body.String() != missing.Body.String() {
		t.Fatalf("rejection bodies differ:\n%s\n%s\n%s", unknown.Body.String(), wrongPw.Body.String(), missing.Body.String())
	}

	if !strings.Contains(unknown.Body.String(), "Invalid username or password") {
		t.Fatalf("unexpected rejection message: %s", unknown.Body.String())
	}
}

func TestAuthHandler_Login_NoCookieOnRejection(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(alice), newStubSessions(), false)

	rec := postLogin(t, h, `{"username":"alice","password":"wrong"}`)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie {
			t.Fatalf("session cookie set on failed login")
		}
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	sessions := newStubSessions()
	token, _ := sessions.Login(context.Background(), alice)
	h := NewAuthHandler(newStubAuthService(alice), sessions, false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("Logout returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if _, err := sessions.Current(context.Background(), token); err == nil {
		t.Fatalf("session survived logout")
	}

	var cleared bool
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookie && ck.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Fatalf("session cookie not cleared")
	}
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	h := NewAuthHandler(newStubAuthService(), newStubSessions(), false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()

	if err := h.Logout(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Logout without session returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_BehindGate(t *testing.T) {
	sessions := newStubSessions()
	token, _ := sessions.Login(context.Background(), alice)
	h := NewAuthHandler(newStubAuthService(alice), sessions, false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	gated := middleware.RequireSession(sessions)(h.Me)
	if err := gated(c); err != nil {
		t.Fatalf("gated Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"username":"alice"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Me_LogoutThenReplay(t *testing.T) {
	sessions := newStubSessions()
	token, _ := sessions.Login(context.Background(), alice)
	h := NewAuthHandler(newStubAuthService(alice), sessions, false)

	_ = sessions.Logout(context.Background(), token)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	gated := middleware.RequireSession(sessions)(h.Me)
	if err := gated(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("replayed token accepted after logout: %d", rec.Code)
	}
}
