package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/soufianez0uhair/shopsmart-api/internal/core/domain"
)

type stubUserService struct {
	registerFn func(ctx context.Context, user *domain.User) (string, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	profileFn  func(ctx context.Context, email string) (*domain.User, error)
}

func (s *stubUserService) Register(ctx context.Context, user *domain.User) (string, error) {
	return s.registerFn(ctx, user)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubUserService) Profile(ctx context.Context, email string) (*domain.User, error) {
	return s.profileFn(ctx, email)
}

const validRegisterBody = `{"firstName":"test","lastName":"test","email":"test@test.com","phoneNumber":"+212600000000","password":"test@123"}`

func newJSONContext(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, user *domain.User) (string, error) {
			if user.FirstName != "test" || user.Email != "test@test.com" || user.Password != "test@123" {
				t.Fatalf("unexpected payload: %+v", user)
			}
			return "someToken", nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, "/api/v1/users/register", validRegisterBody)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "someToken" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestUserHandler_Register_ValidationStopsServiceCall(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, user *domain.User) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewUserHandler(stub)

	body := `{"firstName":"","lastName":"test","email":"test@test.com","phoneNumber":"+212600000000","password":"test@123"}`
	c, _ := newJSONContext(e, "/api/v1/users/register", body)
	err := h.Register(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Message != "First name is required" {
		t.Fatalf("unexpected message: %q", ve.Message)
	}
}

func TestUserHandler_Register_DuplicateEmailPassedThrough(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, user *domain.User) (string, error) {
			return "", domain.ErrEmailInUse
		},
	}
	h := NewUserHandler(stub)

	c, _ := newJSONContext(e, "/api/v1/users/register", validRegisterBody)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestUserHandler_Register_InvalidPayload(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		registerFn: func(ctx context.Context, user *domain.User) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newJSONContext(e, "/api/v1/users/register", "not-json")
	err := h.Register(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestUserHandler_Login_Success(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "test@test.com" || password != "test@123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "someToken", nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newJSONContext(e, "/api/v1/users/login", `{"email":"test@test.com","password":"test@123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "someToken" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestUserHandler_Login_InvalidEmail(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newJSONContext(e, "/api/v1/users/login", `{"email":"test","password":"test@123"}`)
	err := h.Login(c)

	var ve *domain.ValidationError
	if !errors.As(err, &ve) || ve.Message != "Invalid email" {
		t.Fatalf("expected Invalid email, got %v", err)
	}
}

func TestUserHandler_Me(t *testing.T) {
	e := echo.New()
	stub := &stubUserService{
		profileFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "test@test.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return &domain.User{FirstName: "test", Email: email}, nil
		},
	}
	h := NewUserHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("email", "test@test.com")

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("password must never be serialized: %s", rec.Body.String())
	}
}

func TestUserHandler_Me_MissingClaims(t *testing.T) {
	e := echo.New()
	h := NewUserHandler(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
