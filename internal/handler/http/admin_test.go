package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akarpov/go-music-library/internal/logger"
	"github.com/akarpov/go-music-library/internal/service"
	"github.com/akarpov/go-music-library/internal/utils"
	"github.com/akarpov/go-music-library/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AdminService
// ─────────────────────────────────────────────

// mockAdminService implements service.AdminService for unit tests.
type mockAdminService struct {
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.Admin, models.Token, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAdminService) Login(ctx context.Context, req models.LoginRequest) (models.Admin, models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAdminService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func newHandlerWithAdmin(t *testing.T, admin service.AdminService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{AdminService: admin}, "test-version", logger.Nop())
}

// ─────────────────────────────────────────────
// adminLogin
// ─────────────────────────────────────────────

func TestAdminLogin_Success(t *testing.T) {
	const signedToken = "admin.jwt.token"

	admin := &mockAdminService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.Admin, models.Token, error) {
			return models.Admin{AdminID: 1, Email: req.Email, Name: "root"},
				models.Token{SignedString: signedToken}, nil
		},
	}

	h := newHandlerWithAdmin(t, admin)
	body := jsonBody(t, models.LoginRequest{Email: "admin@example.com", Password: "s3cret"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.adminLogin(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer "+signedToken, rec.Header().Get("Authorization"))
	assert.Contains(t, rec.Body.String(), signedToken)
	assert.Contains(t, rec.Body.String(), "root")
}

// TestAdminLogin_WrongCredentialsIndistinguishable mirrors the listener
// login: unknown admin and wrong password must be indistinguishable.
func TestAdminLogin_WrongCredentialsIndistinguishable(t *testing.T) {
	run := func(loginErr error) *httptest.ResponseRecorder {
		admin := &mockAdminService{
			loginFn: func(_ context.Context, _ models.LoginRequest) (models.Admin, models.Token, error) {
				return models.Admin{}, models.Token{}, loginErr
			},
		}
		h := newHandlerWithAdmin(t, admin)
		body := jsonBody(t, models.LoginRequest{Email: "a@b.c", Password: "x"})
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
		req = injectNopLogger(req)
		rec := httptest.NewRecorder()
		h.adminLogin(rec, req)
		return rec
	}

	unknown := run(service.ErrUnknownAccount)
	wrongPass := run(service.ErrWrongPassword)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, unknown.Body.String(), wrongPass.Body.String())
}

func TestAdminLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAdmin(t, &mockAdminService{})

	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader("{"))
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.adminLogin(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// adminVerify
// ─────────────────────────────────────────────

func TestAdminVerify_EchoesClaims(t *testing.T) {
	h := newHandlerWithAdmin(t, &mockAdminService{})

	claims := &models.AdminClaims{AdminID: 7, Email: "admin@example.com"}
	req := httptest.NewRequest(http.MethodGet, "/api/admin/verify", nil)
	req = injectNopLogger(req)
	req = req.WithContext(context.WithValue(req.Context(), utils.AdminCtxKey, claims))
	rec := httptest.NewRecorder()

	h.adminVerify(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"admin_id":7`)
	assert.Contains(t, rec.Body.String(), "admin@example.com")
}

func TestAdminVerify_NoClaimsInContext(t *testing.T) {
	h := newHandlerWithAdmin(t, &mockAdminService{})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/verify", nil)
	req = injectNopLogger(req)
	rec := httptest.NewRecorder()

	h.adminVerify(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
