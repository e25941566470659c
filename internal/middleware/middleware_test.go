package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realestate-backoffice/internal/auth"
	"realestate-backoffice/internal/errors"
	"realestate-backoffice/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Error struct {
		Message     string            `json:"message"`
		Code        string            `json:"code"`
		FieldErrors map[string]string `json:"fieldErrors"`
	} `json:"error"`
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorHandlerRendersFieldErrors(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) {
		c.Error(errors.FieldValidation("lastName", "поле не может быть пустым"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body := decodeError(t, w)
	assert.Equal(t, errors.ErrCodeValidation, body.Error.Code)
	assert.Equal(t, errors.MsgValidation, body.Error.Message)
	assert.Equal(t, "поле не может быть пустым", body.Error.FieldErrors["lastName"])
}

func TestErrorHandlerUnknownError(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) {
		c.Error(stderrors.New("boom"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, errors.ErrCodeInternal, body.Error.Code)
	assert.Nil(t, body.Error.FieldErrors)
}

func TestErrorHandlerAsksToRetryWhenDatabaseIsDown(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) {
		down := database.Wrap("find_all", "deals", &mysql.MySQLError{Number: 2006, Message: "server has gone away"})
		c.Error(errors.FromDatabase(down, errors.OpSelect, "Deal", nil))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "5", w.Header().Get("Retry-After"))
	assert.Equal(t, errors.ErrCodeDatabaseUnavailable, decodeError(t, w).Error.Code)
}

func TestAuthMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", AuthMiddleware("secret"), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(OperatorKey))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	w = serve(r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := auth.GenerateJWT("manager", "secret", time.Minute)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	w = serve(r, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "manager", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token.Token)
	wrong := gin.New()
	wrong.Use(ErrorHandler())
	wrong.GET("/", AuthMiddleware("other"), func(c *gin.Context) { c.Status(http.StatusOK) })
	assert.Equal(t, http.StatusUnauthorized, serve(wrong, req).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.Use(RateLimitMiddleware(PerMinute(1, 2)))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, serve(r, httptest.NewRequest(http.MethodGet, "/", nil)).Code)
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, errors.ErrCodeRateLimited, decodeError(t, w).Error.Code)
}

func TestRateLimiterPrune(t *testing.T) {
	rl := NewRateLimiter(1000, 1)
	rl.getLimiter("10.0.0.1")
	rl.prune()
	assert.Empty(t, rl.limiters)
}

func TestLoggingMiddlewareRequestID(t *testing.T) {
	r := gin.New()
	r.Use(LoggingMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = serve(r, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestSecureHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecureHeaders(SecureHeaderOptions{}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/api/clients", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "frame-ancestors 'none'")
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))
	assert.Empty(t, w.Header().Get("Cache-Control"))

	w = serve(r, httptest.NewRequest(http.MethodGet, "/api/clients", nil))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestSecureHeadersWithHSTS(t *testing.T) {
	r := gin.New()
	r.Use(SecureHeaders(SecureHeaderOptions{HSTS: true}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "max-age=31536000; includeSubDomains", w.Header().Get("Strict-Transport-Security"))
}
