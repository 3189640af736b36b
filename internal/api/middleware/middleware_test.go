package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"autoscribe/internal/api/errors"
	apperrors "autoscribe/internal/app/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), ErrorHandler(zap.NewNop()), StructuredLogging(zap.NewNop(), "/api/health"))
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	r := newRouter()
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDKey)) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Body.String())
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandleError(t *testing.T) {
	r := newRouter()
	r.GET("/bad", func(c *gin.Context) { HandleError(c, apperrors.ErrInvalidYouTubeURL) })
	r.GET("/upstream", func(c *gin.Context) {
		HandleError(c, apperrors.UpstreamStatus("AssemblyAI", 500, "oops"))
	})
	r.GET("/plain", func(c *gin.Context) { HandleError(c, stderrors.New("disk on fire")) })

	tests := []struct {
		path   string
		status int
		msg    string
		kind   string
	}{
		{"/bad", http.StatusBadRequest, "invalid YouTube URL", string(errors.KindBadRequest)},
		{"/upstream", http.StatusBadGateway, "AssemblyAI API error (status 500): oops", string(errors.KindUpstream)},
		{"/plain", http.StatusInternalServerError, "Internal server error", string(errors.KindInternal)},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.msg, body["error"])
			assert.Equal(t, tt.kind, body["kind"])
			assert.NotEmpty(t, body["request_id"])
		})
	}
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	r := newRouter()
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decode(t, w)["error"])
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORS(DefaultCORSConfig()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "3600", w.Header().Get("Access-Control-Max-Age"))
}

func TestMaxBodySize(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodySize(4))
	r.POST("/x", func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"url":"https://youtu.be/x"}`)))
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

type urlRequest struct {
	URL string `json:"url" binding:"required"`
}

func TestValidateRequest(t *testing.T) {
	r := newRouter()
	r.POST("/v", func(c *gin.Context) {
		var req urlRequest
		if err := ValidateRequest(c, &req); err != nil {
			HandleError(c, err)
			return
		}
		c.String(http.StatusOK, req.URL)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v", strings.NewReader(`{}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Validation failed", body["error"])
	assert.Equal(t, map[string]interface{}{"url": "is required"}, body["details"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v", strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, map[string]interface{}{"request": "invalid JSON format"}, decode(t, w)["details"])
}
