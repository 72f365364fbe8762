package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"workshop_xpto/internal/auth"
	"workshop_xpto/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAdminPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		configured string
		presented  string
		wantAdmin  bool
	}{
		{name: "matching key", configured: "s3cret", presented: "s3cret", wantAdmin: true},
		{name: "wrong key", configured: "s3cret", presented: "guess", wantAdmin: false},
		{name: "no header", configured: "s3cret", presented: "", wantAdmin: false},
		{name: "admin disabled", configured: "", presented: "", wantAdmin: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got auth.Principal
			r := gin.New()
			r.Use(AdminPrincipal(tc.configured, logger.NewNop()))
			r.GET("/", func(c *gin.Context) {
				got = auth.FromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.presented != "" {
				req.Header.Set(HeaderAdminKey, tc.presented)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tc.wantAdmin, got.IsAdmin())
		})
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID)
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Header().Get(HeaderRequestID))
}
