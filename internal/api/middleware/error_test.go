package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandler_PanicReturnsErrorEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Logger(), ErrorHandler())
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The panic value stays in the log; the client gets the generic envelope.
	assert.JSONEq(t,
		`{"error":{"code":"INTERNAL_ERROR","message":"An unexpected error occurred"}}`,
		w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
