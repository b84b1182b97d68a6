package http_test

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	handler "github.com/kartavyango/sahaaya/internal/handler/http"
	mocks "github.com/kartavyango/sahaaya/internal/handler/http/mocks"
)

func TestHandleGoogleLogin_SetsStateCookieAndRedirects(t *testing.T) {
	h := handler.NewAuthHandler(mocks.NewMockUserUsecase(), "http://localhost:8080")
	r := gin.Default()
	r.GET("/auth/google/login", h.HandleGoogleLogin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/google/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)

	var state string
	for _, c := range w.Result().Cookies() {
		if c.Name == "oauthState" {
			state = c.Value
		}
	}
	require.NotEmpty(t, state, "expected an oauthState cookie")

	// The state token is 16 random bytes, base64-encoded.
	raw, err := base64.URLEncoding.DecodeString(state)
	require.NoError(t, err)
	assert.Len(t, raw, 16)

	// The redirect carries the same state back to the provider.
	location := w.Header().Get("Location")
	assert.Contains(t, location, "state=")
}

func TestHandleGoogleCallback_RejectsMismatchedState(t *testing.T) {
	h := handler.NewAuthHandler(mocks.NewMockUserUsecase(), "http://localhost:8080")
	r := gin.Default()
	r.GET("/auth/google/callback", h.HandleGoogleCallback)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/auth/google/callback?state=forged&code=abc", nil)
	req.AddCookie(&http.Cookie{Name: "oauthState", Value: "expected"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid CSRF state token")
}
