//go:build unit

package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lending-core/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJarSetTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NewJar(config.CookieConfig{Secure: true, SameSite: "Strict"}).
		SetTokens(c, "access", "refresh", 15*time.Minute, time.Hour)

	cookies := map[string]*http.Cookie{}
	for _, ck := range w.Result().Cookies() {
		cookies[ck.Name] = ck
	}
	require.Contains(t, cookies, AccessTokenCookieName)
	require.Contains(t, cookies, RefreshTokenCookieName)

	access := cookies[AccessTokenCookieName]
	assert.Equal(t, "access", access.Value)
	assert.Equal(t, 900, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)
	assert.Equal(t, 3600, cookies[RefreshTokenCookieName].MaxAge)
}

func TestGetAccessToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(&http.Cookie{Name: AccessTokenCookieName, Value: "tok"})

	assert.Equal(t, "tok", GetAccessToken(c))
	assert.Empty(t, GetRefreshToken(c))
}
