package cookie

import (
	"net/http"
	"time"

	"lending-core/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

// Jar writes the session token cookies. Both cookies are HttpOnly.
type Jar struct {
	cfg config.CookieConfig
}

func NewJar(cfg config.CookieConfig) Jar {
	return Jar{cfg: cfg}
}

func (j Jar) SetTokens(c *gin.Context, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(sameSite(j.cfg.SameSite))
	j.set(c, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	j.set(c, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

func (j Jar) Clear(c *gin.Context) {
	c.SetSameSite(sameSite(j.cfg.SameSite))
	j.set(c, AccessTokenCookieName, "", -1)
	j.set(c, RefreshTokenCookieName, "", -1)
}

func (j Jar) set(c *gin.Context, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", j.cfg.Domain, j.cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSite(value string) http.SameSite {
	switch value {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
