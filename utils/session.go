package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SessionCookieName carries the signed session token, HTTP-only, site-wide.
const SessionCookieName = "stayhub_session"

func SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(SessionCookieName, token, int(SessionTokenTTL.Seconds()), "/", "", secure, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	secure := gin.Mode() == gin.ReleaseMode
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}

func GetSessionCookie(c *gin.Context) (string, bool) {
	token, err := c.Cookie(SessionCookieName)
	if err != nil || token == "" {
		return "", false
	}
	return token, true
}
