package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fcurti/falegnameria-backend/internal/util"
)

// AuthAdmin guards the admin panel. The session is a signed token carried in
// a cookie; a missing, invalid or expired token redirects the browser to the
// login page instead of returning an API error.
func AuthAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(util.SessionCookieName)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		info, err := util.GetTokenMgr().CheckSession(cookie)
		if err != nil || !info.Admin {
			c.Redirect(http.StatusSeeOther, "/admin/login")
			c.Abort()
			return
		}

		c.Next()
	}
}
