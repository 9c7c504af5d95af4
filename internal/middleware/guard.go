package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/barberbook-web/internal/models"
	"github.com/barberbook/barberbook-web/internal/session"
)

const ContextSession = "session"

// RequireRole is the single routing guard every protected page shares:
// no session → login; wrong role → that role's home. No data fetch
// happens before the redirect decision.
func RequireRole(sessions *session.Manager, role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := sessions.Current(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if sess.User.Role != role {
			c.Redirect(http.StatusFound, HomeFor(sess.User.Role))
			c.Abort()
			return
		}

		c.Set(ContextSession, sess)
		c.Next()
	}
}

// HomeFor maps a role to its dashboard route.
func HomeFor(role models.Role) string {
	if role == models.RoleBarber {
		return "/shop/dashboard"
	}
	return "/dashboard"
}

// CurrentSession returns the session placed by RequireRole.
func CurrentSession(c *gin.Context) *session.Session {
	return c.MustGet(ContextSession).(*session.Session)
}
