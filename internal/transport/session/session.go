// Package session carries the authenticated caller's identity across the
// request. It lives below the handler packages so both the router middleware
// and every handler can use it without an import cycle.
package session

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	porttoken "github.com/teamdesk/teamdesk/internal/port/token"
)

const memberIDKey = "memberID"

// RequireAuth verifies the Bearer token and stores the member id for
// handlers. It proves only identity — role checks belong to the services.
func RequireAuth(tokens porttoken.Issuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing Authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid Authorization format"})
			return
		}

		id, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(memberIDKey, id)
		c.Next()
	}
}

// MemberID returns the authenticated caller's id set by RequireAuth.
func MemberID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(memberIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

// CallerID aborts with 401 when no identity is present. Handlers behind
// RequireAuth use it as their first line.
func CallerID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := MemberID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return uuid.Nil, false
	}
	return id, true
}
