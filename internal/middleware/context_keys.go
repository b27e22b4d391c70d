package middleware

import "github.com/gin-gonic/gin"

// contextKey is the type of keys this package stores in contexts.
// Using a custom type prevents collisions.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	adminSubjectKey = contextKey("adminSubject")
)

// GetAdminSubjectFromContext returns the subject of the admin token that
// authorised the request, if any.
func GetAdminSubjectFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(adminSubjectKey))
	if !exists {
		return "", false
	}
	subject, ok := val.(string)
	return subject, ok
}
