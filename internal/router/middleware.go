package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"julianmorley.ca/con-plar/shopvibe/pkg/global"
	"julianmorley.ca/con-plar/shopvibe/pkg/session"
)

const sessionKey = "session"

// SessionMiddleware resolves :sessionId to a live controller or aborts with 404.
func SessionMiddleware(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionId")
		if sessionID == "" {
			c.JSON(http.StatusBadRequest, global.ErrorResponse("session id required", []global.ValidationError{
				{Field: "sessionId", Message: "session id path parameter is required", Code: "required"},
			}))
			c.Abort()
			return
		}

		controller, err := store.Get(sessionID)
		if err != nil {
			c.JSON(http.StatusNotFound, global.ErrorResponse("Session not found", []global.ValidationError{
				{Field: "sessionId", Message: "No live session exists with this id", Code: "not_found"},
			}))
			c.Abort()
			return
		}

		c.Set(sessionKey, controller)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Controller {
	return c.MustGet(sessionKey).(*session.Controller)
}

// RequestLogger writes one structured line per request.
func RequestLogger(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.FullPath(),
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Warn("request completed with errors")
			return
		}
		entry.Debug("request completed")
	}
}
