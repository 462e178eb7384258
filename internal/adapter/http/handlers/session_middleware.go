package handlers

import (
	"strings"

	"repair_hub/internal/domain/entities"
	"repair_hub/internal/usecase"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

// RequireSession resolves the bearer token into a session and stores it on
// the gin context. Requests without a live session stop here with 401.
func RequireSession(sessions usecase.ISessionUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errMissingSession.HTTPStatus, errMissingSession.ToHTTPError())
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			appErr := mapError(err)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// currentSession writes a 401 and reports false when the route was mounted
// without RequireSession.
func currentSession(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		writeAppError(c, errMissingSession)
		return entities.Session{}, false
	}
	session, ok := v.(entities.Session)
	if !ok {
		writeAppError(c, errMissingSession)
		return entities.Session{}, false
	}
	return session, true
}
