package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"jobify/api/internal/apperror"
)

// Errors maps errors recorded on the context to the `{msg}` response shape.
// Handlers raise typed apperror values and return; this is the single place
// that translates kinds into HTTP statuses.
func Errors(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := apperror.Status(err)
		if status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", c.Writer.Header().Get(requestIDHeader)).
				Msg("request failed")
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, gin.H{"msg": apperror.Payload(err)})
	}
}
