package errors

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// internalMessage is returned for failures outside the taxonomy so storage
// details never leak to clients.
const internalMessage = "Internal Server Error"

// Body is the JSON shape of every error response.
type Body struct {
	Message string `json:"message"`
}

// Responder writes taxonomy errors as JSON responses.
type Responder struct {
	logger *slog.Logger
}

// NewResponder creates a responder. A nil logger discards unexpected errors.
func NewResponder(logger *slog.Logger) *Responder {
	return &Responder{logger: logger}
}

// DefaultResponder logs through slog's default logger.
var DefaultResponder = NewResponder(nil)

// Respond sends the error with its mapped status.
func (r *Responder) Respond(c *gin.Context, err *Error) {
	c.JSON(err.Status, Body{Message: err.Message})
}

// RespondError translates any error into a response. Errors outside the
// taxonomy are logged and answered with 500.
func (r *Responder) RespondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	if domainErr, ok := As(err); ok {
		r.Respond(c, domainErr)
		return
	}
	r.log().LogAttrs(c.Request.Context(), slog.LevelError, "unhandled request error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()),
	)
	c.JSON(http.StatusInternalServerError, Body{Message: internalMessage})
}

func (r *Responder) log() *slog.Logger {
	if r == nil || r.logger == nil {
		return slog.Default()
	}
	return r.logger
}

// Respond is a convenience function using the default responder.
func Respond(c *gin.Context, err *Error) {
	DefaultResponder.Respond(c, err)
}

// RespondError is a convenience function using the default responder.
func RespondError(c *gin.Context, err error) {
	DefaultResponder.RespondError(c, err)
}
