package handlers

import (
	"github.com/gatherly/server/internal/apperr"
	"github.com/gatherly/server/internal/models"
	"github.com/gin-gonic/gin"
)

// respondError is the single error-to-response translator every handler
// funnels failures through. Internal errors are recorded on the context so
// the logging middleware picks them up; their detail never reaches the
// client in release mode.
func respondError(c *gin.Context, err error) {
	e := apperr.From(err)

	message := e.Message
	if e.Kind == apperr.KindInternal {
		c.Error(err)
		if gin.Mode() != gin.ReleaseMode && e.Err != nil {
			message = e.Err.Error()
		}
	}

	c.JSON(e.Status(), models.ErrorResponse(message, e.Fields))
}
