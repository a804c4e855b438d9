// Package controllers translates HTTP requests into service calls and
// service results into JSON responses.
package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/arogya/app/services"
	"github.com/shashiranjanraj/arogya/pkg/ctx"
	"github.com/shashiranjanraj/arogya/pkg/logger"
)

// fail maps a service error to its HTTP status and writes the JSON error
// body. Unknown errors become an opaque 500 so internals never leak.
func fail(c *ctx.Context, err error) {
	var ve *services.ValidationError
	if errors.As(err, &ve) {
		if len(ve.Fields) > 0 {
			c.ValidationError(ve.Message, ve.Fields)
			return
		}
		c.Error(http.StatusBadRequest, ve.Message)
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.NotFound(err.Error())
	case errors.Is(err, services.ErrDuplicateName),
		errors.Is(err, services.ErrInvalidOldPassword):
		c.Error(http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		c.Unauthorized(err.Error())
	case errors.Is(err, services.ErrForbidden):
		c.Forbidden(err.Error())
	default:
		logger.WithCtx(c.Context()).Error("request failed",
			"method", c.Method(),
			"path", c.Path(),
			"error", err,
		)
		c.Error(http.StatusInternalServerError, "Something went wrong")
	}
}
