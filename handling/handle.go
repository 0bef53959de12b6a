package handling

import (
	"errors"
	"net/http"
	"storebill_server/lib"

	"github.com/MonkyMars/gecho"
)

// HandleError maps a service error onto the right HTTP response. Known
// sentinel errors become their status code; anything else is logged and
// answered with a generic 500 so internals never leak.
func HandleError(err error, msg string, logger *gecho.Logger, w http.ResponseWriter) {
	var validationErr *lib.ValidationError
	if errors.As(err, &validationErr) {
		gecho.BadRequest(w,
			gecho.WithMessage("Validation failed"),
			gecho.WithData(validationErr.Errors),
			gecho.Send(),
		)
		return
	}

	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(msg), gecho.Send())
		return

	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage(msg), gecho.Send())
		return

	case errors.Is(err, lib.ErrInvalidCredentials):
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		return

	case errors.Is(err, lib.ErrInvalidToken), errors.Is(err, lib.ErrExpiredToken):
		gecho.Unauthorized(w, gecho.WithMessage(msg), gecho.Send())
		return
	}

	logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", msg), gecho.WithCallerSkip(3))
	gecho.InternalServerError(w, gecho.Send())
}

// HandleBodyError answers malformed or invalid request bodies
func HandleBodyError(err error, w http.ResponseWriter) {
	var validationErr *lib.ValidationError
	if errors.As(err, &validationErr) {
		gecho.BadRequest(w,
			gecho.WithMessage("Validation failed"),
			gecho.WithData(validationErr.Errors),
			gecho.Send(),
		)
		return
	}

	gecho.BadRequest(w, gecho.WithMessage("Invalid request body"), gecho.Send())
}
