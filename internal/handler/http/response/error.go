package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing access token")
	case errors.Is(err, auth.ErrMissingClaim):
		Unauthorized(w, "Required token claim is missing")

	// Attendance report domain errors
	case errors.Is(err, attendance.ErrInvalidRange):
		BadRequest(w, "Period end date is before start date", nil)
	case errors.Is(err, attendance.ErrUnknownPeriod):
		BadRequest(w, "Unknown period selector", nil)
	case errors.Is(err, attendance.ErrAmbiguousDateKey):
		Conflict(w, "Attendance data contains colliding punch records")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
