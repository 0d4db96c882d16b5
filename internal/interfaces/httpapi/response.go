package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/leaguepulse/leaguepulse/internal/domain/fixture"
	"github.com/leaguepulse/leaguepulse/internal/usecase"
)

// responseEnvelope is the body of every response, success or failure. The
// status field is the textual outcome, not the HTTP code.
type responseEnvelope struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

const (
	statusSuccess = "success"
	statusError   = "error"
)

// verboseInternalErrors, set once at router construction, lets dev
// deployments see the text of unmapped errors instead of the generic 500
// message.
var verboseInternalErrors = false

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, message string, data any) {
	ctx, span := startSpan(ctx, "httpapi.writeSuccess")
	defer span.End()

	writeJSON(ctx, w, status, responseEnvelope{
		Success: true,
		Status:  statusSuccess,
		Message: message,
		Data:    data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status := mapError(ctx, err)
	message := err.Error()
	if status == http.StatusInternalServerError && !verboseInternalErrors {
		message = "internal server error"
	}

	writeJSON(ctx, w, status, responseEnvelope{
		Success: false,
		Status:  statusError,
		Message: message,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	ctx, span := startSpan(ctx, "httpapi.writeInternalError")
	defer span.End()

	writeJSON(ctx, w, http.StatusInternalServerError, responseEnvelope{
		Success: false,
		Status:  statusError,
		Message: "internal server error",
	})
}

func mapError(ctx context.Context, err error) int {
	ctx, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput),
		errors.Is(err, usecase.ErrConflict),
		errors.Is(err, fixture.ErrDuplicateFixture),
		errors.Is(err, fixture.ErrPastDate),
		errors.Is(err, fixture.ErrSchedulingConflict),
		errors.Is(err, fixture.ErrNotStarted),
		errors.Is(err, fixture.ErrStatusRegression):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
