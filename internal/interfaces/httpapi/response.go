package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/cricket-scorecard/internal/domain/scorecard"
	"github.com/riskibarqy/cricket-scorecard/internal/usecase"
)

// Responses use the Google JSON envelope: data on success, a single
// error body with item details on failure.
const (
	googleAPIVersion = "2.0"
	errorDomain      = "cricket-scorecard"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func writeJSON(_ context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status, reason, code := classifyError(err)
	writeJSON(ctx, w, status, errorEnvelope(status, reason, code, err.Error()))
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError,
		errorEnvelope(http.StatusInternalServerError, "internalError", "INTERNAL", "internal server error"))
}

func errorEnvelope(httpStatus int, reason, status, message string) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    httpStatus,
			Message: message,
			Status:  status,
			Errors: []googleErrorItem{{
				Domain:  errorDomain,
				Reason:  reason,
				Message: message,
			}},
		},
	}
}

// classifyError maps domain sentinels to an HTTP status, an item
// reason, and a google status code.
func classifyError(err error) (int, string, string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, scorecard.ErrMalformedDocument):
		return http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound, "notFound", "NOT_FOUND"
	default:
		return http.StatusInternalServerError, "internalError", "INTERNAL"
	}
}
