// Package httpx holds the JSON envelope and error mapping used by every HTTP handler.
package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Black-And-White-Club/clip-arena/pkg/attr"
	"github.com/Black-And-White-Club/clip-arena/pkg/domainerr"
	"github.com/google/uuid"
)

// CorrelationHeader is echoed back on every response.
const CorrelationHeader = "X-Correlation-ID"

// maxBodyBytes bounds request bodies accepted by DecodeJSON.
const maxBodyBytes = 1 << 20

type envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Kind      domainerr.Kind `json:"kind"`
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Retryable bool           `json:"retryable,omitempty"`
}

// JSON writes payload with status.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// OK writes {"data": data} with status.
func OK(w http.ResponseWriter, status int, data any) {
	JSON(w, status, envelope{Data: data})
}

// Error maps err to a status and writes {"error": {...}}. Unclassified errors
// are logged and reported as unavailable without leaking their text.
func Error(ctx context.Context, w http.ResponseWriter, logger *slog.Logger, err error) {
	status := domainerr.HTTPStatus(err)

	var de *domainerr.Error
	body := &errorBody{}
	if errors.As(err, &de) {
		body.Kind = de.Kind
		body.Code = de.Code
		body.Message = de.Message
	} else {
		if logger != nil {
			logger.ErrorContext(ctx, "Request failed", attr.ExtractCorrelationID(ctx), attr.Error(err))
		}
		body.Kind = domainerr.KindUnavailable
		body.Code = "unavailable"
		body.Message = "service temporarily unavailable"
	}
	body.Retryable = body.Kind == domainerr.KindUnavailable

	JSON(w, status, envelope{Error: body})
}

// BadRequest writes a validation error with message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, envelope{Error: &errorBody{
		Kind:    domainerr.KindValidation,
		Code:    "bad_request",
		Message: message,
	}})
}

// DecodeJSON reads a JSON body into dst, rejecting unknown fields.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// ParseUUID parses a path or query value.
func ParseUUID(value, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}

// CorrelationMiddleware assigns a correlation id to each request.
func CorrelationMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(CorrelationHeader, id)
		next.ServeHTTP(w, r.WithContext(attr.WithCorrelationID(r.Context(), id)))
	})
}
