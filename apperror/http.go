package apperror

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// WriteJSON serializes `data` to JSON and writes it with the given status.
// A nil `data` writes only the status line and headers.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already out; nothing useful can be sent to the client.
		slog.Error("failed to encode response", "error", err)
	}
}

// WriteError converts any error into a standardized response.
//
// NotFound errors are answered with an empty body so that callers cannot
// tell an unknown key from any other miss (login relies on this). Errors
// that are not an *AppError are treated as internal errors and their detail
// is logged, not returned.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := FromError(err)
	if !ok {
		appErr = NewInternalError("an unexpected error occurred", err)
	}

	status := appErr.StatusCode()
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", appErr.Error(),
		)
		// Do not leak driver or hashing details to clients.
		WriteJSON(w, status, ErrorResponse{Message: "internal server error"})
		return
	}

	if appErr.Type == NotFoundError {
		WriteJSON(w, status, nil)
		return
	}

	WriteJSON(w, status, appErr.ToResponse())
}

// ParseID parses a numeric path key. Anything that is not a positive integer
// cannot name a row, so it is reported as NotFound.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, NewNotFoundError(fmt.Sprintf("invalid id '%s'", raw), nil)
	}
	return uint(id), nil
}
