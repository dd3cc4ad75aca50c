package http

import (
	"encoding/json"
	"net/http"

	"stayhub-backend/internal/apperr"
	"stayhub-backend/internal/logger"
)

type errorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("failed to encode response body", "error", err)
	}
}

// writeError maps an error to the default status codes: 401 unauthorized,
// 403 forbidden, 400 invalid input, 500 internal (with the raw error text
// embedded in the body).
func writeError(w http.ResponseWriter, err error) {
	e := apperr.As(err)
	switch e.Kind {
	case apperr.KindUnauthorized:
		writeJSON(w, http.StatusUnauthorized, errorResponse{Message: e.Message})
	case apperr.KindForbidden:
		writeJSON(w, http.StatusForbidden, errorResponse{Message: e.Message})
	case apperr.KindInvalidInput:
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: e.Message, Code: http.StatusBadRequest, Details: e.Details})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Message: e.Message, Code: http.StatusInternalServerError, Details: e.Details})
	}
}

// writeUserError is the user-domain variant: a bad credential is reported
// as a 400 "Invalid token" client error rather than a 401.
func writeUserError(w http.ResponseWriter, err error) {
	e := apperr.As(err)
	if e.Kind == apperr.KindUnauthorized {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: e.Message, Code: http.StatusBadRequest, Details: e.Details})
		return
	}
	writeError(w, err)
}

// bearerToken returns the caller's credential. The header value is passed to
// the identity provider verbatim.
func bearerToken(r *http.Request) string {
	return r.Header.Get("Authorization")
}
