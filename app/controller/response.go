package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"logo-banner/models"
	"logo-banner/utils"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

// errorResponse is the JSON body of every error reply
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		utils.Log().Errorf("❌ Error encoding response: %v", err)
	}
}

// writeError maps domain errors to status codes
func writeError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		utils.Log().Errorf("❌ %s: %v", op, err)
	} else {
		utils.Log().Warnf("⚠️  %s: %v", op, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrItemNotFound),
		errors.Is(err, models.ErrExportNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrExportFailed):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrInvalidWidth),
		errors.Is(err, models.ErrInvalidDirection),
		errors.Is(err, models.ErrInvalidBackground),
		errors.Is(err, models.ErrInvalidCategory),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

var errBadRequest = errors.New("invalid request body")

// decodeJSON reads a JSON body into v; an empty body leaves v untouched
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func writeFailed(exportID string, err error) {
	utils.Log().Errorf("❌ Error writing export %s: %v", exportID, err)
}
