package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/web3sanitizer/pkg/logger"
	"github.com/dmitrymomot/web3sanitizer/pkg/validator"
)

type errorResponse struct {
	Error  string       `json:"error"`
	Format string       `json:"format,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

type formatResponse struct {
	Name            string `json:"name"`
	Label           string `json:"label"`
	Pattern         string `json:"pattern"`
	CaseInsensitive bool   `json:"case_insensitive"`
}

type sanitizeRequest struct {
	Input    any   `json:"input"`
	FailOpen *bool `json:"fail_open,omitempty"`
}

type sanitizeResponse struct {
	Format string `json:"format"`
	Value  string `json:"value"`
	Valid  bool   `json:"valid"`
}

type fieldInput struct {
	Format string `json:"format" validate:"required"`
	Value  string `json:"value"`
}

type validateRequest struct {
	Fields map[string]fieldInput `json:"fields" validate:"required,min=1,max=100,dive,keys,min=1,max=64,endkeys"`
}

type fieldError struct {
	Field          string `json:"field"`
	Message        string `json:"message"`
	TranslationKey string `json:"translation_key"`
}

type validateResponse struct {
	Valid  bool         `json:"valid"`
	Errors []fieldError `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ErrorContext(r.Context(), "failed to write response", logger.Error(err))
	}
}

func toFieldErrors(verrs validator.ValidationErrors) []fieldError {
	out := make([]fieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, fieldError{
			Field:          e.Field,
			Message:        e.Message,
			TranslationKey: e.TranslationKey,
		})
	}
	return out
}

func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, status int, msg, format string) {
	writeJSON(w, r, log, status, errorResponse{Error: msg, Format: format})
}
