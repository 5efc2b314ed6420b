package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/web3sanitizer/pkg/clientip"
	"github.com/dmitrymomot/web3sanitizer/pkg/logger"
	"github.com/dmitrymomot/web3sanitizer/pkg/requestid"
	"github.com/dmitrymomot/web3sanitizer/pkg/sanitizer"
	"github.com/dmitrymomot/web3sanitizer/pkg/validator"
)

const maxBodyBytes = 64 << 10

// Option configures the Handler.
type Option func(*Handler)

// WithLogger sets the logger used for request errors and fail-open warnings.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// WithFailOpen sets the policy used when a request does not choose one.
func WithFailOpen(failOpen bool) Option {
	return func(h *Handler) { h.failOpen = failOpen }
}

// Handler serves the HTTP API.
type Handler struct {
	san      *sanitizer.Sanitizer
	structs  *validator.Struct
	log      *slog.Logger
	failOpen bool
}

// New creates a Handler over san. A nil san uses the built-in formats.
func New(san *sanitizer.Sanitizer, opts ...Option) *Handler {
	if san == nil {
		san = sanitizer.New(nil)
	}
	h := &Handler{
		san:     san,
		structs: validator.NewStruct(san.Registry()),
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With(logger.Component("api"))
	return h
}

// Router returns the chi router with all routes mounted.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.health)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/formats", h.formats)
		r.Post("/sanitize/{format}", h.sanitize)
		r.Post("/validate", h.validate)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.log, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) formats(w http.ResponseWriter, r *http.Request) {
	list := h.san.Registry().Formats()
	out := make([]formatResponse, 0, len(list))
	for _, f := range list {
		out = append(out, formatResponse{
			Name:            f.Name,
			Label:           f.Label,
			Pattern:         f.Rule.String(),
			CaseInsensitive: f.Rule.CaseInsensitive(),
		})
	}
	writeJSON(w, r, h.log, http.StatusOK, out)
}

func (h *Handler) sanitize(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "format")

	var req sanitizeRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, h.log, http.StatusBadRequest, err.Error(), name)
		return
	}

	f, res, err := h.san.Evaluate(name, req.Input)
	if err != nil {
		writeError(w, r, h.log, http.StatusNotFound, err.Error(), name)
		return
	}

	failOpen := h.failOpen
	if req.FailOpen != nil {
		failOpen = *req.FailOpen
	}

	value, err := sanitizer.Format(f, req.Input,
		sanitizer.WithThrowOnFail(!failOpen),
		sanitizer.WithLogger(h.log),
		sanitizer.WithContext(r.Context()),
	)
	if err != nil {
		writeError(w, r, h.log, http.StatusUnprocessableEntity, err.Error(), f.Name)
		return
	}

	writeJSON(w, r, h.log, http.StatusOK, sanitizeResponse{
		Format: f.Name,
		Value:  value,
		Valid:  res.Valid(),
	})
}

func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := decode(w, r, &req); err != nil {
		writeError(w, r, h.log, http.StatusBadRequest, err.Error(), "")
		return
	}
	if err := h.structs.Validate(req); err != nil {
		resp := errorResponse{Error: err.Error()}
		if verrs := validator.ExtractValidationErrors(err); verrs != nil {
			resp = errorResponse{Error: validator.ErrValidationFailed.Error(), Fields: toFieldErrors(verrs)}
		}
		writeJSON(w, r, h.log, http.StatusBadRequest, resp)
		return
	}

	names := make([]string, 0, len(req.Fields))
	for name := range req.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	rules := make([]validator.Rule, 0, len(names))
	for _, name := range names {
		in := req.Fields[name]
		f, err := h.san.Registry().Lookup(in.Format)
		if err != nil {
			writeError(w, r, h.log, http.StatusBadRequest, err.Error(), in.Format)
			return
		}
		rules = append(rules, validator.MatchesFormat(name, in.Value, f))
	}

	verrs := validator.ExtractValidationErrors(validator.Apply(rules...))
	if verrs == nil {
		writeJSON(w, r, h.log, http.StatusOK, validateResponse{Valid: true})
		return
	}

	writeJSON(w, r, h.log, http.StatusUnprocessableEntity, validateResponse{Errors: toFieldErrors(verrs)})
}

var errEmptyBody = errors.New("request body is empty")

func decode(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errEmptyBody
	}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	return nil
}
