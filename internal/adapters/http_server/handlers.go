package httpserver

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"homenest/internal/app"
	"homenest/internal/domain"
)

type Handlers struct {
	Properties *app.PropertyService
	Reviews    *app.ReviewService
	Verifier   domain.TokenVerifier
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	// public
	s.mux.Get("/properties", h.listProperties)
	s.mux.Get("/properties/{id}", h.getProperty)
	s.mux.Get("/reviews/{propertyId}", h.listReviewsByProperty)

	// protected
	s.mux.Group(func(r chi.Router) {
		r.Use(Authenticated(h.Verifier))
		r.Post("/properties", h.createProperty)
		r.Get("/user-properties", h.listOwnProperties)
		r.Put("/properties/{id}", h.updateProperty)
		r.Delete("/properties/{id}", h.deleteProperty)
		r.Post("/reviews", h.createReview)
		r.Get("/my-ratings", h.listOwnReviews)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// writeError maps the domain error taxonomy to a response status.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeProblem(w, http.StatusBadRequest, "Bad Request", err.Error())
	case errors.Is(err, domain.ErrUnauthenticated):
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "invalid credential")
	case errors.Is(err, domain.ErrForbidden):
		writeProblem(w, http.StatusForbidden, "Forbidden", "not the resource owner")
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "no such document")
	case errors.Is(err, domain.ErrStoreUnavailable):
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "try again later")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func identity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	ident, ok := IdentityFromContext(r.Context())
	if !ok {
		// Route wired without the Authenticated middleware.
		writeProblem(w, http.StatusUnauthorized, "Unauthorized", "missing identity")
	}
	return ident, ok
}

// ---- properties ----

func (h *Handlers) createProperty(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	var p domain.Property
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	created, err := h.Properties.Create(r.Context(), ident, p)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) listProperties(w http.ResponseWriter, r *http.Request) {
	q := domain.ListQuery{
		Search: r.URL.Query().Get("search"),
		Sort:   r.URL.Query().Get("sort"),
	}
	out, err := h.Properties.List(r.Context(), q)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Property{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) listOwnProperties(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	out, err := h.Properties.ListOwn(r.Context(), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Property{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getProperty(w http.ResponseWriter, r *http.Request) {
	p, err := h.Properties.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) updateProperty(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	updated, err := h.Properties.Update(r.Context(), chi.URLParam(r, "id"), ident, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handlers) deleteProperty(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	if err := h.Properties.Delete(r.Context(), chi.URLParam(r, "id"), ident); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ---- reviews ----

func (h *Handlers) createReview(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	var in struct {
		PropertyID any     `json:"propertyId"`
		Rating     float64 `json:"rating"`
		Comment    string  `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeProblem(w, http.StatusBadRequest, "Bad Request", "invalid request body")
		return
	}
	rv := domain.Review{
		PropertyID: asString(in.PropertyID),
		Rating:     in.Rating,
		Comment:    in.Comment,
	}
	created, err := h.Reviews.Create(r.Context(), ident, rv)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handlers) listReviewsByProperty(w http.ResponseWriter, r *http.Request) {
	out, err := h.Reviews.ListByProperty(r.Context(), chi.URLParam(r, "propertyId"))
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Review{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) listOwnReviews(w http.ResponseWriter, r *http.Request) {
	ident, ok := identity(w, r)
	if !ok {
		return
	}
	out, err := h.Reviews.ListOwn(r.Context(), ident)
	if err != nil {
		writeError(w, err)
		return
	}
	if out == nil {
		out = []domain.Review{}
	}
	writeJSON(w, http.StatusOK, out)
}

// asString coerces a JSON propertyId to text; clients send both strings
// and numbers.
func asString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		if t == math.Trunc(t) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
