package counter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"counter/internal/htmx"
	"counter/views/components"
	"counter/views/models"
	"counter/views/pages"
)

type Handler struct {
	svc *Service
	log *slog.Logger
}

func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// Register mounts the web and JSON routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	// JSON API
	mux.HandleFunc("POST /api/views", h.CreateView)
	mux.HandleFunc("GET /api/views/{id}", h.GetView)
	mux.HandleFunc("POST /api/views/{id}/increment", h.IncrementViewJSON)
	mux.HandleFunc("DELETE /api/views/{id}", h.DeleteViewJSON)

	// HTMX Web UI
	mux.HandleFunc("GET /", h.HomePage)
	mux.HandleFunc("GET /views/{id}", h.ViewPage)
	mux.HandleFunc("POST /views/{id}/increment", h.Increment)
	mux.HandleFunc("POST /views/{id}/touch", h.TouchView)
	mux.HandleFunc("POST /views/{id}/close", h.CloseView)
	mux.HandleFunc("DELETE /views/{id}", h.CloseView)
}

// --- REST API Handlers ---

// CreateView handles POST /api/views
func (h *Handler) CreateView(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Create(r.Context())
	if err != nil {
		h.log.Error("failed to create view", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.jsonResponse(w, st, http.StatusCreated)
}

// GetView handles GET /api/views/{id}
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrViewNotFound) {
		h.jsonError(w, "view not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to get view", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.jsonResponse(w, st, http.StatusOK)
}

// IncrementViewJSON handles POST /api/views/{id}/increment
func (h *Handler) IncrementViewJSON(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Increment(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrViewNotFound) {
		h.jsonError(w, "view not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to increment view", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	h.jsonResponse(w, st, http.StatusOK)
}

// DeleteViewJSON handles DELETE /api/views/{id}
func (h *Handler) DeleteViewJSON(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Close(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrViewNotFound) {
		h.jsonError(w, "view not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.log.Error("failed to close view", "error", err)
		h.jsonError(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Helper methods ---

func (h *Handler) jsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func (h *Handler) toView(st State) models.CounterView {
	return models.CounterView{
		ID:          st.ID,
		Count:       st.Count,
		Label:       st.Label,
		HeadingHTML: h.svc.Heading(),
		Heartbeat:   h.svc.HeartbeatInterval(),
	}
}

// viewGone answers a request for a view that was closed or expired.
// htmx callers are told to reload so the page picks up a fresh view.
func (h *Handler) viewGone(w http.ResponseWriter, r *http.Request) {
	if htmx.IsHTMXRequest(r) {
		w.Header().Set(htmx.RefreshHeaderKey, "true")
	}
	http.NotFound(w, r)
}

// --- HTMX Web Handlers ---

// HomePage handles GET /. Every load starts a fresh view at zero.
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	st, err := h.svc.Create(r.Context())
	if err != nil {
		h.log.Error("failed to create view", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if err := pages.HomePage(h.toView(st)).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render home page", "error", err)
	}
}

// ViewPage handles GET /views/{id}
func (h *Handler) ViewPage(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrViewNotFound) {
		h.viewGone(w, r)
		return
	}
	if err != nil {
		h.log.Error("failed to get view", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	view := h.toView(st)
	htmx.Render(w, r, components.CounterCard(view), pages.HomePage(view))
}

// Increment handles POST /views/{id}/increment (HTMX partial)
func (h *Handler) Increment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	st, err := h.svc.Increment(r.Context(), id)
	if errors.Is(err, ErrViewNotFound) {
		h.viewGone(w, r)
		return
	}
	if err != nil {
		h.log.Error("failed to increment view", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if !htmx.IsHTMXRequest(r) {
		http.Redirect(w, r, "/views/"+url.PathEscape(id), http.StatusSeeOther)
		return
	}
	if err := components.CounterButton(h.toView(st)).Render(r.Context(), w); err != nil {
		h.log.Error("failed to render counter button", "error", err)
	}
}

// TouchView handles POST /views/{id}/touch, the heartbeat of a displayed view
func (h *Handler) TouchView(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Touch(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrViewNotFound) {
		h.viewGone(w, r)
		return
	}
	if err != nil {
		h.log.Error("failed to touch view", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CloseView handles DELETE /views/{id} and the unload beacon
func (h *Handler) CloseView(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Close(r.Context(), r.PathValue("id"))
	if errors.Is(err, ErrViewNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.log.Error("failed to close view", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
