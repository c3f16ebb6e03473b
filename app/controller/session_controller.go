package controller

import (
	"net/http"

	"logo-banner/models"
	"logo-banner/service"
)

// SessionController handles HTTP requests that drive a banner session
type SessionController struct {
	sessions service.SessionServiceInterface
	renderer *service.BannerRenderer
}

// NewSessionController creates a new SessionController
func NewSessionController(sessions service.SessionServiceInterface, renderer *service.BannerRenderer) *SessionController {
	return &SessionController{sessions: sessions, renderer: renderer}
}

// session resolves the {id} path value, writing a 404 when unknown
func (c *SessionController) session(w http.ResponseWriter, r *http.Request, op string) (*service.Session, bool) {
	session, err := c.sessions.Get(r.PathValue("id"))
	if err != nil {
		writeError(w, op, err)
		return nil, false
	}
	return session, true
}

// Create handles POST /sessions
func (c *SessionController) Create(w http.ResponseWriter, r *http.Request) {
	session := c.sessions.Create()
	writeJSON(w, http.StatusCreated, session.Snapshot())
}

// Get handles GET /sessions/{id}
func (c *SessionController) Get(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "Get")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// Delete handles DELETE /sessions/{id}
func (c *SessionController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := c.sessions.Delete(r.PathValue("id")); err != nil {
		writeError(w, "Delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Events handles GET /sessions/{id}/events
func (c *SessionController) Events(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "Events")
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.Events())
}

// Search handles POST /sessions/{id}/search
// Typed input is debounced; {"immediate": true} applies it right away.
func (c *SessionController) Search(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "Search")
	if !ok {
		return
	}

	var req models.SearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "Search", err)
		return
	}

	if req.Immediate {
		session.SearchNow(req.Search)
		writeJSON(w, http.StatusOK, session.Snapshot())
		return
	}
	session.SetSearch(req.Search)
	writeJSON(w, http.StatusAccepted, session.Snapshot())
}

// Categories handles POST /sessions/{id}/categories
func (c *SessionController) Categories(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "Categories")
	if !ok {
		return
	}

	var req models.CategoriesRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "Categories", err)
		return
	}
	if err := session.SetCategories(req.Categories); err != nil {
		writeError(w, "Categories", err)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// Toggle handles POST /sessions/{id}/selection/toggle
func (c *SessionController) Toggle(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "Toggle")
	if !ok {
		return
	}

	var req models.ToggleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "Toggle", err)
		return
	}
	if err := session.Toggle(req.ID); err != nil {
		writeError(w, "Toggle", err)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// selectionAction builds a handler for the bulk selection operations
func (c *SessionController) selectionAction(op string, apply func(*service.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := c.session(w, r, op)
		if !ok {
			return
		}
		apply(session)
		writeJSON(w, http.StatusOK, session.Snapshot())
	}
}

// SelectAll handles POST /sessions/{id}/selection/all
func (c *SessionController) SelectAll(w http.ResponseWriter, r *http.Request) {
	c.selectionAction("SelectAll", (*service.Session).SelectAll)(w, r)
}

// SelectNone handles POST /sessions/{id}/selection/none
func (c *SessionController) SelectNone(w http.ResponseWriter, r *http.Request) {
	c.selectionAction("SelectNone", (*service.Session).SelectNone)(w, r)
}

// SelectPreset handles POST /sessions/{id}/selection/preset
func (c *SessionController) SelectPreset(w http.ResponseWriter, r *http.Request) {
	c.selectionAction("SelectPreset", (*service.Session).SelectPreset)(w, r)
}

// SelectRandom handles POST /sessions/{id}/selection/random
func (c *SessionController) SelectRandom(w http.ResponseWriter, r *http.Request) {
	c.selectionAction("SelectRandom", (*service.Session).SelectRandomHalf)(w, r)
}

// Randomize handles POST /sessions/{id}/order/randomize
func (c *SessionController) Randomize(w http.ResponseWriter, r *http.Request) {
	c.selectionAction("Randomize", (*service.Session).Randomize)(w, r)
}

// Sort handles POST /sessions/{id}/order/sort
func (c *SessionController) Sort(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "Sort")
	if !ok {
		return
	}

	req := models.SortRequest{Direction: models.SortAsc}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "Sort", err)
		return
	}
	if err := session.Sort(req.Direction); err != nil {
		writeError(w, "Sort", err)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// Width handles POST /sessions/{id}/width
func (c *SessionController) Width(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "Width")
	if !ok {
		return
	}

	var req models.WidthRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "Width", err)
		return
	}
	if err := session.SetWidth(req.Width); err != nil {
		writeError(w, "Width", err)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// Background handles POST /sessions/{id}/background
func (c *SessionController) Background(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "Background")
	if !ok {
		return
	}

	var req models.BackgroundRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, "Background", err)
		return
	}

	var err error
	switch {
	case req.Background != "":
		_, err = session.SetBackground(req.Background)
	case req.Gradient != nil:
		_, err = session.PickGradient(*req.Gradient)
	case req.Random:
		session.RandomGradient()
	default:
		err = models.ErrInvalidBackground
	}
	if err != nil {
		writeError(w, "Background", err)
		return
	}
	writeJSON(w, http.StatusOK, session.Snapshot())
}

// Banner handles GET /sessions/{id}/banner and returns the composition as HTML
func (c *SessionController) Banner(w http.ResponseWriter, r *http.Request) {
	session, ok := c.session(w, r, "Banner")
	if !ok {
		return
	}

	htmlContent, err := c.renderer.RenderHTML(session.BannerView())
	if err != nil {
		writeError(w, "Banner", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(htmlContent))
}
