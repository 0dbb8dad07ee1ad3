// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-rank/auth"
	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/editor"
	"github.com/danielhkuo/quickly-rank/middleware"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/projector"
	"github.com/danielhkuo/quickly-rank/session"
)

// MaxCandidates bounds the size of a ballot a client may open.
const MaxCandidates = 256

type SessionHandler struct {
	store *session.Store
	cfg   cliparse.Config
}

func NewSessionHandler(store *session.Store, cfg cliparse.Config) *SessionHandler {
	return &SessionHandler{store: store, cfg: cfg}
}

// CreateSession handles POST /sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSessionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidates := make([]string, 0, len(req.Candidates))
	for _, c := range req.Candidates {
		if c = strings.TrimSpace(c); c != "" {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidates are required")
		return
	}
	if len(candidates) > MaxCandidates {
		middleware.ErrorResponse(w, http.StatusBadRequest, "too many candidates")
		return
	}
	// Indices in initial_ranking refer to the submitted list.
	if len(candidates) != len(req.Candidates) && len(req.InitialRanking) > 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "initial_ranking requires a list without blank candidates")
		return
	}

	sess := h.store.Create(candidates, req.InitialRanking)
	sessionKey := auth.GenerateSessionKey(sess.ID, h.cfg.SessionKeySalt)

	var view models.BallotView
	if err := sess.Do(func(ed *editor.Editor) {
		view = projector.View(ed.Snapshot())
	}); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	slog.Info("session started",
		"session_id", sess.ID,
		"candidates", len(candidates),
		"restored", len(req.InitialRanking) > 0,
		"client", auth.HashIP(middleware.GetClientIP(r), h.cfg.SessionKeySalt),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateSessionResponse{
		SessionID:  sess.ID,
		SessionKey: sessionKey,
		View:       view,
		CreatedAt:  sess.CreatedAt,
	})
}

// session authenticates the request and looks its session up. It writes the
// error response itself.
func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sessionID := r.PathValue("id")
	if sessionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "session_id is required")
		return nil, false
	}

	sessionKey := r.Header.Get("X-Session-Key")
	if err := auth.ValidateSessionKey(sessionID, sessionKey, h.cfg.SessionKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid session key")
		return nil, false
	}

	sess, err := h.store.Get(sessionID)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return nil, false
	}
	return sess, true
}

// GetSession handles GET /sessions/{id}. With ?format=text the ballot is
// rendered as plain text.
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var view models.BallotView
	if err := sess.Do(func(ed *editor.Editor) {
		view = projector.View(ed.Snapshot())
	}); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	if r.URL.Query().Get("format") != "text" {
		middleware.JSONResponse(w, http.StatusOK, view)
		return
	}

	var buf bytes.Buffer
	if err := projector.Render(&buf, view); err != nil {
		slog.Error("failed to render session", "session_id", sess.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render ballot")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// PostEvent handles POST /sessions/{id}/events
func (h *SessionHandler) PostEvent(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var req models.EventRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var resp models.EventResponse
	var applyErr error
	if err := sess.Do(func(ed *editor.Editor) {
		resp.Changed, applyErr = applyEvent(ed, req)
		resp.View = projector.View(ed.Snapshot())
	}); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}
	if errors.Is(applyErr, ErrInvalidEvent) {
		middleware.ErrorResponse(w, http.StatusBadRequest, applyErr.Error())
		return
	}

	if resp.Changed {
		slog.Debug("ballot changed", "session_id", sess.ID, "event", req.Type)
	}
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetSelections handles GET /sessions/{id}/selections
func (h *SessionHandler) GetSelections(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	var resp models.SelectionsResponse
	if err := sess.Do(func(ed *editor.Editor) {
		resp.Selections = ed.GetSelections()
		resp.Description = ed.Describe()
	}); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// DeleteSession handles DELETE /sessions/{id}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}

	if err := h.store.Delete(sess.ID); err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Session not found")
		return
	}

	slog.Info("session closed", "session_id", sess.ID)
	w.WriteHeader(http.StatusNoContent)
}
