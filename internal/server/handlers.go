package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	griderrors "github.com/mveltman/gridlock/pkg/errors"
	"github.com/mveltman/gridlock/pkg/grid"
	"github.com/mveltman/gridlock/pkg/grid/gesture"
	"github.com/mveltman/gridlock/pkg/observability"
	"github.com/mveltman/gridlock/pkg/pipeline"
	"github.com/mveltman/gridlock/pkg/session"
)

// =============================================================================
// Request / Response Types
// =============================================================================

type startSessionRequest struct {
	Config grid.Config      `json:"config"`
	ItemID string           `json:"item_id"`
	Kind   string           `json:"kind"`
	Origin gesture.Dragging `json:"origin"`
}

type startSessionResponse struct {
	SessionID string    `json:"session_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

type stepRequest struct {
	Sample gesture.Dragging `json:"sample"`
}

type endSessionResponse struct {
	Layout grid.Layout            `json:"layout"`
	Diff   map[string]grid.Change `json:"diff"`
}

type replayRequest struct {
	Config  grid.Config     `json:"config"`
	Trace   *pipeline.Trace `json:"trace,omitempty"`
	Formats []string        `json:"formats,omitempty"`
}

type replayResponse struct {
	Layout    grid.Layout            `json:"layout"`
	Diff      map[string]grid.Change `json:"diff"`
	Artifacts map[string][]byte      `json:"artifacts,omitempty"`
	Steps     int                    `json:"steps"`
	Cached    bool                   `json:"cached"`
}

type compactRequest struct {
	Config grid.Config `json:"config"`
	Mode   string      `json:"mode,omitempty"`
}

type diffRequest struct {
	A grid.Layout `json:"a"`
	B grid.Layout `json:"b"`
}

type errorResponse struct {
	Error string          `json:"error"`
	Code  griderrors.Code `json:"code,omitempty"`
}

// =============================================================================
// Gesture Sessions
// =============================================================================

func (s *Server) handleSessionStart(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := req.Config.Validate(); err != nil {
		writeError(w, err)
		return
	}
	if !gesture.ValidKinds[req.Kind] {
		writeError(w, griderrors.New(griderrors.ErrCodeInvalidGesture, "unknown kind %q", req.Kind))
		return
	}
	if req.Config.Layout.Find(req.ItemID) == nil {
		writeError(w, griderrors.New(griderrors.ErrCodeItemNotFound, "item %q not in layout", req.ItemID))
		return
	}

	sess := session.New(req.Config, req.ItemID, req.Kind, req.Origin, s.ttl)
	if err := s.store.Put(r.Context(), sess); err != nil {
		writeError(w, griderrors.Wrap(griderrors.ErrCodeStore, err, "store session"))
		return
	}

	observability.Session().OnSessionStart(r.Context(), sess.Kind)
	writeJSON(w, http.StatusCreated, startSessionResponse{
		SessionID: sess.ID,
		ExpiresAt: sess.ExpiresAt,
	})
}

func (s *Server) handleSessionStep(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	var req stepRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	cfg := sess.Config
	cfg.Layout = sess.Layout

	stepStart := time.Now()
	var res gesture.Result
	switch sess.Kind {
	case gesture.KindResize:
		res = gesture.ResolveResize(s.engine, cfg, sess.ItemID, req.Sample)
	default:
		res = gesture.ResolveDrag(s.engine, cfg, sess.ItemID, req.Sample)
	}

	sess.Layout = res.Layout
	sess.Touch(s.ttl)
	if err := s.store.Put(r.Context(), sess); err != nil {
		writeError(w, griderrors.Wrap(griderrors.ErrCodeStore, err, "store session"))
		return
	}

	observability.Session().OnSessionStep(r.Context(), sess.Kind, time.Since(stepStart))
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleSessionEnd(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.loadSession(w, r)
	if !ok {
		return
	}

	if err := s.store.Delete(r.Context(), sess.ID); err != nil {
		writeError(w, griderrors.Wrap(griderrors.ErrCodeStore, err, "delete session"))
		return
	}

	diff := grid.Diff(sess.Config.Layout, sess.Layout)
	observability.Session().OnSessionEnd(r.Context(), sess.Kind, len(diff))
	writeJSON(w, http.StatusOK, endSessionResponse{
		Layout: sess.Layout,
		Diff:   diff,
	})
}

// loadSession fetches the session named in the URL, writing the error
// response itself when the session is missing.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := chi.URLParam(r, "id")
	sess, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, griderrors.New(griderrors.ErrCodeSessionNotFound, "session %q not found", id))
		} else {
			writeError(w, griderrors.Wrap(griderrors.ErrCodeStore, err, "load session"))
		}
		return nil, false
	}
	return sess, true
}

// =============================================================================
// Stateless Operations
// =============================================================================

func (s *Server) handleReplay(w http.ResponseWriter, r *http.Request) {
	var req replayRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.runner.Execute(r.Context(), pipeline.Options{
		Config:  req.Config,
		Trace:   req.Trace,
		Formats: req.Formats,
		Logger:  s.logger,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, replayResponse{
		Layout:    res.Layout,
		Diff:      res.Diff,
		Artifacts: res.Artifacts,
		Steps:     res.Stats.Steps,
		Cached:    res.CacheInfo.ReplayHit,
	})
}

func (s *Server) handleCompact(w http.ResponseWriter, r *http.Request) {
	var req compactRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.Mode != "" {
		req.Config.CompactMode = req.Mode
	}
	if err := req.Config.Validate(); err != nil {
		writeError(w, err)
		return
	}

	compacted := s.engine.Compact(req.Config.Layout, req.Config.Mode(), req.Config.Cols)
	writeJSON(w, http.StatusOK, endSessionResponse{
		Layout: compacted,
		Diff:   grid.Diff(req.Config.Layout, compacted),
	})
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	var req diffRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"diff": grid.Diff(req.A, req.B),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// JSON Helpers
// =============================================================================

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return griderrors.Wrap(griderrors.ErrCodeInvalidFormat, err, "decode request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := griderrors.GetCode(err)
	writeJSON(w, statusForCode(code), errorResponse{
		Error: griderrors.UserMessage(err),
		Code:  code,
	})
}

// statusForCode maps error codes onto HTTP status codes.
func statusForCode(code griderrors.Code) int {
	switch code {
	case griderrors.ErrCodeInvalidConfig,
		griderrors.ErrCodeInvalidLayout,
		griderrors.ErrCodeInvalidFormat,
		griderrors.ErrCodeInvalidGesture,
		griderrors.ErrCodeInvalidTrace:
		return http.StatusBadRequest
	case griderrors.ErrCodeNotFound,
		griderrors.ErrCodeItemNotFound,
		griderrors.ErrCodeFileNotFound,
		griderrors.ErrCodeSessionNotFound:
		return http.StatusNotFound
	case griderrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
