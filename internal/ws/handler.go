package ws

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/abababa124444-cmd/arab-chat1/internal/infra"
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
	"github.com/abababa124444-cmd/arab-chat1/internal/session"
)

// Close codes sent when a session cannot join.
const (
	CloseNotFound        = 4404
	CloseInvalid         = 4400
	CloseUnauthenticated = 4401
)

type Handler struct {
	sessions     SessionFactory
	upgrader     websocket.Upgrader
	maxFrameSize int64
}

func New(sessions SessionFactory, maxFrameSize int64) *Handler {
	return &Handler{
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		maxFrameSize: maxFrameSize,
	}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/ws/chat/{slug}", h.ServeRoom)
	r.Get("/ws/dm/{user_id}", h.ServeDirect)
}

func (h *Handler) ServeRoom(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, h.sessions.Room(chi.URLParam(r, "slug")))
}

func (h *Handler) ServeDirect(w http.ResponseWriter, r *http.Request) {
	peer, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	var identity *model.User
	if user, ok := infra.IdentityFromContext(r.Context()); ok {
		identity = &user
	}

	h.serve(w, r, h.sessions.Direct(identity, peer))
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, s *session.Session) {
	logger := zerolog.Ctx(r.Context()).With().
		Str("func", "ws.serve").
		Str("session_id", s.ID()).
		Str("kind", s.Kind()).
		Logger()
	ctx := logger.WithContext(r.Context())

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to upgrade connection")
		s.Close()
		return
	}

	if err := s.Join(ctx); err != nil {
		reject(conn, err)
		return
	}

	c := &client{
		conn:         conn,
		session:      s,
		maxFrameSize: h.maxFrameSize,
	}

	go c.writePump(ctx)
	c.readPump(ctx)
}

func reject(conn *websocket.Conn, err error) {
	code, reason := websocket.CloseInternalServerErr, "internal error"
	switch {
	case errors.Is(err, model.ErrNotFound):
		code, reason = CloseNotFound, err.Error()
	case errors.Is(err, model.ErrSelfThread):
		code, reason = CloseInvalid, err.Error()
	case errors.Is(err, session.ErrUnauthenticated):
		code, reason = CloseUnauthenticated, err.Error()
	}

	_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, reason), time.Now().Add(writeWait))
	_ = conn.Close()
}
