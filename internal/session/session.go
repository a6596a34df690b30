package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/abababa124444-cmd/arab-chat1/internal/metrics"
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

type State int32

const (
	Connecting State = iota
	Joined
	Closed
)

func (s State) String() string {
	switch s {
	case Connecting:
		return "connecting"
	case Joined:
		return "joined"
	case Closed:
		return "closed"
	}
	return "unknown"
}

const (
	KindRoom   = "room"
	KindDirect = "dm"
)

var (
	ErrNotJoined       = errors.New("session is not joined")
	ErrClosed          = errors.New("session closed")
	ErrUnauthenticated = errors.New("direct sessions require an identity")
)

// Session is one live connection to a room or a direct thread.
// It moves Connecting -> Joined -> Closed, or straight to Closed when the join fails.
type Session struct {
	id    string
	kind  string
	state atomic.Int32

	roomSlug string
	peer     int64
	identity *model.User

	group  string
	thread *model.DirectThread

	manager *Manager

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Kind() string {
	return s.kind
}

func (s *Session) State() State {
	return State(s.state.Load())
}

// Group is empty until the session joins.
func (s *Session) Group() string {
	if s.State() != Joined {
		return ""
	}
	return s.group
}

// Outbound carries encoded frames for the transport to write.
func (s *Session) Outbound() <-chan []byte {
	return s.send
}

// Done is closed when the session reaches Closed.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Join resolves the conversation and subscribes to its group.
// Any failure closes the session.
func (s *Session) Join(ctx context.Context) error {
	logger := zerolog.Ctx(ctx).With().Str("func", "Session.Join").Str("session_id", s.id).Logger()

	if s.State() != Connecting {
		return ErrClosed
	}

	group, err := s.resolve(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("join rejected")
		s.Close()
		return err
	}

	s.group = group
	s.manager.broadcaster.Subscribe(group, s)
	if !s.state.CompareAndSwap(int32(Connecting), int32(Joined)) {
		s.manager.broadcaster.Unsubscribe(group, s)
		return ErrClosed
	}
	metrics.LiveSessions.WithLabelValues(s.kind).Inc()

	logger.Info().
		Str("group", group).
		Int("members", s.manager.broadcaster.Members(group)).
		Msg("session joined")

	return nil
}

func (s *Session) resolve(ctx context.Context) (string, error) {
	if s.kind == KindRoom {
		room, err := s.manager.service.GetRoom(ctx, s.roomSlug)
		if err != nil {
			return "", err
		}
		return room.Group(), nil
	}

	if s.identity == nil {
		return "", ErrUnauthenticated
	}
	if err := s.manager.service.RegisterUser(ctx, *s.identity); err != nil {
		return "", err
	}

	thread, _, err := s.manager.service.GetOrCreateThread(ctx, s.identity.ID, s.peer)
	if err != nil {
		return "", err
	}
	s.thread = thread

	return thread.Group(), nil
}

// HandleFrame processes one inbound text frame. Frames that cannot produce a message are
// dropped and the session stays joined.
func (s *Session) HandleFrame(ctx context.Context, raw []byte) error {
	logger := zerolog.Ctx(ctx).With().Str("func", "Session.HandleFrame").Str("session_id", s.id).Logger()

	if s.State() != Joined {
		return ErrNotJoined
	}

	var in model.InboundFrame
	if err := json.Unmarshal(raw, &in); err != nil {
		logger.Warn().Err(err).Msg("malformed frame dropped")
		metrics.FramesRejected.WithLabelValues("malformed").Inc()
		return nil
	}

	if in.Type != s.frameType() {
		logger.Debug().Str("type", in.Type).Msg("unknown frame type ignored")
		metrics.FramesRejected.WithLabelValues("unknown_type").Inc()
		return nil
	}

	if strings.TrimSpace(in.Content) == "" {
		metrics.FramesRejected.WithLabelValues("empty").Inc()
		return nil
	}

	err := s.manager.executor.Do(ctx, func(ctx context.Context) error {
		return s.post(ctx, in)
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to post message")
		return nil
	}

	metrics.MessagesAppended.WithLabelValues(s.kind, "live").Inc()

	return nil
}

func (s *Session) frameType() string {
	if s.kind == KindRoom {
		return model.ChatMessageFrame
	}
	return model.DMMessageFrame
}

func (s *Session) post(ctx context.Context, in model.InboundFrame) error {
	if s.kind == KindRoom {
		_, err := s.manager.relay.PostRoomMessage(ctx, s.roomSlug, in.AuthorName, in.Content)
		return err
	}

	_, err := s.manager.relay.PostThreadMessage(ctx, s.thread.ID, *s.identity, in.Content)
	return err
}

// Deliver enqueues a frame without blocking. It refuses when the session is closed
// or its outbound queue is full.
func (s *Session) Deliver(payload []byte) bool {
	select {
	case <-s.done:
		return false
	default:
	}

	select {
	case s.send <- payload:
		return true
	default:
		return false
	}
}

// Evict closes a session that could not keep up with its group.
func (s *Session) Evict() {
	s.Close()
}

// Close is idempotent and valid from any state.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		prev := State(s.state.Swap(int32(Closed)))
		if prev == Joined {
			s.manager.broadcaster.Unsubscribe(s.group, s)
			metrics.LiveSessions.WithLabelValues(s.kind).Dec()
		}
		close(s.done)
	})
}

// Manager creates sessions over shared dependencies.
type Manager struct {
	service     Service
	broadcaster Broadcaster
	relay       *Relay
	executor    Executor
	sendBuffer  int
}

func NewManager(service Service, broadcaster Broadcaster, relay *Relay, executor Executor, sendBuffer int) *Manager {
	if sendBuffer < 1 {
		sendBuffer = 1
	}
	return &Manager{
		service:     service,
		broadcaster: broadcaster,
		relay:       relay,
		executor:    executor,
		sendBuffer:  sendBuffer,
	}
}

func (m *Manager) Room(roomSlug string) *Session {
	s := m.newSession(KindRoom)
	s.roomSlug = roomSlug
	return s
}

// Direct opens a session towards peer on behalf of identity. A nil identity fails on Join.
func (m *Manager) Direct(identity *model.User, peer int64) *Session {
	s := m.newSession(KindDirect)
	s.identity = identity
	s.peer = peer
	return s
}

func (m *Manager) newSession(kind string) *Session {
	return &Session{
		id:      uuid.NewString(),
		kind:    kind,
		manager: m,
		send:    make(chan []byte, m.sendBuffer),
		done:    make(chan struct{}),
	}
}
