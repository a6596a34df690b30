package ws

import (
	"context"
	"io"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/abababa124444-cmd/arab-chat1/internal/metrics"
	"github.com/abababa124444-cmd/arab-chat1/internal/session"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peer with this period. A failed ping write closes the session.
	pingPeriod = 54 * time.Second
)

// client pumps frames between one websocket connection and its session.
type client struct {
	conn         *websocket.Conn
	session      *session.Session
	maxFrameSize int64
}

// readPump feeds inbound text frames to the session one at a time, so frames from
// one connection are handled in arrival order. Idle connections are never timed out, and a
// frame over maxFrameSize is dropped without closing the connection. It closes the session on exit.
func (c *client) readPump(ctx context.Context) {
	logger := zerolog.Ctx(ctx)

	defer func() {
		c.session.Close()
		_ = c.conn.Close()
	}()

	for {
		messageType, r, err := c.conn.NextReader()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
				logger.Warn().Err(err).Msg("websocket read error")
			}
			return
		}

		if messageType != websocket.TextMessage {
			continue
		}

		message, err := io.ReadAll(io.LimitReader(r, c.maxFrameSize+1))
		if err != nil {
			logger.Warn().Err(err).Msg("websocket read error")
			return
		}
		if int64(len(message)) > c.maxFrameSize {
			// the rest of the frame is discarded by the next NextReader call
			logger.Warn().Int64("limit", c.maxFrameSize).Msg("oversized frame dropped")
			metrics.FramesRejected.WithLabelValues("oversized").Inc()
			continue
		}

		if err := c.session.HandleFrame(ctx, message); err != nil {
			return
		}
	}
}

// writePump drains the session's outbound queue and keeps the connection alive with pings.
func (c *client) writePump(ctx context.Context) {
	logger := zerolog.Ctx(ctx)
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case payload := <-c.session.Outbound():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.Warn().Err(err).Msg("failed to write frame")
				c.session.Close()
				return
			}

		case <-c.session.Done():
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "session closed"))
			return

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.session.Close()
				return
			}
		}
	}
}
