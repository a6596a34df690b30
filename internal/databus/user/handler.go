package user

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/abababa124444-cmd/arab-chat1/internal/metrics"
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

// ProfileEvent is published by the identity service whenever a public profile changes.
type ProfileEvent struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{repository: repo}
}

// Handler mirrors one profile event into the users table. Malformed events are skipped;
// storage failures are returned so the consumer retries the event before committing it.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := zerolog.Ctx(ctx).With().Str("func", "user.Handler").Logger()

	var event ProfileEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Warn().Err(err).Msg("failed to decode profile event")
		metrics.IdentityEvents.WithLabelValues("malformed").Inc()
		return nil
	}

	if event.UserID <= 0 || event.Username == "" {
		logger.Warn().Int64("user_id", event.UserID).Msg("profile event without identity")
		metrics.IdentityEvents.WithLabelValues("malformed").Inc()
		return nil
	}

	err := h.repository.UpsertUser(ctx, &model.User{
		ID:          event.UserID,
		Username:    event.Username,
		DisplayName: event.Name,
	})
	if err != nil {
		metrics.IdentityEvents.WithLabelValues("failed").Inc()
		return fmt.Errorf("failed to mirror user %d: %w", event.UserID, err)
	}

	metrics.IdentityEvents.WithLabelValues("applied").Inc()
	logger.Debug().Int64("user_id", event.UserID).Msg("user mirrored")

	return nil
}
