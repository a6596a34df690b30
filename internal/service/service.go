package service

import (
	"context"
	"strings"

	"github.com/abababa124444-cmd/arab-chat1/internal/config"
	"github.com/abababa124444-cmd/arab-chat1/internal/pkg/tx"
)

type Limits struct {
	RoomHistory      uint64
	ThreadHistory    uint64
	PollPage         uint64
	RoomSearch       uint64
	MaxAuthorNameLen int
}

func LimitsFromConfig(cfg config.Chat) Limits {
	return Limits{
		RoomHistory:      cfg.RoomHistoryLimit,
		ThreadHistory:    cfg.ThreadHistoryLimit,
		PollPage:         cfg.PollPageLimit,
		RoomSearch:       cfg.RoomSearchLimit,
		MaxAuthorNameLen: cfg.MaxAuthorNameLen,
	}
}

// Service is the conversation store: the single writer of rooms, threads and their messages.
type Service struct {
	repository Repository
	limits     Limits
}

func New(repository Repository, limits Limits) *Service {
	return &Service{
		repository: repository,
		limits:     limits,
	}
}

func (s *Service) withTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(tx.KeyTx).(tx.Tx); !ok {
		ctx = tx.WithRepo(ctx, s.repository)
	}
	return tx.TxExecute(ctx, cb)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
