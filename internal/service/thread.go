package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/abababa124444-cmd/arab-chat1/internal/metrics"
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

// RegisterUser refreshes the local mirror of an authenticated identity.
func (s *Service) RegisterUser(ctx context.Context, user model.User) error {
	if user.ID <= 0 || user.Username == "" {
		return fmt.Errorf("invalid identity: id=%d username=%q", user.ID, user.Username)
	}

	return s.repository.UpsertUser(ctx, &user)
}

// GetOrCreateThread returns the single direct thread between me and peer regardless of argument order.
// Concurrent first contact converges on one row: the losing insert re-reads the winner's thread.
func (s *Service) GetOrCreateThread(ctx context.Context, me, peer int64) (*model.DirectThread, bool, error) {
	if me == peer {
		return nil, false, model.ErrSelfThread
	}

	lo, hi := model.CanonicalPair(me, peer)
	for _, userID := range []int64{lo, hi} {
		if _, err := s.repository.GetUser(ctx, userID); err != nil {
			return nil, false, err
		}
	}

	thread, err := s.repository.GetThreadByPair(ctx, lo, hi)
	if err == nil {
		return thread, false, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get thread: %w", err)
	}

	thread, err = s.repository.InsertThread(ctx, lo, hi)
	if errors.Is(err, model.ErrDuplicateThread) {
		thread, err = s.repository.GetThreadByPair(ctx, lo, hi)
		if err != nil {
			return nil, false, fmt.Errorf("failed to get thread after conflict: %w", err)
		}
		return thread, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to create thread: %w", err)
	}
	metrics.ThreadsCreated.Inc()

	return thread, true, nil
}

// GetThreadForUser hides threads the user is not part of behind model.ErrNotFound.
func (s *Service) GetThreadForUser(ctx context.Context, threadID, userID int64) (*model.DirectThread, error) {
	thread, err := s.repository.GetThreadByID(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if !thread.HasParticipant(userID) {
		return nil, model.ErrNotFound
	}

	return thread, nil
}

func (s *Service) ListThreads(ctx context.Context, userID int64) (model.DirectThreadSummaryList, error) {
	return s.repository.GetUserThreads(ctx, userID)
}

func (s *Service) AppendThreadMessage(ctx context.Context, threadID int64, author model.User, content string) (*model.DirectMessage, error) {
	if isBlank(content) {
		return nil, model.ErrEmptyContent
	}

	var message *model.DirectMessage
	err := s.withTx(ctx, func(ctx context.Context) error {
		thread, err := s.repository.LockThread(ctx, threadID)
		if err != nil {
			return err
		}
		if !thread.HasParticipant(author.ID) {
			return model.ErrNotFound
		}

		message, err = s.repository.InsertThreadMessage(ctx, thread.ID, author.ID, content)
		return err
	})
	if err != nil {
		return nil, err
	}

	message.AuthorUsername = author.Username
	message.AuthorName = author.Name()

	return message, nil
}

func (s *Service) ThreadMessagesSince(ctx context.Context, threadID, cursor int64) (model.DirectMessageList, error) {
	return s.repository.GetThreadMessagesAfter(ctx, threadID, max(cursor, 0), s.limits.PollPage)
}

func (s *Service) RecentThreadMessages(ctx context.Context, threadID int64) (model.DirectMessageList, error) {
	return s.repository.GetRecentThreadMessages(ctx, threadID, s.limits.ThreadHistory)
}
