package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"

	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

const (
	maxSlugLen          = 120
	maxFallbackAttempts = 3
)

// CreateRoom creates a room with a unique name. The slug is derived from the name;
// when the name yields nothing usable or the slug is taken, the room falls back to room-<id>.
func (s *Service) CreateRoom(ctx context.Context, name string) (*model.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrEmptyName
	}

	if derived := deriveSlug(name); derived != "" {
		room, err := s.repository.InsertRoom(ctx, name, &derived)
		if err == nil {
			return room, nil
		}
		if !errors.Is(err, model.ErrDuplicateSlug) {
			return nil, err
		}
	}

	var (
		room *model.Room
		err  error
	)
	for attempt := 0; attempt < maxFallbackAttempts; attempt++ {
		room, err = s.createWithFallbackSlug(ctx, name)
		if !errors.Is(err, model.ErrDuplicateSlug) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	return room, nil
}

// createWithFallbackSlug inserts the room and gives it room-<id>, or room-<id>-<n> when another
// room's name already produced that slug. A slug taken concurrently fails the whole transaction
// with model.ErrDuplicateSlug.
func (s *Service) createWithFallbackSlug(ctx context.Context, name string) (*model.Room, error) {
	var room *model.Room
	err := s.withTx(ctx, func(ctx context.Context) error {
		inserted, err := s.repository.InsertRoom(ctx, name, nil)
		if err != nil {
			return err
		}

		candidate := model.FallbackRoomSlug(inserted.ID)
		for n := 1; ; n++ {
			_, err := s.repository.GetRoomBySlug(ctx, candidate)
			if errors.Is(err, model.ErrNotFound) {
				break
			}
			if err != nil {
				return fmt.Errorf("failed to check fallback slug: %w", err)
			}
			candidate = fmt.Sprintf("%s-%d", model.FallbackRoomSlug(inserted.ID), n)
		}

		if err := s.repository.SetRoomSlug(ctx, inserted.ID, candidate); err != nil {
			return fmt.Errorf("failed to assign fallback slug: %w", err)
		}

		inserted.Slug = candidate
		room = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	return room, nil
}

// GetOrCreateRoom returns the room with the given name, creating it on first use.
func (s *Service) GetOrCreateRoom(ctx context.Context, name string) (*model.Room, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, model.ErrEmptyName
	}

	room, err := s.repository.GetRoomByName(ctx, name)
	if err == nil {
		return room, false, nil
	}
	if !errors.Is(err, model.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get room: %w", err)
	}

	room, err = s.CreateRoom(ctx, name)
	if errors.Is(err, model.ErrDuplicateName) {
		room, err = s.repository.GetRoomByName(ctx, name)
		return room, false, err
	}
	if err != nil {
		return nil, false, err
	}

	return room, true, nil
}

func (s *Service) GetRoom(ctx context.Context, roomSlug string) (*model.Room, error) {
	return s.repository.GetRoomBySlug(ctx, roomSlug)
}

func (s *Service) SearchRooms(ctx context.Context, query string) (model.RoomSummaryList, error) {
	return s.repository.SearchRooms(ctx, strings.TrimSpace(query), s.limits.RoomSearch)
}

// AppendRoomMessage persists a message under the room row lock, so ids commit in order within the room.
func (s *Service) AppendRoomMessage(ctx context.Context, roomSlug, authorName, content string) (*model.Message, error) {
	if isBlank(content) {
		return nil, model.ErrEmptyContent
	}
	authorName = s.normalizeAuthor(authorName)

	var message *model.Message
	err := s.withTx(ctx, func(ctx context.Context) error {
		room, err := s.repository.LockRoomBySlug(ctx, roomSlug)
		if err != nil {
			return err
		}

		message, err = s.repository.InsertRoomMessage(ctx, room.ID, authorName, content)
		return err
	})
	if err != nil {
		return nil, err
	}

	return message, nil
}

// RoomMessagesSince returns up to one poll page of messages with id greater than cursor, ascending.
func (s *Service) RoomMessagesSince(ctx context.Context, roomSlug string, cursor int64) (model.MessageList, error) {
	room, err := s.repository.GetRoomBySlug(ctx, roomSlug)
	if err != nil {
		return nil, err
	}

	return s.repository.GetRoomMessagesAfter(ctx, room.ID, max(cursor, 0), s.limits.PollPage)
}

func (s *Service) RecentRoomMessages(ctx context.Context, roomSlug string) (*model.Room, model.MessageList, error) {
	room, err := s.repository.GetRoomBySlug(ctx, roomSlug)
	if err != nil {
		return nil, nil, err
	}

	messages, err := s.repository.GetRecentRoomMessages(ctx, room.ID, s.limits.RoomHistory)
	if err != nil {
		return nil, nil, err
	}

	return room, messages, nil
}

func (s *Service) normalizeAuthor(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.DefaultAuthorName
	}
	if s.limits.MaxAuthorNameLen > 0 && utf8.RuneCountInString(name) > s.limits.MaxAuthorNameLen {
		name = strings.TrimSpace(string([]rune(name)[:s.limits.MaxAuthorNameLen]))
	}
	return name
}

func deriveSlug(name string) string {
	derived := slug.Make(name)
	if len(derived) > maxSlugLen {
		derived = strings.TrimRight(derived[:maxSlugLen], "-")
	}
	return derived
}
