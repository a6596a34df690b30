package session

import (
	"context"

	"github.com/abababa124444-cmd/arab-chat1/internal/broadcast"
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

type Service interface {
	GetRoom(ctx context.Context, roomSlug string) (*model.Room, error)
	AppendRoomMessage(ctx context.Context, roomSlug, authorName, content string) (*model.Message, error)
	RegisterUser(ctx context.Context, user model.User) error
	GetOrCreateThread(ctx context.Context, me, peer int64) (*model.DirectThread, bool, error)
	AppendThreadMessage(ctx context.Context, threadID int64, author model.User, content string) (*model.DirectMessage, error)
}

type Broadcaster interface {
	Subscribe(group string, sub broadcast.Subscriber)
	Unsubscribe(group string, sub broadcast.Subscriber)
	Publish(ctx context.Context, group string, payload []byte) error
	Members(group string) int
}

type Executor interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
