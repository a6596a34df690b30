//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/abababa124444-cmd/arab-chat1/internal/api"
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

type ChatService interface {
	GetOrCreateRoom(ctx context.Context, name string) (*model.Room, bool, error)
	GetRoom(ctx context.Context, roomSlug string) (*model.Room, error)
	SearchRooms(ctx context.Context, query string) (model.RoomSummaryList, error)
	RoomMessagesSince(ctx context.Context, roomSlug string, cursor int64) (model.MessageList, error)
	RecentRoomMessages(ctx context.Context, roomSlug string) (*model.Room, model.MessageList, error)

	RegisterUser(ctx context.Context, user model.User) error
	GetOrCreateThread(ctx context.Context, me, peer int64) (*model.DirectThread, bool, error)
	GetThreadForUser(ctx context.Context, threadID, userID int64) (*model.DirectThread, error)
	ListThreads(ctx context.Context, userID int64) (model.DirectThreadSummaryList, error)
	ThreadMessagesSince(ctx context.Context, threadID, cursor int64) (model.DirectMessageList, error)
	RecentThreadMessages(ctx context.Context, threadID int64) (model.DirectMessageList, error)
}

type Poster interface {
	PostRoomMessage(ctx context.Context, roomSlug, authorName, content string) (*model.Message, error)
	PostThreadMessage(ctx context.Context, threadID int64, author model.User, content string) (*model.DirectMessage, error)
}

type Validator interface {
	ValidateCreateRoom(req *api.CreateRoomRequest) error
	ValidateSendMessage(content string) error
	ValidateGetOrCreateThread(req *api.GetOrCreateThreadRequest, callerID int64) error
}
