//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package service

import (
	"context"

	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

type Repository interface {
	InsertRoom(ctx context.Context, name string, slug *string) (*model.Room, error)
	SetRoomSlug(ctx context.Context, roomID int64, slug string) error
	GetRoomBySlug(ctx context.Context, slug string) (*model.Room, error)
	GetRoomByName(ctx context.Context, name string) (*model.Room, error)
	LockRoomBySlug(ctx context.Context, slug string) (*model.Room, error)
	SearchRooms(ctx context.Context, query string, limit uint64) (model.RoomSummaryList, error)
	InsertRoomMessage(ctx context.Context, roomID int64, authorName, content string) (*model.Message, error)
	GetRoomMessagesAfter(ctx context.Context, roomID, cursor int64, limit uint64) (model.MessageList, error)
	GetRecentRoomMessages(ctx context.Context, roomID int64, limit uint64) (model.MessageList, error)

	GetUser(ctx context.Context, userID int64) (*model.User, error)
	UpsertUser(ctx context.Context, user *model.User) error

	InsertThread(ctx context.Context, participantA, participantB int64) (*model.DirectThread, error)
	GetThreadByPair(ctx context.Context, participantA, participantB int64) (*model.DirectThread, error)
	GetThreadByID(ctx context.Context, threadID int64) (*model.DirectThread, error)
	LockThread(ctx context.Context, threadID int64) (*model.DirectThread, error)
	GetUserThreads(ctx context.Context, userID int64) (model.DirectThreadSummaryList, error)
	InsertThreadMessage(ctx context.Context, threadID, authorID int64, content string) (*model.DirectMessage, error)
	GetThreadMessagesAfter(ctx context.Context, threadID, cursor int64, limit uint64) (model.DirectMessageList, error)
	GetRecentThreadMessages(ctx context.Context, threadID int64, limit uint64) (model.DirectMessageList, error)

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}
