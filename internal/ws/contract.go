package ws

import (
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
	"github.com/abababa124444-cmd/arab-chat1/internal/session"
)

type SessionFactory interface {
	Room(roomSlug string) *session.Session
	Direct(identity *model.User, peer int64) *session.Session
}
