package model

import (
	"fmt"
	"time"
)

type RoomList []Room

type Room struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Slug      string    `db:"slug" json:"slug"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Group is the fan-out group every live member of the room subscribes to.
func (r Room) Group() string {
	return RoomGroup(r.Slug)
}

func RoomGroup(slug string) string {
	return "room:" + slug
}

// FallbackRoomSlug is assigned when a room name yields no usable slug.
func FallbackRoomSlug(id int64) string {
	return fmt.Sprintf("room-%d", id)
}

type RoomSummaryList []RoomSummary

type RoomSummary struct {
	Room
	MessagesCount int64           `db:"messages_count"`
	LastMessage   *MessagePreview `db:"-"`
}
