package model

import (
	"time"
)

const DefaultAuthorName = "Anonymous"

type MessageList []Message

type Message struct {
	ID         int64     `db:"id" json:"id"`
	RoomID     int64     `db:"room_id" json:"room"`
	AuthorName string    `db:"author_name" json:"author_name"`
	Content    string    `db:"content" json:"content"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type DirectMessageList []DirectMessage

type DirectMessage struct {
	ID             int64     `db:"id" json:"id"`
	ThreadID       int64     `db:"thread_id" json:"thread"`
	AuthorID       int64     `db:"author_id" json:"author_id"`
	AuthorUsername string    `db:"author_username" json:"author"`
	AuthorName     string    `db:"author_name" json:"author_name"`
	Content        string    `db:"content" json:"content"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// MessagePreview is the truncated last message shown in room and thread lists.
type MessagePreview struct {
	ID        int64     `db:"id"`
	Author    string    `db:"author"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}
