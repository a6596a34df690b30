package model

import "time"

const (
	ChatMessageFrame = "chat_message"
	DMMessageFrame   = "dm_message"
)

// TimestampLayout is ISO-8601 with microseconds, the precision the store keeps.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

type InboundFrame struct {
	Type       string `json:"type"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
}

type RoomMessageFrame struct {
	ID         int64  `json:"id"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

type DirectMessageFrame struct {
	ID         int64  `json:"id"`
	Author     string `json:"author"`
	AuthorName string `json:"author_name"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
}

// NewRoomMessageFrame builds the frame shared by the live broadcast and the poll endpoint.
func NewRoomMessageFrame(m Message) RoomMessageFrame {
	return RoomMessageFrame{
		ID:         m.ID,
		AuthorName: m.AuthorName,
		Content:    m.Content,
		CreatedAt:  FormatTimestamp(m.CreatedAt),
	}
}

func NewDirectMessageFrame(m DirectMessage) DirectMessageFrame {
	return DirectMessageFrame{
		ID:         m.ID,
		Author:     m.AuthorUsername,
		AuthorName: m.AuthorName,
		Content:    m.Content,
		CreatedAt:  FormatTimestamp(m.CreatedAt),
	}
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
