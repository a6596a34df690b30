// Package api holds the JSON bodies of the REST surface.
package api

import (
	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateRoomRequest struct {
	Name string `json:"name"`
}

type SendRoomMessageRequest struct {
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
}

type SendDirectMessageRequest struct {
	Content string `json:"content"`
}

type GetOrCreateThreadRequest struct {
	UserID int64 `json:"user_id"`
}

type Room struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	CreatedAt string `json:"created_at"`
}

type LastMessage struct {
	ID        int64  `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type RoomSummary struct {
	Room
	MessagesCount int64        `json:"messages_count"`
	LastMessage   *LastMessage `json:"last_message"`
}

type RoomsResponse struct {
	Rooms []RoomSummary `json:"rooms"`
	Count int           `json:"count"`
}

// RoomMessagesResponse is shared by the poll endpoint and the full history read.
type RoomMessagesResponse struct {
	Messages []model.RoomMessageFrame `json:"messages"`
	Count    int                      `json:"count"`
}

type DirectMessagesResponse struct {
	Messages []model.DirectMessageFrame `json:"messages"`
	Count    int                        `json:"count"`
}

type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

type Thread struct {
	ID          int64        `json:"id"`
	User1       UserInfo     `json:"user1"`
	User2       UserInfo     `json:"user2"`
	CreatedAt   string       `json:"created_at"`
	LastMessage *LastMessage `json:"last_message"`
}

type ThreadsResponse struct {
	Threads []Thread `json:"threads"`
	Count   int      `json:"count"`
}

func NewRoom(r model.Room) Room {
	return Room{
		ID:        r.ID,
		Name:      r.Name,
		Slug:      r.Slug,
		CreatedAt: model.FormatTimestamp(r.CreatedAt),
	}
}

func NewLastMessage(p *model.MessagePreview) *LastMessage {
	if p == nil {
		return nil
	}
	return &LastMessage{
		ID:        p.ID,
		Author:    p.Author,
		Content:   p.Content,
		CreatedAt: model.FormatTimestamp(p.CreatedAt),
	}
}

func NewRoomsResponse(rooms model.RoomSummaryList) RoomsResponse {
	out := make([]RoomSummary, len(rooms))
	for i, r := range rooms {
		out[i] = RoomSummary{
			Room:          NewRoom(r.Room),
			MessagesCount: r.MessagesCount,
			LastMessage:   NewLastMessage(r.LastMessage),
		}
	}
	return RoomsResponse{Rooms: out, Count: len(out)}
}

func NewRoomMessagesResponse(messages model.MessageList) RoomMessagesResponse {
	frames := make([]model.RoomMessageFrame, len(messages))
	for i, m := range messages {
		frames[i] = model.NewRoomMessageFrame(m)
	}
	return RoomMessagesResponse{Messages: frames, Count: len(frames)}
}

func NewDirectMessagesResponse(messages model.DirectMessageList) DirectMessagesResponse {
	frames := make([]model.DirectMessageFrame, len(messages))
	for i, m := range messages {
		frames[i] = model.NewDirectMessageFrame(m)
	}
	return DirectMessagesResponse{Messages: frames, Count: len(frames)}
}

func NewUserInfo(u model.User) UserInfo {
	return UserInfo{
		ID:       u.ID,
		Username: u.Username,
		Name:     u.Name(),
	}
}

func NewThread(t model.DirectThread) Thread {
	return Thread{
		ID:        t.ID,
		User1:     UserInfo{ID: t.ParticipantA},
		User2:     UserInfo{ID: t.ParticipantB},
		CreatedAt: model.FormatTimestamp(t.CreatedAt),
	}
}

func NewThreadsResponse(threads model.DirectThreadSummaryList) ThreadsResponse {
	out := make([]Thread, len(threads))
	for i, t := range threads {
		out[i] = Thread{
			ID:          t.ID,
			User1:       NewUserInfo(t.ParticipantAInfo),
			User2:       NewUserInfo(t.ParticipantBInfo),
			CreatedAt:   model.FormatTimestamp(t.CreatedAt),
			LastMessage: NewLastMessage(t.LastMessage),
		}
	}
	return ThreadsResponse{Threads: out, Count: len(out)}
}
