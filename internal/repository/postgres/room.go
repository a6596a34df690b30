package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

var roomColumns = []string{"id", "name", "COALESCE(slug, '') AS slug", "created_at"}

var messageColumns = []string{"id", "room_id", "author_name", "content", "created_at"}

// InsertRoom stores a room. A nil slug leaves it unassigned until SetRoomSlug.
func (r *Repository) InsertRoom(ctx context.Context, name string, slug *string) (*model.Room, error) {
	query, args, err := sq.Insert("rooms").
		Columns("name", "slug").
		Values(name, slug).
		Suffix("RETURNING id, name, COALESCE(slug, '') AS slug, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var room model.Room
	err = r.Chk(ctx).GetContext(ctx, &room, query, args...)
	if err != nil {
		return nil, mapError(err)
	}

	return &room, nil
}

func (r *Repository) SetRoomSlug(ctx context.Context, roomID int64, slug string) error {
	query, args, err := sq.Update("rooms").
		Set("slug", slug).
		Where(sq.Eq{"id": roomID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	return mapError(err)
}

func (r *Repository) GetRoomBySlug(ctx context.Context, slug string) (*model.Room, error) {
	return r.getRoom(ctx, sq.Eq{"slug": slug}, false)
}

func (r *Repository) GetRoomByName(ctx context.Context, name string) (*model.Room, error) {
	return r.getRoom(ctx, sq.Eq{"name": name}, false)
}

// LockRoomBySlug reads the room with a row lock held until the surrounding transaction ends.
// Message inserts for one room therefore commit in identifier order.
func (r *Repository) LockRoomBySlug(ctx context.Context, slug string) (*model.Room, error) {
	return r.getRoom(ctx, sq.Eq{"slug": slug}, true)
}

func (r *Repository) getRoom(ctx context.Context, where sq.Eq, forUpdate bool) (*model.Room, error) {
	queryBuilder := sq.Select(roomColumns...).
		From("rooms").
		Where(where)

	if forUpdate {
		queryBuilder = queryBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var room model.Room
	err = r.Chk(ctx).GetContext(ctx, &room, query, args...)
	if err != nil {
		return nil, mapError(err)
	}

	return &room, nil
}

type roomSummaryRow struct {
	model.Room
	MessagesCount int64          `db:"messages_count"`
	LastID        sql.NullInt64  `db:"last_id"`
	LastAuthor    sql.NullString `db:"last_author"`
	LastContent   sql.NullString `db:"last_content"`
	LastCreatedAt sql.NullTime   `db:"last_created_at"`
}

// SearchRooms lists rooms newest first, filtered by a case-insensitive name match when query is set.
func (r *Repository) SearchRooms(ctx context.Context, query string, limit uint64) (model.RoomSummaryList, error) {
	queryBuilder := sq.Select(
		"r.id",
		"r.name",
		"COALESCE(r.slug, '') AS slug",
		"r.created_at",
		"(SELECT COUNT(*) FROM messages mc WHERE mc.room_id = r.id) AS messages_count",
		"lm.id AS last_id",
		"lm.author_name AS last_author",
		"LEFT(lm.content, 50) AS last_content",
		"lm.created_at AS last_created_at",
	).
		From("rooms r").
		LeftJoin("LATERAL (SELECT id, author_name, content, created_at FROM messages m WHERE m.room_id = r.id ORDER BY m.id DESC LIMIT 1) lm ON true").
		OrderBy("r.created_at DESC", "r.id DESC").
		Limit(limit)

	if query != "" {
		queryBuilder = queryBuilder.Where(sq.ILike{"r.name": "%" + query + "%"})
	}

	sqlQuery, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []roomSummaryRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search rooms: %w", err)
	}

	rooms := make(model.RoomSummaryList, len(rows))
	for i, row := range rows {
		rooms[i] = model.RoomSummary{
			Room:          row.Room,
			MessagesCount: row.MessagesCount,
			LastMessage:   preview(row.LastID, row.LastAuthor, row.LastContent, row.LastCreatedAt),
		}
	}

	return rooms, nil
}

func (r *Repository) InsertRoomMessage(ctx context.Context, roomID int64, authorName, content string) (*model.Message, error) {
	query, args, err := sq.Insert("messages").
		Columns("room_id", "author_name", "content").
		Values(roomID, authorName, content).
		Suffix("RETURNING id, room_id, author_name, content, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %w", mapError(err))
	}

	return &message, nil
}

// GetRoomMessagesAfter returns up to limit messages with id > cursor in ascending order.
func (r *Repository) GetRoomMessagesAfter(ctx context.Context, roomID, cursor int64, limit uint64) (model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"room_id": roomID}).
		Where(sq.Gt{"id": cursor}).
		OrderBy("id ASC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessageList{}
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	return messages, nil
}

// GetRecentRoomMessages returns the latest limit messages in ascending order.
func (r *Repository) GetRecentRoomMessages(ctx context.Context, roomID int64, limit uint64) (model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("id DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessageList{}
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}

func preview(id sql.NullInt64, author, content sql.NullString, createdAt sql.NullTime) *model.MessagePreview {
	if !id.Valid {
		return nil
	}

	var created time.Time
	if createdAt.Valid {
		created = createdAt.Time
	}

	return &model.MessagePreview{
		ID:        id.Int64,
		Author:    author.String,
		Content:   content.String,
		CreatedAt: created,
	}
}
