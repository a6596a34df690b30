package postgres

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

var threadColumns = []string{"id", "participant_a", "participant_b", "created_at"}

var directMessageColumns = []string{
	"dm.id",
	"dm.thread_id",
	"dm.author_id",
	"u.username AS author_username",
	"COALESCE(NULLIF(u.display_name, ''), u.username) AS author_name",
	"dm.content",
	"dm.created_at",
}

// InsertThread expects an already canonical pair. A concurrent insert of the same pair
// fails with model.ErrDuplicateThread.
func (r *Repository) InsertThread(ctx context.Context, participantA, participantB int64) (*model.DirectThread, error) {
	query, args, err := sq.Insert("direct_threads").
		Columns("participant_a", "participant_b").
		Values(participantA, participantB).
		Suffix("RETURNING id, participant_a, participant_b, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var thread model.DirectThread
	err = r.Chk(ctx).GetContext(ctx, &thread, query, args...)
	if err != nil {
		return nil, mapError(err)
	}

	return &thread, nil
}

func (r *Repository) GetThreadByPair(ctx context.Context, participantA, participantB int64) (*model.DirectThread, error) {
	return r.getThread(ctx, sq.Eq{"participant_a": participantA, "participant_b": participantB}, false)
}

func (r *Repository) GetThreadByID(ctx context.Context, threadID int64) (*model.DirectThread, error) {
	return r.getThread(ctx, sq.Eq{"id": threadID}, false)
}

// LockThread is the direct-thread counterpart of LockRoomBySlug.
func (r *Repository) LockThread(ctx context.Context, threadID int64) (*model.DirectThread, error) {
	return r.getThread(ctx, sq.Eq{"id": threadID}, true)
}

func (r *Repository) getThread(ctx context.Context, where sq.Eq, forUpdate bool) (*model.DirectThread, error) {
	queryBuilder := sq.Select(threadColumns...).
		From("direct_threads").
		Where(where)

	if forUpdate {
		queryBuilder = queryBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := queryBuilder.PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var thread model.DirectThread
	err = r.Chk(ctx).GetContext(ctx, &thread, query, args...)
	if err != nil {
		return nil, mapError(err)
	}

	return &thread, nil
}

type threadSummaryRow struct {
	model.DirectThread
	AUsername     string         `db:"a_username"`
	ADisplayName  string         `db:"a_display_name"`
	BUsername     string         `db:"b_username"`
	BDisplayName  string         `db:"b_display_name"`
	LastID        sql.NullInt64  `db:"last_id"`
	LastAuthor    sql.NullString `db:"last_author"`
	LastContent   sql.NullString `db:"last_content"`
	LastCreatedAt sql.NullTime   `db:"last_created_at"`
}

func (r *Repository) GetUserThreads(ctx context.Context, userID int64) (model.DirectThreadSummaryList, error) {
	query, args, err := sq.Select(
		"t.id",
		"t.participant_a",
		"t.participant_b",
		"t.created_at",
		"ua.username AS a_username",
		"ua.display_name AS a_display_name",
		"ub.username AS b_username",
		"ub.display_name AS b_display_name",
		"lm.id AS last_id",
		"lu.username AS last_author",
		"LEFT(lm.content, 50) AS last_content",
		"lm.created_at AS last_created_at",
	).
		From("direct_threads t").
		Join("users ua ON ua.id = t.participant_a").
		Join("users ub ON ub.id = t.participant_b").
		LeftJoin("LATERAL (SELECT id, author_id, content, created_at FROM direct_messages m WHERE m.thread_id = t.id ORDER BY m.id DESC LIMIT 1) lm ON true").
		LeftJoin("users lu ON lu.id = lm.author_id").
		Where(sq.Or{
			sq.Eq{"t.participant_a": userID},
			sq.Eq{"t.participant_b": userID},
		}).
		OrderBy("t.created_at DESC", "t.id DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []threadSummaryRow
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get threads: %w", err)
	}

	threads := make(model.DirectThreadSummaryList, len(rows))
	for i, row := range rows {
		threads[i] = model.DirectThreadSummary{
			DirectThread: row.DirectThread,
			ParticipantAInfo: model.User{
				ID:          row.ParticipantA,
				Username:    row.AUsername,
				DisplayName: row.ADisplayName,
			},
			ParticipantBInfo: model.User{
				ID:          row.ParticipantB,
				Username:    row.BUsername,
				DisplayName: row.BDisplayName,
			},
			LastMessage: preview(row.LastID, row.LastAuthor, row.LastContent, row.LastCreatedAt),
		}
	}

	return threads, nil
}

// InsertThreadMessage stores the message. Author fields other than AuthorID are left for the caller.
func (r *Repository) InsertThreadMessage(ctx context.Context, threadID, authorID int64, content string) (*model.DirectMessage, error) {
	query, args, err := sq.Insert("direct_messages").
		Columns("thread_id", "author_id", "content").
		Values(threadID, authorID, content).
		Suffix("RETURNING id, thread_id, author_id, content, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.DirectMessage
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to save direct message: %w", mapError(err))
	}

	return &message, nil
}

func (r *Repository) GetThreadMessagesAfter(ctx context.Context, threadID, cursor int64, limit uint64) (model.DirectMessageList, error) {
	query, args, err := sq.Select(directMessageColumns...).
		From("direct_messages dm").
		Join("users u ON u.id = dm.author_id").
		Where(sq.Eq{"dm.thread_id": threadID}).
		Where(sq.Gt{"dm.id": cursor}).
		OrderBy("dm.id ASC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.DirectMessageList{}
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get direct messages: %w", err)
	}

	return messages, nil
}

func (r *Repository) GetRecentThreadMessages(ctx context.Context, threadID int64, limit uint64) (model.DirectMessageList, error) {
	query, args, err := sq.Select(directMessageColumns...).
		From("direct_messages dm").
		Join("users u ON u.id = dm.author_id").
		Where(sq.Eq{"dm.thread_id": threadID}).
		OrderBy("dm.id DESC").
		Limit(limit).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.DirectMessageList{}
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get direct messages: %w", err)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}

	return messages, nil
}
