package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/abababa124444-cmd/arab-chat1/internal/model"
)

func (r *Repository) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	query, args, err := sq.Select("id", "username", "display_name", "created_at").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var user model.User
	err = r.Chk(ctx).GetContext(ctx, &user, query, args...)
	if err != nil {
		return nil, mapError(err)
	}

	return &user, nil
}

// UpsertUser keeps the local identity mirror in sync with the identity service.
func (r *Repository) UpsertUser(ctx context.Context, user *model.User) error {
	query, args, err := sq.Insert("users").
		Columns("id", "username", "display_name").
		Values(user.ID, user.Username, user.DisplayName).
		Suffix("ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, display_name = EXCLUDED.display_name").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}
