package model

import "time"

// User mirrors a public identity owned by the external identity service.
type User struct {
	ID          int64     `db:"id" json:"id"`
	Username    string    `db:"username" json:"username"`
	DisplayName string    `db:"display_name" json:"name"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}

// Name is what other participants see as the author name.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
