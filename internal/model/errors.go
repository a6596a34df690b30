package model

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrEmptyContent  = errors.New("content cannot be empty")
	ErrEmptyName     = errors.New("room name cannot be empty")
	ErrDuplicateName = errors.New("room name already exists")
	ErrSelfThread    = errors.New("cannot open a direct thread with yourself")

	// ErrDuplicateSlug and ErrDuplicateThread are concurrency signals recovered inside the service.
	ErrDuplicateSlug   = errors.New("room slug already exists")
	ErrDuplicateThread = errors.New("direct thread already exists")
)
