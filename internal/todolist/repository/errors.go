package repository

import "errors"

var (
	ErrDuplicateID     = errors.New("list id already exists")
	ErrFailedToLoad    = errors.New("failed to load lists")
	ErrFailedToPersist = errors.New("failed to persist lists")
)
