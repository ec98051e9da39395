package store

import "errors"

var (
	ErrNotFound  = errors.New("record not found")
	ErrTagExists = errors.New("tag already exists")
)
