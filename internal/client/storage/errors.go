package storage

import "errors"

// Common client storage errors
var (
	// ErrBoardNotFound indicates that board was not found
	ErrBoardNotFound = errors.New("board not found")

	// ErrCardNotFound indicates that card was not found
	ErrCardNotFound = errors.New("card not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
