package repository

import "errors"

var (
	ErrFailedToUpsert = errors.New("failed to upsert record")
	ErrFailedToSelect = errors.New("failed to select records")
	ErrFailedToDelete = errors.New("failed to delete record")
)
