package repository

import "errors"

var (
	ErrFailedToSelect  = errors.New("failed to select records")
	ErrFailedToDelete  = errors.New("failed to delete records")
	ErrFailedToReplace = errors.New("failed to replace records")
	ErrFailedToUpdate  = errors.New("failed to update record")
)
