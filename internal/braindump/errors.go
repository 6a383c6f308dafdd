package braindump

import "errors"

var (
	ErrEmptyText = errors.New("text is required")
)
