package grocery

import "errors"

var (
	ErrInvalidDate  = errors.New("invalid anchor date")
	ErrItemNotFound = errors.New("grocery item not found")
)
