package model

// Scope carries the per-request identity every read and write is keyed by.
// All queries are scoped to UserID; there is no cross-user aggregation.
type Scope struct {
	UserID string
}
