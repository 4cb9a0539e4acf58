package command

import "github.com/google/uuid"

// Command is one logical request to execute: ephemeral, one per save, fetch
// or delete.
type Command struct {
	ID           uuid.UUID
	Method       string
	Path         string
	Body         interface{}
	SessionToken string
	MaxRetries   uint64
}
