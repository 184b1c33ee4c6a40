package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a credential record. Created on registration, immutable afterwards;
// the service exposes no update or delete operations.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // never serialized
	CreatedAt    time.Time `json:"created_at"`
}
