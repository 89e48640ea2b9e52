package models

import "github.com/google/uuid"

// Identity is the authenticated caller as carried by a bearer token.
type Identity struct {
	ID    uuid.UUID
	Name  string
	Phone string
}
