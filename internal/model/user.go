// Package model defines the data structures used throughout the application.
// In Go, we use structs to represent our data — similar to classes in other languages,
// but without inheritance. Go favours composition over inheritance.
package model

import "time"

// User represents a registered tracker account.
//
// The ID is generated by the repository layer on insert (an xid — a 12-byte
// globally unique ID that renders as a 20-char sortable string). We generate
// it in code instead of relying on database auto-increment so primary keys
// don't depend on the store engine.
//
// Username is unique across all users. The service layer checks before
// insert and the UNIQUE index on the users table is the backstop if two
// registrations race.
type User struct {
	ID        string    `json:"id"        db:"id"`
	Username  string    `json:"username"  db:"username"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
