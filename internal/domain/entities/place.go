package entities

import "time"

// Place is a location of a universe: a category and the role allowed in it.
type Place struct {
	ID         int64
	UniverseID string
	GuildID    string
	CategoryID string
	RoleID     string
	Name       string
	CreatedAt  time.Time
}
