package entities

import "time"

// Road links two places through a channel restricted to its own role.
type Road struct {
	ID         int64
	UniverseID string
	GuildID    string
	RoleID     string
	ChannelID  string
	PlaceOneID int64
	PlaceTwoID int64
	Distance   int64
	CreatedAt  time.Time
}
