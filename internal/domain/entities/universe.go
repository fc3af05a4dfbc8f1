package entities

import "time"

// DefaultGlobalTimeModifier is the time modifier of a new universe, in percent.
const DefaultGlobalTimeModifier = 100

// Universe is a role-play world shared by one or more guilds.
type Universe struct {
	ID                 string
	Name               string
	CreatorID          string
	Tier               string
	GlobalTimeModifier int
	DefaultLocale      string
	CreatedAt          time.Time
}
