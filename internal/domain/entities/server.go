package entities

import "time"

// Server is a guild bound to a universe together with the Discord resources
// the setup created in it. Empty IDs mean "not created yet".
type Server struct {
	ID         int64
	UniverseID string
	GuildID    string

	AdminRoleID     string
	ModeratorRoleID string
	SpectatorRoleID string
	PlayerRoleID    string
	EveryoneRoleID  string

	AdminCategoryID string
	NRPCategoryID   string
	RPCategoryID    string
	RoadCategoryID  string

	LogChannelID         string
	CommandsChannelID    string
	ModerationChannelID  string
	NRPGeneralChannelID  string
	RPCharacterChannelID string
	RPWikiChannelID      string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfigured reports whether a previous setup left anything behind.
func (s *Server) IsConfigured() bool {
	for _, id := range []string{
		s.AdminRoleID, s.ModeratorRoleID, s.SpectatorRoleID, s.PlayerRoleID,
		s.RoadCategoryID, s.AdminCategoryID, s.NRPCategoryID, s.RPCategoryID,
		s.RPWikiChannelID, s.RPCharacterChannelID,
	} {
		if id != "" {
			return true
		}
	}
	return false
}
