package output

import (
	"context"

	"rpbot/internal/domain/entities"
)

// GuildManager creates and removes the Discord resources of a guild.
type GuildManager interface {
	CreateRole(ctx context.Context, guildID string, spec entities.RoleSpec) (string, error)
	// DeleteRole succeeds when the role is already gone.
	DeleteRole(ctx context.Context, guildID, roleID string) error
	RoleIDs(ctx context.Context, guildID string) ([]string, error)
	// BotRoleID returns the highest role held by the bot in the guild.
	BotRoleID(ctx context.Context, guildID string) (string, error)
	ReorderRoles(ctx context.Context, guildID string, positions []entities.Position) error

	CreateChannel(ctx context.Context, guildID string, spec entities.ChannelSpec) (string, error)
	// DeleteChannel succeeds when the channel is already gone.
	DeleteChannel(ctx context.Context, channelID string) error
	ChannelIDs(ctx context.Context, guildID string) ([]string, error)
	ReorderChannels(ctx context.Context, guildID string, positions []entities.Position) error
}

// LimitProvider returns the caps of a tier.
type LimitProvider interface {
	For(tier string) entities.TierLimits
}
