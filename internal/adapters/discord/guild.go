package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bwmarrin/discordgo"

	"rpbot/internal/domain"
	"rpbot/internal/domain/entities"
	"rpbot/internal/ports/output"
)

// Ensure GuildService implements output.GuildManager.
var _ output.GuildManager = (*GuildService)(nil)

// guildAPI is the part of *discordgo.Session the guild provisioning uses.
type guildAPI interface {
	GuildRoleCreate(guildID string, data *discordgo.RoleParams, options ...discordgo.RequestOption) (*discordgo.Role, error)
	GuildRoleDelete(guildID, roleID string, options ...discordgo.RequestOption) error
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	GuildRoleReorder(guildID string, roles []*discordgo.Role, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
	GuildChannelCreateComplex(guildID string, data discordgo.GuildChannelCreateData, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	ChannelDelete(channelID string, options ...discordgo.RequestOption) (*discordgo.Channel, error)
	GuildChannels(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Channel, error)
	GuildChannelsReorder(guildID string, channels []*discordgo.Channel, options ...discordgo.RequestOption) error
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
}

// GuildService creates and removes guild resources through the Discord REST API.
type GuildService struct {
	api    guildAPI
	selfID func() string
	logger *slog.Logger
}

// NewGuildService creates a GuildService on top of an open session.
func NewGuildService(s *discordgo.Session, logger *slog.Logger) *GuildService {
	return &GuildService{
		api: s,
		selfID: func() string {
			if s.State == nil || s.State.User == nil {
				return ""
			}
			return s.State.User.ID
		},
		logger: logger,
	}
}

func requestOptions(ctx context.Context, reason string) []discordgo.RequestOption {
	opts := []discordgo.RequestOption{discordgo.WithContext(ctx)}
	if reason != "" {
		opts = append(opts, discordgo.WithAuditLogReason(reason))
	}
	return opts
}

// isNotFound reports whether Discord answered 404, i.e. the resource is already gone.
func isNotFound(err error) bool {
	var restErr *discordgo.RESTError
	return errors.As(err, &restErr) && restErr.Response != nil && restErr.Response.StatusCode == http.StatusNotFound
}

func (g *GuildService) CreateRole(ctx context.Context, guildID string, spec entities.RoleSpec) (string, error) {
	perms := spec.Permissions
	role, err := g.api.GuildRoleCreate(guildID, &discordgo.RoleParams{
		Name:        spec.Name,
		Permissions: &perms,
	}, requestOptions(ctx, spec.Reason)...)
	if err != nil {
		return "", fmt.Errorf("création du rôle %q: %w", spec.Name, err)
	}
	g.logger.Debug("rôle créé", "guild_id", guildID, "role_id", role.ID, "name", spec.Name)
	return role.ID, nil
}

func (g *GuildService) DeleteRole(ctx context.Context, guildID, roleID string) error {
	err := g.api.GuildRoleDelete(guildID, roleID, requestOptions(ctx, "")...)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("suppression du rôle %s: %w", roleID, err)
	}
	return nil
}

func (g *GuildService) RoleIDs(ctx context.Context, guildID string) ([]string, error) {
	roles, err := g.api.GuildRoles(guildID, requestOptions(ctx, "")...)
	if err != nil {
		return nil, fmt.Errorf("liste des rôles: %w", err)
	}
	ids := make([]string, len(roles))
	for i, r := range roles {
		ids[i] = r.ID
	}
	return ids, nil
}

func (g *GuildService) BotRoleID(ctx context.Context, guildID string) (string, error) {
	member, err := g.api.GuildMember(guildID, g.selfID(), requestOptions(ctx, "")...)
	if err != nil {
		return "", fmt.Errorf("membre du bot: %w", err)
	}
	roles, err := g.api.GuildRoles(guildID, requestOptions(ctx, "")...)
	if err != nil {
		return "", fmt.Errorf("liste des rôles: %w", err)
	}

	held := make(map[string]bool, len(member.Roles))
	for _, id := range member.Roles {
		held[id] = true
	}
	var top *discordgo.Role
	for _, r := range roles {
		if held[r.ID] && (top == nil || r.Position > top.Position) {
			top = r
		}
	}
	if top == nil {
		return "", fmt.Errorf("le bot n'a aucun rôle sur le serveur %s: %w", guildID, domain.ErrNotFound)
	}
	return top.ID, nil
}

func (g *GuildService) ReorderRoles(ctx context.Context, guildID string, positions []entities.Position) error {
	roles := make([]*discordgo.Role, len(positions))
	for i, p := range positions {
		roles[i] = &discordgo.Role{ID: p.ID, Position: p.Position}
	}
	if _, err := g.api.GuildRoleReorder(guildID, roles, requestOptions(ctx, "")...); err != nil {
		return fmt.Errorf("réorganisation des rôles: %w", err)
	}
	return nil
}

func (g *GuildService) CreateChannel(ctx context.Context, guildID string, spec entities.ChannelSpec) (string, error) {
	ch, err := g.api.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name:                 spec.Name,
		Type:                 channelType(spec.Kind),
		Position:             spec.Position,
		ParentID:             spec.ParentID,
		PermissionOverwrites: permissionOverwrites(spec.Overwrites),
	}, requestOptions(ctx, spec.Reason)...)
	if err != nil {
		return "", fmt.Errorf("création du salon %q: %w", spec.Name, err)
	}
	g.logger.Debug("salon créé", "guild_id", guildID, "channel_id", ch.ID, "name", spec.Name)
	return ch.ID, nil
}

func (g *GuildService) DeleteChannel(ctx context.Context, channelID string) error {
	_, err := g.api.ChannelDelete(channelID, requestOptions(ctx, "")...)
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("suppression du salon %s: %w", channelID, err)
	}
	return nil
}

func (g *GuildService) ChannelIDs(ctx context.Context, guildID string) ([]string, error) {
	channels, err := g.api.GuildChannels(guildID, requestOptions(ctx, "")...)
	if err != nil {
		return nil, fmt.Errorf("liste des salons: %w", err)
	}
	ids := make([]string, len(channels))
	for i, c := range channels {
		ids[i] = c.ID
	}
	return ids, nil
}

func (g *GuildService) ReorderChannels(ctx context.Context, guildID string, positions []entities.Position) error {
	channels := make([]*discordgo.Channel, len(positions))
	for i, p := range positions {
		channels[i] = &discordgo.Channel{ID: p.ID, Position: p.Position}
	}
	if err := g.api.GuildChannelsReorder(guildID, channels, requestOptions(ctx, "")...); err != nil {
		return fmt.Errorf("réorganisation des salons: %w", err)
	}
	return nil
}

func channelType(kind entities.ChannelKind) discordgo.ChannelType {
	switch kind {
	case entities.ChannelCategory:
		return discordgo.ChannelTypeGuildCategory
	case entities.ChannelForum:
		return discordgo.ChannelTypeGuildForum
	default:
		return discordgo.ChannelTypeGuildText
	}
}

func permissionOverwrites(in []domain.Overwrite) []*discordgo.PermissionOverwrite {
	if len(in) == 0 {
		return nil
	}
	out := make([]*discordgo.PermissionOverwrite, 0, len(in))
	for _, o := range in {
		if o.RoleID == "" {
			continue
		}
		out = append(out, &discordgo.PermissionOverwrite{
			ID:    o.RoleID,
			Type:  discordgo.PermissionOverwriteTypeRole,
			Allow: o.Allow,
			Deny:  o.Deny,
		})
	}
	return out
}
