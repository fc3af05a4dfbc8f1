package database

import (
	"context"
	"fmt"

	"rpbot/internal/domain/entities"
	"rpbot/internal/infrastructure/database/sqlc_generated"
	"rpbot/internal/ports/output"
)

var _ output.ServerRepository = (*ServerRepository)(nil)

type ServerRepository struct {
	q *sqlc_generated.Queries
}

func NewServerRepository(q *sqlc_generated.Queries) *ServerRepository {
	return &ServerRepository{q: q}
}

func (r *ServerRepository) Create(ctx context.Context, universeID, guildID string) (*entities.Server, error) {
	row, err := r.q.CreateServer(ctx, sqlc_generated.CreateServerParams{UniverseID: universeID, GuildID: guildID})
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}
	s := serverToDomain(row)
	return &s, nil
}

func (r *ServerRepository) FindByGuildID(ctx context.Context, guildID string) (*entities.Server, error) {
	row, err := r.q.GetServerByGuildID(ctx, guildID)
	if err != nil {
		return nil, notFound("get server by guild id", err)
	}
	s := serverToDomain(row)
	return &s, nil
}

func (r *ServerRepository) CountByUniverseID(ctx context.Context, universeID string) (int, error) {
	n, err := r.q.CountServersByUniverse(ctx, universeID)
	if err != nil {
		return 0, fmt.Errorf("count servers by universe: %w", err)
	}
	return int(n), nil
}

func (r *ServerRepository) UpdateResources(ctx context.Context, server *entities.Server) error {
	row, err := r.q.UpdateServerResources(ctx, sqlc_generated.UpdateServerResourcesParams{
		GuildID:              server.GuildID,
		AdminRoleID:          server.AdminRoleID,
		ModeratorRoleID:      server.ModeratorRoleID,
		SpectatorRoleID:      server.SpectatorRoleID,
		PlayerRoleID:         server.PlayerRoleID,
		EveryoneRoleID:       server.EveryoneRoleID,
		AdminCategoryID:      server.AdminCategoryID,
		NrpCategoryID:        server.NRPCategoryID,
		RpCategoryID:         server.RPCategoryID,
		RoadCategoryID:       server.RoadCategoryID,
		LogChannelID:         server.LogChannelID,
		CommandsChannelID:    server.CommandsChannelID,
		ModerationChannelID:  server.ModerationChannelID,
		NrpGeneralChannelID:  server.NRPGeneralChannelID,
		RpCharacterChannelID: server.RPCharacterChannelID,
		RpWikiChannelID:      server.RPWikiChannelID,
	})
	if err != nil {
		return notFound("update server", err)
	}
	server.UpdatedAt = pgtypeTimestamptzToTime(row.UpdatedAt)
	return nil
}
