package output

import (
	"context"

	"rpbot/internal/domain/entities"
)

type ServerRepository interface {
	Create(ctx context.Context, universeID, guildID string) (*entities.Server, error)
	// FindByGuildID returns domain.ErrNotFound when the guild is not bound.
	FindByGuildID(ctx context.Context, guildID string) (*entities.Server, error)
	CountByUniverseID(ctx context.Context, universeID string) (int, error)
	// UpdateResources saves every role, category and channel id of server.
	UpdateResources(ctx context.Context, server *entities.Server) error
}
