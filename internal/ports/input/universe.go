package input

import (
	"context"

	"rpbot/internal/domain"
	"rpbot/internal/domain/entities"
)

type CreateUniverseRequest struct {
	GuildID   string
	CreatorID string
	Name      string
	Locale    string
}

type UniverseUseCase interface {
	CreateUniverse(ctx context.Context, req CreateUniverseRequest) (domain.Outcome, error)
	// CreatorUniverses lists the universes the guild can be bound to.
	CreatorUniverses(ctx context.Context, guildID, creatorID string) ([]entities.Universe, error)
	BindServer(ctx context.Context, guildID, universeID, userID string) (domain.Outcome, error)
}
