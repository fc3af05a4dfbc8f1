package output

import (
	"context"
	"errors"

	"rpbot/internal/domain/entities"
)

// Stage errors of UniverseRepository.CreateWithServer. The transaction is
// rolled back whichever one is returned.
var (
	ErrUniverseInsert = errors.New("insertion de l'univers")
	ErrServerInsert   = errors.New("insertion du serveur")
	ErrStatInsert     = errors.New("insertion des stats")
)

type UniverseRepository interface {
	// CreateWithServer stores the universe, its founding server and its
	// default stats in a single transaction.
	CreateWithServer(ctx context.Context, universe *entities.Universe, guildID string, stats []entities.Stat) (*entities.Server, error)
	FindByID(ctx context.Context, id string) (*entities.Universe, error)
	FindByCreatorID(ctx context.Context, creatorID string) ([]entities.Universe, error)
	CountByCreatorID(ctx context.Context, creatorID string) (int, error)
	Stats(ctx context.Context, universeID string) ([]entities.Stat, error)
}
