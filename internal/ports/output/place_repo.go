package output

import (
	"context"

	"rpbot/internal/domain/entities"
)

type PlaceRepository interface {
	Create(ctx context.Context, place *entities.Place) error
	// FindByCategoryID returns domain.ErrNotFound when the category is not a place.
	FindByCategoryID(ctx context.Context, universeID, categoryID string) (*entities.Place, error)
	CountByUniverseID(ctx context.Context, universeID string) (int, error)
}

type RoadRepository interface {
	Create(ctx context.Context, road *entities.Road) error
	CountByUniverseID(ctx context.Context, universeID string) (int, error)
}
