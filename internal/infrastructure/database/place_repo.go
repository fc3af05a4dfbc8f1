package database

import (
	"context"
	"fmt"

	"rpbot/internal/domain/entities"
	"rpbot/internal/infrastructure/database/sqlc_generated"
	"rpbot/internal/ports/output"
)

var _ output.PlaceRepository = (*PlaceRepository)(nil)

type PlaceRepository struct {
	q *sqlc_generated.Queries
}

func NewPlaceRepository(q *sqlc_generated.Queries) *PlaceRepository {
	return &PlaceRepository{q: q}
}

func (r *PlaceRepository) Create(ctx context.Context, place *entities.Place) error {
	row, err := r.q.CreatePlace(ctx, sqlc_generated.CreatePlaceParams{
		UniverseID: place.UniverseID,
		GuildID:    place.GuildID,
		CategoryID: place.CategoryID,
		RoleID:     place.RoleID,
		Name:       place.Name,
	})
	if err != nil {
		return fmt.Errorf("create place: %w", err)
	}
	*place = placeToDomain(row)
	return nil
}

func (r *PlaceRepository) FindByCategoryID(ctx context.Context, universeID, categoryID string) (*entities.Place, error) {
	row, err := r.q.GetPlaceByCategory(ctx, sqlc_generated.GetPlaceByCategoryParams{UniverseID: universeID, CategoryID: categoryID})
	if err != nil {
		return nil, notFound("get place by category", err)
	}
	p := placeToDomain(row)
	return &p, nil
}

func (r *PlaceRepository) CountByUniverseID(ctx context.Context, universeID string) (int, error) {
	n, err := r.q.CountPlacesByUniverse(ctx, universeID)
	if err != nil {
		return 0, fmt.Errorf("count places: %w", err)
	}
	return int(n), nil
}
