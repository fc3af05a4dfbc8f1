package database

import (
	"context"
	"fmt"

	"rpbot/internal/domain/entities"
	"rpbot/internal/infrastructure/database/sqlc_generated"
	"rpbot/internal/ports/output"
)

var _ output.RoadRepository = (*RoadRepository)(nil)

type RoadRepository struct {
	q *sqlc_generated.Queries
}

func NewRoadRepository(q *sqlc_generated.Queries) *RoadRepository {
	return &RoadRepository{q: q}
}

func (r *RoadRepository) Create(ctx context.Context, road *entities.Road) error {
	row, err := r.q.CreateRoad(ctx, sqlc_generated.CreateRoadParams{
		UniverseID: road.UniverseID,
		GuildID:    road.GuildID,
		RoleID:     road.RoleID,
		ChannelID:  road.ChannelID,
		PlaceOneID: road.PlaceOneID,
		PlaceTwoID: road.PlaceTwoID,
		Distance:   road.Distance,
	})
	if err != nil {
		return fmt.Errorf("create road: %w", err)
	}
	*road = roadToDomain(row)
	return nil
}

func (r *RoadRepository) CountByUniverseID(ctx context.Context, universeID string) (int, error) {
	n, err := r.q.CountRoadsByUniverse(ctx, universeID)
	if err != nil {
		return 0, fmt.Errorf("count roads: %w", err)
	}
	return int(n), nil
}
