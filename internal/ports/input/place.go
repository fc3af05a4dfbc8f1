package input

import (
	"context"

	"rpbot/internal/domain"
)

type PlaceUseCase interface {
	CreatePlace(ctx context.Context, guildID, name string) (domain.Outcome, error)
}

type CreateRoadRequest struct {
	GuildID            string
	PlaceOneCategoryID string
	PlaceTwoCategoryID string
	Distance           int64
}

type RoadUseCase interface {
	CreateRoad(ctx context.Context, req CreateRoadRequest) (domain.Outcome, error)
}
