package input

import (
	"context"

	"rpbot/internal/domain"
)

type SetupRequest struct {
	GuildID string
	Locale  string
	Full    bool
}

type SetupUseCase interface {
	// NeedsConfirmation reports whether a previous setup already created resources.
	NeedsConfirmation(ctx context.Context, guildID string) (bool, error)
	Setup(ctx context.Context, req SetupRequest) (domain.Outcome, error)
}
