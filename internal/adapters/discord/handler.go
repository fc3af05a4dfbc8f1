package discord

import (
	"log/slog"
	"time"

	"rpbot/internal/ports/input"
	"rpbot/internal/ports/output"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	universeUseCase input.UniverseUseCase
	setupUseCase    input.SetupUseCase
	placeUseCase    input.PlaceUseCase
	roadUseCase     input.RoadUseCase
	loc             output.Localizations
	prompts         *prompts
	confirmTimeout  time.Duration
	selectTimeout   time.Duration
	defaultLocale   string
	logger          *slog.Logger
}

// Settings tune the interaction handling. The timeouts bound how long the
// setup confirmation buttons and the universe select menu stay usable.
// DefaultLocale is used when an interaction carries no client locale.
type Settings struct {
	ConfirmTimeout time.Duration
	SelectTimeout  time.Duration
	DefaultLocale  string
}

// NewHandler creates a Handler.
func NewHandler(
	universeUseCase input.UniverseUseCase,
	setupUseCase input.SetupUseCase,
	placeUseCase input.PlaceUseCase,
	roadUseCase input.RoadUseCase,
	loc output.Localizations,
	settings Settings,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		universeUseCase: universeUseCase,
		setupUseCase:    setupUseCase,
		placeUseCase:    placeUseCase,
		roadUseCase:     roadUseCase,
		loc:             loc,
		prompts:         newPrompts(),
		confirmTimeout:  settings.ConfirmTimeout,
		selectTimeout:   settings.SelectTimeout,
		defaultLocale:   settings.DefaultLocale,
		logger:          logger,
	}
}
