package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"rpbot/internal/domain"
	"rpbot/internal/domain/entities"
	"rpbot/internal/ports/input"
	"rpbot/internal/ports/output"
)

var _ input.UniverseUseCase = (*UniverseService)(nil)

type UniverseService struct {
	universeRepo output.UniverseRepository
	serverRepo   output.ServerRepository
	limits       output.LimitProvider
	defaultTier  string
	logger       *slog.Logger
}

func NewUniverseService(
	universeRepo output.UniverseRepository,
	serverRepo output.ServerRepository,
	limits output.LimitProvider,
	defaultTier string,
	logger *slog.Logger,
) *UniverseService {
	return &UniverseService{
		universeRepo: universeRepo,
		serverRepo:   serverRepo,
		limits:       limits,
		defaultTier:  defaultTier,
		logger:       logger,
	}
}

// CreateUniverse creates a universe owned by the caller, binds the current
// guild to it and gives it the default stats.
func (s *UniverseService) CreateUniverse(ctx context.Context, req input.CreateUniverseRequest) (domain.Outcome, error) {
	name := strings.TrimSpace(req.Name)

	count, err := s.universeRepo.CountByCreatorID(ctx, req.CreatorID)
	if err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyUniverseLimitCheckFailed, err)
	}
	limit := s.limits.For(s.defaultTier).Universes
	if !entities.Allows(limit, count) {
		return domain.Outcome{}, domain.Fail(domain.KeyUniverseLimitReached, nil).
			WithArgs(map[string]any{"limit": limit})
	}

	if _, err := s.serverRepo.FindByGuildID(ctx, req.GuildID); err == nil {
		return domain.Outcome{}, domain.Fail(domain.KeyUniverseAlreadyExists, nil)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.Outcome{}, domain.Fail(domain.KeyUniverseGetServerFailed, err)
	}

	universe := &entities.Universe{
		Name:               name,
		CreatorID:          req.CreatorID,
		Tier:               s.defaultTier,
		GlobalTimeModifier: entities.DefaultGlobalTimeModifier,
		DefaultLocale:      req.Locale,
	}
	if _, err := s.universeRepo.CreateWithServer(ctx, universe, req.GuildID, entities.DefaultStats("")); err != nil {
		key := domain.KeyUniverseInsertFailed
		switch {
		case errors.Is(err, output.ErrServerInsert):
			key = domain.KeyUniverseServerInsertFailed
		case errors.Is(err, output.ErrStatInsert):
			key = domain.KeyUniverseSpeedStatInsertFailed
		}
		return domain.Outcome{}, domain.Fail(key, err)
	}

	s.logger.Info("🌍 Univers créé", "universe_id", universe.ID, "guild_id", req.GuildID, "creator_id", req.CreatorID)
	return domain.Outcome{
		Key:  domain.KeyUniverseCreated,
		Args: map[string]any{"universe_name": universe.Name},
	}, nil
}

func (s *UniverseService) CreatorUniverses(ctx context.Context, guildID, creatorID string) ([]entities.Universe, error) {
	if err := s.ensureUnbound(ctx, guildID); err != nil {
		return nil, err
	}
	universes, err := s.universeRepo.FindByCreatorID(ctx, creatorID)
	if err != nil {
		return nil, domain.Fail(domain.KeyAddServerUnavailable, err)
	}
	if len(universes) == 0 {
		return nil, domain.Fail(domain.KeyAddServerUnavailable, nil)
	}
	return universes, nil
}

// BindServer binds the guild to a universe owned by userID.
func (s *UniverseService) BindServer(ctx context.Context, guildID, universeID, userID string) (domain.Outcome, error) {
	if err := s.ensureUnbound(ctx, guildID); err != nil {
		return domain.Outcome{}, err
	}

	universe, err := s.universeRepo.FindByID(ctx, universeID)
	if err != nil || universe.CreatorID != userID {
		return domain.Outcome{}, domain.Fail(domain.KeyAddServerUniverseNotFound, err)
	}

	count, err := s.serverRepo.CountByUniverseID(ctx, universe.ID)
	if err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyServerLimitCheckFailed, err)
	}
	limit := s.limits.For(universe.Tier).ServersPerUniverse
	if !entities.Allows(limit, count) {
		return domain.Outcome{}, domain.Fail(domain.KeyServerLimitReached, nil).
			WithArgs(map[string]any{"limit": limit})
	}

	if _, err := s.serverRepo.Create(ctx, universe.ID, guildID); err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyAddServerInsertFailed, err)
	}

	s.logger.Info("🔗 Serveur lié à l'univers", "universe_id", universe.ID, "guild_id", guildID)
	return domain.Outcome{
		Key:  domain.KeyAddServerLinked,
		Args: map[string]any{"universe_name": universe.Name},
	}, nil
}

func (s *UniverseService) ensureUnbound(ctx context.Context, guildID string) error {
	_, err := s.serverRepo.FindByGuildID(ctx, guildID)
	switch {
	case err == nil:
		return domain.Fail(domain.KeyAddServerAlreadyBound, nil)
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return domain.Fail(domain.KeyUniverseGetServerFailed, err)
	}
}
