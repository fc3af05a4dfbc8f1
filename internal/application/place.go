package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"rpbot/internal/domain"
	"rpbot/internal/domain/entities"
	"rpbot/internal/infrastructure/logging"
	"rpbot/internal/ports/input"
	"rpbot/internal/ports/output"
)

const placeReason = "Place creation"

var _ input.PlaceUseCase = (*PlaceService)(nil)

type PlaceService struct {
	universeRepo output.UniverseRepository
	serverRepo   output.ServerRepository
	placeRepo    output.PlaceRepository
	guild        output.GuildManager
	limits       output.LimitProvider
	logger       *slog.Logger
}

func NewPlaceService(
	universeRepo output.UniverseRepository,
	serverRepo output.ServerRepository,
	placeRepo output.PlaceRepository,
	guild output.GuildManager,
	limits output.LimitProvider,
	logger *slog.Logger,
) *PlaceService {
	return &PlaceService{
		universeRepo: universeRepo,
		serverRepo:   serverRepo,
		placeRepo:    placeRepo,
		guild:        guild,
		limits:       limits,
		logger:       logger,
	}
}

// CreatePlace creates a role and a category visible to that role only, then
// records them as a place of the guild's universe.
func (s *PlaceService) CreatePlace(ctx context.Context, guildID, name string) (domain.Outcome, error) {
	name = strings.TrimSpace(name)

	server, err := s.serverRepo.FindByGuildID(ctx, guildID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Outcome{}, domain.Fail(domain.KeyPlaceServerNotFound, err)
	}
	if err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyPlaceDatabaseError, err)
	}

	universe, err := s.universeRepo.FindByID(ctx, server.UniverseID)
	if err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyPlaceDatabaseError, err)
	}
	count, err := s.placeRepo.CountByUniverseID(ctx, universe.ID)
	if err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyPlaceDatabaseError, err)
	}
	limit := s.limits.For(universe.Tier).PlacesPerUniverse
	if !entities.Allows(limit, count) {
		return domain.Outcome{}, domain.Fail(domain.KeyPlaceLimitReached, nil).
			WithArgs(map[string]any{"limit": limit})
	}

	roleID, err := s.guild.CreateRole(ctx, guildID, entities.RoleSpec{
		Name:        name,
		Permissions: domain.PlayerRolePermissions,
		Reason:      placeReason,
	})
	if err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyPlaceRoleNotCreated, err)
	}

	categoryID, err := s.guild.CreateChannel(ctx, guildID, entities.ChannelSpec{
		Name:       name,
		Kind:       entities.ChannelCategory,
		Overwrites: domain.MembersOnlyOverwrites(roleID, guildID),
		Reason:     placeReason,
	})
	if err != nil {
		return domain.Outcome{}, s.rollback(ctx, guildID, roleID, "", err)
	}

	place := &entities.Place{
		UniverseID: universe.ID,
		GuildID:    guildID,
		CategoryID: categoryID,
		RoleID:     roleID,
		Name:       name,
	}
	if err := s.placeRepo.Create(ctx, place); err != nil {
		return domain.Outcome{}, s.rollback(ctx, guildID, roleID, categoryID, err)
	}

	s.logger.Info("📍 Lieu créé", "guild_id", guildID, "place_id", place.ID, "category_id", categoryID)
	return domain.Outcome{
		Key:  domain.KeyPlaceCreated,
		Args: map[string]any{"place_name": name},
	}, nil
}

// rollback deletes the role, then the category when one was created.
func (s *PlaceService) rollback(ctx context.Context, guildID, roleID, categoryID string, cause error) error {
	var errs []error
	if err := s.guild.DeleteRole(ctx, guildID, roleID); err != nil {
		s.logger.Error("❌ Suppression du rôle du lieu impossible", "guild_id", guildID, "role_id", roleID, logging.Err(err))
		errs = append(errs, err)
	}
	if categoryID != "" {
		if err := s.guild.DeleteChannel(ctx, categoryID); err != nil {
			s.logger.Error("❌ Suppression de la catégorie du lieu impossible", "guild_id", guildID, "category_id", categoryID, logging.Err(err))
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return domain.Fail(domain.KeyRoleRollbackFailed, errors.Join(append([]error{cause}, errs...)...))
	}
	return domain.Fail(domain.KeyPlaceRollbackComplete, cause)
}
