package application

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"rpbot/internal/domain"
	"rpbot/internal/domain/entities"
	"rpbot/internal/infrastructure/logging"
	"rpbot/internal/ports/input"
	"rpbot/internal/ports/output"
)

const roadReason = "Road creation"

var _ input.RoadUseCase = (*RoadService)(nil)

type RoadService struct {
	universeRepo output.UniverseRepository
	serverRepo   output.ServerRepository
	placeRepo    output.PlaceRepository
	roadRepo     output.RoadRepository
	guild        output.GuildManager
	limits       output.LimitProvider
	logger       *slog.Logger
}

func NewRoadService(
	universeRepo output.UniverseRepository,
	serverRepo output.ServerRepository,
	placeRepo output.PlaceRepository,
	roadRepo output.RoadRepository,
	guild output.GuildManager,
	limits output.LimitProvider,
	logger *slog.Logger,
) *RoadService {
	return &RoadService{
		universeRepo: universeRepo,
		serverRepo:   serverRepo,
		placeRepo:    placeRepo,
		roadRepo:     roadRepo,
		guild:        guild,
		limits:       limits,
		logger:       logger,
	}
}

// CreateRoad links two places with a channel in the road category that only
// the road's own role can see.
func (s *RoadService) CreateRoad(ctx context.Context, req input.CreateRoadRequest) (domain.Outcome, error) {
	if req.PlaceOneCategoryID == req.PlaceTwoCategoryID {
		return domain.Outcome{}, domain.Fail(domain.KeyRoadSamePlace, nil)
	}

	server, err := s.serverRepo.FindByGuildID(ctx, req.GuildID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Outcome{}, domain.Fail(domain.KeyRoadServerNotFound, err)
	}
	if err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyRoadDatabaseError, err)
	}
	if server.RoadCategoryID == "" {
		return domain.Outcome{}, domain.Fail(domain.KeyRoadCategoryMissing, nil)
	}

	one, two, err := s.findPlaces(ctx, server.UniverseID, req.PlaceOneCategoryID, req.PlaceTwoCategoryID)
	if err != nil {
		return domain.Outcome{}, err
	}

	universe, err := s.universeRepo.FindByID(ctx, server.UniverseID)
	if err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyRoadDatabaseError, err)
	}
	count, err := s.roadRepo.CountByUniverseID(ctx, universe.ID)
	if err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyRoadDatabaseError, err)
	}
	limit := s.limits.For(universe.Tier).RoadsPerUniverse
	if !entities.Allows(limit, count) {
		return domain.Outcome{}, domain.Fail(domain.KeyRoadLimitReached, nil).
			WithArgs(map[string]any{"limit": limit})
	}

	name := one.Name + "-" + two.Name
	roleID, err := s.guild.CreateRole(ctx, req.GuildID, entities.RoleSpec{
		Name:        name,
		Permissions: domain.PlayerRolePermissions,
		Reason:      roadReason,
	})
	if err != nil {
		return domain.Outcome{}, domain.Fail(domain.KeyRoadRoleCreationFailed, err)
	}

	channelID, err := s.guild.CreateChannel(ctx, req.GuildID, entities.ChannelSpec{
		Name:       name,
		Kind:       entities.ChannelText,
		ParentID:   server.RoadCategoryID,
		Overwrites: domain.MembersOnlyOverwrites(roleID, req.GuildID),
		Reason:     roadReason,
	})
	if err != nil {
		if delErr := s.guild.DeleteRole(ctx, req.GuildID, roleID); delErr != nil {
			s.logger.Error("❌ Suppression du rôle de la route impossible", "guild_id", req.GuildID, "role_id", roleID, logging.Err(delErr))
			return domain.Outcome{}, domain.Fail(domain.KeyRoadChannelFailedRollbackFailed, errors.Join(err, delErr))
		}
		return domain.Outcome{}, domain.Fail(domain.KeyRoadChannelFailedRollbackSuccess, err)
	}

	road := &entities.Road{
		UniverseID: universe.ID,
		GuildID:    req.GuildID,
		RoleID:     roleID,
		ChannelID:  channelID,
		PlaceOneID: one.ID,
		PlaceTwoID: two.ID,
		Distance:   req.Distance,
	}
	if err := s.roadRepo.Create(ctx, road); err != nil {
		return domain.Outcome{}, s.rollbackInsert(ctx, req.GuildID, roleID, channelID, err)
	}

	s.logger.Info("🛣️ Route créée", "guild_id", req.GuildID, "road_id", road.ID, "place_one", one.ID, "place_two", two.ID)
	return domain.Outcome{Key: domain.KeyRoadCreated}, nil
}

// findPlaces looks both categories up concurrently.
func (s *RoadService) findPlaces(ctx context.Context, universeID, oneID, twoID string) (*entities.Place, *entities.Place, error) {
	var (
		one, two       *entities.Place
		oneErr, twoErr error
		g              errgroup.Group
	)
	g.Go(func() error {
		one, oneErr = s.placeRepo.FindByCategoryID(ctx, universeID, oneID)
		return nil
	})
	g.Go(func() error {
		two, twoErr = s.placeRepo.FindByCategoryID(ctx, universeID, twoID)
		return nil
	})
	_ = g.Wait()

	for _, lookup := range []struct {
		err         error
		notFoundKey string
	}{
		{oneErr, domain.KeyPlaceOneNotFound},
		{twoErr, domain.KeyPlaceTwoNotFound},
	} {
		switch {
		case lookup.err == nil:
		case errors.Is(lookup.err, domain.ErrNotFound):
			return nil, nil, domain.Fail(lookup.notFoundKey, lookup.err)
		default:
			return nil, nil, domain.Fail(domain.KeyRoadDatabaseError, lookup.err)
		}
	}
	return one, two, nil
}

// rollbackInsert deletes the role, then the channel. A role failure takes
// precedence in the returned key.
func (s *RoadService) rollbackInsert(ctx context.Context, guildID, roleID, channelID string, cause error) error {
	roleErr := s.guild.DeleteRole(ctx, guildID, roleID)
	if roleErr != nil {
		s.logger.Error("❌ Suppression du rôle de la route impossible", "guild_id", guildID, "role_id", roleID, logging.Err(roleErr))
	}
	channelErr := s.guild.DeleteChannel(ctx, channelID)
	if channelErr != nil {
		s.logger.Error("❌ Suppression du salon de la route impossible", "guild_id", guildID, "channel_id", channelID, logging.Err(channelErr))
	}

	switch {
	case roleErr != nil:
		return domain.Fail(domain.KeyRoadInsertFailedRollbackRoleFailed, errors.Join(cause, roleErr, channelErr))
	case channelErr != nil:
		return domain.Fail(domain.KeyRoadInsertFailedRollbackChannelFail, errors.Join(cause, channelErr))
	}
	return domain.Fail(domain.KeyRoadInsertFailedRollbackSuccess, cause)
}
