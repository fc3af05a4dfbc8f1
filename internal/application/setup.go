package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"rpbot/internal/domain"
	"rpbot/internal/domain/entities"
	"rpbot/internal/infrastructure/logging"
	"rpbot/internal/ports/input"
	"rpbot/internal/ports/output"
)

const setupReason = "Universe setup"

var _ input.SetupUseCase = (*SetupService)(nil)

type SetupService struct {
	universeRepo output.UniverseRepository
	serverRepo   output.ServerRepository
	guild        output.GuildManager
	t            output.T
	logger       *slog.Logger
}

func NewSetupService(
	universeRepo output.UniverseRepository,
	serverRepo output.ServerRepository,
	guild output.GuildManager,
	t output.T,
	logger *slog.Logger,
) *SetupService {
	return &SetupService{
		universeRepo: universeRepo,
		serverRepo:   serverRepo,
		guild:        guild,
		t:            t,
		logger:       logger,
	}
}

func (s *SetupService) NeedsConfirmation(ctx context.Context, guildID string) (bool, error) {
	server, err := s.loadServer(ctx, guildID)
	if err != nil {
		return false, err
	}
	return server.IsConfigured(), nil
}

// Setup creates the roles, then the categories and channels of a full setup,
// and saves their ids. Resources left by a previous setup are reused when
// they still exist. On failure everything created by this call is deleted.
func (s *SetupService) Setup(ctx context.Context, req input.SetupRequest) (domain.Outcome, error) {
	server, err := s.loadServer(ctx, req.GuildID)
	if err != nil {
		return domain.Outcome{}, err
	}

	run := s.newRun(ctx, req, server)
	if err := run.partial(ctx); err != nil {
		return domain.Outcome{}, err
	}
	if req.Full {
		if err := run.complementary(ctx); err != nil {
			return domain.Outcome{}, err
		}
	}

	server.EveryoneRoleID = req.GuildID
	if err := s.serverRepo.UpdateResources(ctx, server); err != nil {
		return domain.Outcome{}, run.abort(ctx, []string{domain.KeySetupServerUpdate}, err)
	}

	s.logger.Info("🛠️ Serveur configuré", "guild_id", req.GuildID, "full", req.Full,
		"roles_created", len(run.createdRoles), "channels_created", len(run.createdChannels))
	return domain.Outcome{Key: domain.KeySetupSuccessMessage}, nil
}

func (s *SetupService) loadServer(ctx context.Context, guildID string) (*entities.Server, error) {
	server, err := s.serverRepo.FindByGuildID(ctx, guildID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.SetupError{Keys: []string{domain.KeySetupUniverseNotFound}, Err: err}
	}
	if err != nil {
		return nil, &domain.SetupError{Keys: []string{domain.KeySetupServerNotFound}, Err: err}
	}
	if _, err := s.universeRepo.FindByID(ctx, server.UniverseID); err != nil {
		return nil, &domain.SetupError{Keys: []string{domain.KeySetupUniverseNotFound}, Err: err}
	}
	return server, nil
}

// setupRun tracks what a single Setup call created so it can be undone.
type setupRun struct {
	s       *SetupService
	guildID string
	locale  string
	server  *entities.Server

	roles    map[string]bool
	channels map[string]bool

	createdRoles    []string
	createdChannels []string
}

func (s *SetupService) newRun(ctx context.Context, req input.SetupRequest, server *entities.Server) *setupRun {
	r := &setupRun{s: s, guildID: req.GuildID, locale: req.Locale, server: server}

	roleIDs, err := s.guild.RoleIDs(ctx, req.GuildID)
	if err != nil {
		s.logger.Warn("⚠️ Impossible de lister les rôles, ils seront recréés", "guild_id", req.GuildID, logging.Err(err))
	}
	r.roles = toSet(roleIDs)

	channelIDs, err := s.guild.ChannelIDs(ctx, req.GuildID)
	if err != nil {
		s.logger.Warn("⚠️ Impossible de lister les salons, ils seront recréés", "guild_id", req.GuildID, logging.Err(err))
	}
	r.channels = toSet(channelIDs)
	return r
}

func (r *setupRun) name(key string) string {
	return r.s.t.T(r.locale, key, nil)
}

// partial ensures the four universe roles, orders them under the bot and
// ensures the road category.
func (r *setupRun) partial(ctx context.Context) error {
	srv := r.server
	roles := []struct {
		id      *string
		nameKey string
		perms   int64
		failKey string
	}{
		{&srv.AdminRoleID, domain.KeyAdminRoleName, domain.AdminRolePermissions, domain.KeySetupAdminRole},
		{&srv.ModeratorRoleID, domain.KeyModeratorRoleName, domain.ModeratorRolePermissions, domain.KeySetupModeratorRole},
		{&srv.SpectatorRoleID, domain.KeySpectatorRoleName, domain.SpectatorRolePermissions, domain.KeySetupSpectatorRole},
		{&srv.PlayerRoleID, domain.KeyPlayerRoleName, domain.PlayerRolePermissions, domain.KeySetupPlayerRole},
	}

	var failed []string
	var errs []error
	for _, role := range roles {
		if r.roles[*role.id] {
			continue
		}
		id, err := r.s.guild.CreateRole(ctx, r.guildID, entities.RoleSpec{
			Name:        r.name(role.nameKey),
			Permissions: role.perms,
			Reason:      setupReason,
		})
		if err != nil {
			failed = append(failed, role.failKey)
			errs = append(errs, err)
			continue
		}
		*role.id = id
		r.createdRoles = append(r.createdRoles, id)
	}
	if len(failed) > 0 {
		return r.abort(ctx, failed, errors.Join(errs...))
	}

	if err := r.reorderRoles(ctx); err != nil {
		return r.abort(ctx, []string{domain.KeySetupReorderFailed}, err)
	}

	err := r.ensureChannel(ctx, &srv.RoadCategoryID, entities.ChannelSpec{
		Name:       r.name(domain.KeyRoadCategoryName),
		Kind:       entities.ChannelCategory,
		Position:   3,
		Overwrites: domain.RoadCategoryOverwrites(r.guildID, srv.PlayerRoleID, srv.SpectatorRoleID, srv.ModeratorRoleID),
	})
	if err != nil {
		return r.abort(ctx, []string{domain.KeySetupRoadCategory}, err)
	}
	return nil
}

func (r *setupRun) reorderRoles(ctx context.Context) error {
	botRoleID, err := r.s.guild.BotRoleID(ctx, r.guildID)
	if err != nil {
		return fmt.Errorf("rôle du bot: %w", err)
	}
	srv := r.server
	return r.s.guild.ReorderRoles(ctx, r.guildID, []entities.Position{
		{ID: botRoleID, Position: 5},
		{ID: srv.AdminRoleID, Position: 4},
		{ID: srv.ModeratorRoleID, Position: 3},
		{ID: srv.SpectatorRoleID, Position: 2},
		{ID: srv.PlayerRoleID, Position: 1},
	})
}

// complementary ensures the administration, out-of-character and role-play
// categories and their channels.
func (r *setupRun) complementary(ctx context.Context) error {
	srv := r.server

	var failed []string
	var errs []error
	ensure := func(id *string, failKey string, spec entities.ChannelSpec) {
		if err := r.ensureChannel(ctx, id, spec); err != nil {
			failed = append(failed, failKey)
			errs = append(errs, err)
		}
	}

	ensure(&srv.AdminCategoryID, domain.KeySetupAdminCategory, entities.ChannelSpec{
		Name:       r.name(domain.KeyAdminCategoryName),
		Kind:       entities.ChannelCategory,
		Position:   0,
		Overwrites: domain.AdminCategoryOverwrites(r.guildID, srv.SpectatorRoleID, srv.PlayerRoleID, srv.ModeratorRoleID),
	})
	ensure(&srv.NRPCategoryID, domain.KeySetupNRPCategory, entities.ChannelSpec{
		Name:     r.name(domain.KeyNRPCategoryName),
		Kind:     entities.ChannelCategory,
		Position: 1,
	})
	ensure(&srv.RPCategoryID, domain.KeySetupRPCategory, entities.ChannelSpec{
		Name:     r.name(domain.KeyRPCategoryName),
		Kind:     entities.ChannelCategory,
		Position: 2,
	})

	channels := []struct {
		id      *string
		parent  string
		failKey string
		spec    entities.ChannelSpec
	}{
		{&srv.LogChannelID, srv.AdminCategoryID, domain.KeySetupLogChannel,
			entities.ChannelSpec{Name: r.name(domain.KeyLogChannelName), Kind: entities.ChannelText}},
		{&srv.CommandsChannelID, srv.AdminCategoryID, domain.KeySetupCommandsChannel,
			entities.ChannelSpec{Name: r.name(domain.KeyCommandsChannelName), Kind: entities.ChannelText}},
		{&srv.ModerationChannelID, srv.AdminCategoryID, domain.KeySetupModerationChannel,
			entities.ChannelSpec{Name: r.name(domain.KeyModerationChannelName), Kind: entities.ChannelText}},
		{&srv.NRPGeneralChannelID, srv.NRPCategoryID, domain.KeySetupNRPGeneralChannel,
			entities.ChannelSpec{Name: r.name(domain.KeyNRPGeneralChannelName), Kind: entities.ChannelText}},
		{&srv.RPCharacterChannelID, srv.RPCategoryID, domain.KeySetupCharacterChannel,
			entities.ChannelSpec{
				Name:       r.name(domain.KeyRPCharacterChannelName),
				Kind:       entities.ChannelText,
				Overwrites: domain.CharacterChannelOverwrites(srv.PlayerRoleID),
			}},
		{&srv.RPWikiChannelID, srv.RPCategoryID, domain.KeySetupWikiChannel,
			entities.ChannelSpec{Name: r.name(domain.KeyRPWikiChannelName), Kind: entities.ChannelForum}},
	}
	for _, ch := range channels {
		if ch.parent == "" {
			failed = append(failed, ch.failKey)
			continue
		}
		ch.spec.ParentID = ch.parent
		ensure(ch.id, ch.failKey, ch.spec)
	}

	if len(failed) > 0 {
		return r.abort(ctx, append(failed, domain.KeySetupChannelsFailed), errors.Join(errs...))
	}

	r.reorderChannels(ctx)
	return nil
}

func (r *setupRun) ensureChannel(ctx context.Context, id *string, spec entities.ChannelSpec) error {
	if r.channels[*id] {
		return nil
	}
	spec.Reason = setupReason
	created, err := r.s.guild.CreateChannel(ctx, r.guildID, spec)
	if err != nil {
		return err
	}
	*id = created
	r.channels[created] = true
	r.createdChannels = append(r.createdChannels, created)
	return nil
}

// reorderChannels puts the managed categories first. Failures are logged
// and ignored.
func (r *setupRun) reorderChannels(ctx context.Context) {
	ids, err := r.s.guild.ChannelIDs(ctx, r.guildID)
	if err != nil {
		r.s.logger.Warn("⚠️ Impossible de lister les salons pour les réordonner", "guild_id", r.guildID, logging.Err(err))
		return
	}

	srv := r.server
	managed := map[string]int{
		srv.AdminCategoryID: 0,
		srv.NRPCategoryID:   1,
		srv.RPCategoryID:    2,
		srv.RoadCategoryID:  3,
	}
	positions := make([]entities.Position, 0, len(ids))
	for _, id := range ids {
		pos, ok := managed[id]
		if !ok {
			pos = len(managed)
		}
		positions = append(positions, entities.Position{ID: id, Position: pos})
	}
	if err := r.s.guild.ReorderChannels(ctx, r.guildID, positions); err != nil {
		r.s.logger.Warn("⚠️ Réorganisation des salons impossible", "guild_id", r.guildID, logging.Err(err))
	}
}

// abort deletes everything this run created and builds the setup error.
// A failed rollback replaces the step keys with setup__rollback_failed.
func (r *setupRun) abort(ctx context.Context, keys []string, cause error) error {
	if err := r.rollback(ctx); err != nil {
		return &domain.SetupError{Keys: []string{domain.KeySetupRollbackFailed}, Err: errors.Join(cause, err)}
	}
	return &domain.SetupError{Keys: keys, Err: cause}
}

func (r *setupRun) rollback(ctx context.Context) error {
	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	record := func(kind, id string, err error) {
		if err == nil {
			return
		}
		r.s.logger.Error("❌ Suppression impossible pendant le rollback", "guild_id", r.guildID, "kind", kind, "id", id, logging.Err(err))
		mu.Lock()
		errs = append(errs, fmt.Errorf("%s %s: %w", kind, id, err))
		mu.Unlock()
	}

	for _, id := range r.createdChannels {
		g.Go(func() error {
			record("salon", id, r.s.guild.DeleteChannel(ctx, id))
			return nil
		})
	}
	for _, id := range r.createdRoles {
		g.Go(func() error {
			record("rôle", id, r.s.guild.DeleteRole(ctx, r.guildID, id))
			return nil
		})
	}
	_ = g.Wait()

	r.createdChannels, r.createdRoles = nil, nil
	return errors.Join(errs...)
}

func toSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
