package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpbot/internal/domain"
	"rpbot/internal/domain/entities"
	"rpbot/internal/ports/input"
)

type setupFixture struct {
	servers *fakeServers
	guild   *fakeGuild
	svc     *SetupService
}

func newSetupFixture() *setupFixture {
	servers := newFakeServers()
	universes := newFakeUniverses(servers)
	universes.add(entities.Universe{ID: "u1", CreatorID: "alice"})
	servers.byGuild["g1"] = &entities.Server{ID: 1, UniverseID: "u1", GuildID: "g1"}
	guild := newFakeGuild()
	return &setupFixture{
		servers: servers,
		guild:   guild,
		svc:     NewSetupService(universes, servers, guild, fakeTranslator{}, discardLogger()),
	}
}

func (f *setupFixture) run(full bool) (domain.Outcome, error) {
	return f.svc.Setup(context.Background(), input.SetupRequest{GuildID: "g1", Locale: "fr", Full: full})
}

func name(key string) string { return "fr:" + key }

func TestPartialSetup(t *testing.T) {
	f := newSetupFixture()

	out, err := f.run(false)
	require.NoError(t, err)
	assert.Equal(t, domain.KeySetupSuccessMessage, out.Key)

	srv := f.servers.byGuild["g1"]
	assert.Equal(t, "g1", srv.EveryoneRoleID)
	for _, id := range []string{srv.AdminRoleID, srv.ModeratorRoleID, srv.SpectatorRoleID, srv.PlayerRoleID} {
		assert.Contains(t, f.guild.roles, id)
	}
	assert.Equal(t, name(domain.KeyAdminRoleName), f.guild.roles[srv.AdminRoleID].Name)
	assert.Equal(t, domain.AdminRolePermissions, f.guild.roles[srv.AdminRoleID].Permissions)
	assert.Equal(t, domain.ModeratorRolePermissions, f.guild.roles[srv.ModeratorRoleID].Permissions)

	road, ok := f.guild.channels[srv.RoadCategoryID]
	require.True(t, ok)
	assert.Equal(t, entities.ChannelCategory, road.Kind)
	assert.Equal(t, domain.RoadCategoryOverwrites("g1", srv.PlayerRoleID, srv.SpectatorRoleID, srv.ModeratorRoleID), road.Overwrites)

	assert.Equal(t, []entities.Position{
		{ID: "bot", Position: 5},
		{ID: srv.AdminRoleID, Position: 4},
		{ID: srv.ModeratorRoleID, Position: 3},
		{ID: srv.SpectatorRoleID, Position: 2},
		{ID: srv.PlayerRoleID, Position: 1},
	}, f.guild.rolePositions)

	assert.Empty(t, srv.AdminCategoryID)
	assert.Len(t, f.guild.channels, 1)
}

func TestFullSetup(t *testing.T) {
	f := newSetupFixture()

	_, err := f.run(true)
	require.NoError(t, err)

	srv := f.servers.byGuild["g1"]
	assert.Len(t, f.guild.channels, 10)

	admin := f.guild.channels[srv.AdminCategoryID]
	assert.Equal(t, domain.AdminCategoryOverwrites("g1", srv.SpectatorRoleID, srv.PlayerRoleID, srv.ModeratorRoleID), admin.Overwrites)
	for _, id := range []string{srv.LogChannelID, srv.CommandsChannelID, srv.ModerationChannelID} {
		assert.Equal(t, srv.AdminCategoryID, f.guild.channels[id].ParentID)
	}
	assert.Equal(t, srv.NRPCategoryID, f.guild.channels[srv.NRPGeneralChannelID].ParentID)

	character := f.guild.channels[srv.RPCharacterChannelID]
	assert.Equal(t, srv.RPCategoryID, character.ParentID)
	assert.Equal(t, domain.CharacterChannelOverwrites(srv.PlayerRoleID), character.Overwrites)

	wiki := f.guild.channels[srv.RPWikiChannelID]
	assert.Equal(t, entities.ChannelForum, wiki.Kind)
	assert.Equal(t, srv.RPCategoryID, wiki.ParentID)

	assert.Equal(t, 0, f.guild.channels[srv.AdminCategoryID].Position)
	assert.Equal(t, 1, f.guild.channels[srv.NRPCategoryID].Position)
	assert.Equal(t, 2, f.guild.channels[srv.RPCategoryID].Position)
	assert.Equal(t, 3, f.guild.channels[srv.RoadCategoryID].Position)

	positions := map[string]int{}
	for _, p := range f.guild.channelPositions {
		positions[p.ID] = p.Position
	}
	assert.Equal(t, 0, positions[srv.AdminCategoryID])
	assert.Equal(t, 1, positions[srv.NRPCategoryID])
	assert.Equal(t, 2, positions[srv.RPCategoryID])
	assert.Equal(t, 3, positions[srv.RoadCategoryID])
	assert.Equal(t, 4, positions["unmanaged"])
	assert.Equal(t, 4, positions[srv.LogChannelID])
}

func TestSetupReusesExistingResources(t *testing.T) {
	f := newSetupFixture()
	_, err := f.run(true)
	require.NoError(t, err)
	first := *f.servers.byGuild["g1"]

	needs, err := f.svc.NeedsConfirmation(context.Background(), "g1")
	require.NoError(t, err)
	assert.True(t, needs)

	// The player role and the wiki were deleted by hand.
	delete(f.guild.roles, first.PlayerRoleID)
	delete(f.guild.channels, first.RPWikiChannelID)

	_, err = f.run(true)
	require.NoError(t, err)
	second := f.servers.byGuild["g1"]

	assert.Equal(t, first.AdminRoleID, second.AdminRoleID)
	assert.Equal(t, first.RoadCategoryID, second.RoadCategoryID)
	assert.Equal(t, first.LogChannelID, second.LogChannelID)
	assert.NotEqual(t, first.PlayerRoleID, second.PlayerRoleID)
	assert.NotEqual(t, first.RPWikiChannelID, second.RPWikiChannelID)
	assert.Len(t, f.guild.roles, 4)
	assert.Len(t, f.guild.channels, 10)
}

func TestSetupNotBound(t *testing.T) {
	f := newSetupFixture()

	_, err := f.svc.Setup(context.Background(), input.SetupRequest{GuildID: "nope"})
	assert.Equal(t, []string{domain.KeySetupUniverseNotFound}, domain.Keys(err))

	needs, err := f.svc.NeedsConfirmation(context.Background(), "g1")
	require.NoError(t, err)
	assert.False(t, needs)

	f.servers.findErr = errBoom
	_, err = f.svc.NeedsConfirmation(context.Background(), "g1")
	assert.Equal(t, []string{domain.KeySetupServerNotFound}, domain.Keys(err))
}

func TestSetupRoleFailureRollsBack(t *testing.T) {
	f := newSetupFixture()
	f.guild.failRole[name(domain.KeyModeratorRoleName)] = true
	f.guild.failRole[name(domain.KeyPlayerRoleName)] = true

	_, err := f.run(true)
	var se *domain.SetupError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, []string{domain.KeySetupModeratorRole, domain.KeySetupPlayerRole}, se.Keys)
	assert.Empty(t, f.guild.roles, "created roles are deleted")
	assert.Empty(t, f.servers.byGuild["g1"].AdminRoleID, "nothing is saved")
}

func TestSetupRollbackFailure(t *testing.T) {
	f := newSetupFixture()
	f.guild.failRole[name(domain.KeyPlayerRoleName)] = true
	f.guild.failDeleteRole = true

	_, err := f.run(false)
	assert.Equal(t, []string{domain.KeySetupRollbackFailed}, domain.Keys(err))
	assert.ErrorIs(t, err, errBoom)
}

func TestSetupReorderFailure(t *testing.T) {
	f := newSetupFixture()
	f.guild.failReorder = true

	_, err := f.run(false)
	assert.Equal(t, []string{domain.KeySetupReorderFailed}, domain.Keys(err))
	assert.Empty(t, f.guild.roles)
}

func TestSetupRoadCategoryFailure(t *testing.T) {
	f := newSetupFixture()
	f.guild.failChannel[name(domain.KeyRoadCategoryName)] = true

	_, err := f.run(false)
	assert.Equal(t, []string{domain.KeySetupRoadCategory}, domain.Keys(err))
	assert.Empty(t, f.guild.roles)
}

func TestSetupChannelFailureRollsBackEverything(t *testing.T) {
	f := newSetupFixture()
	f.guild.failChannel[name(domain.KeyRPCategoryName)] = true
	f.guild.failChannel[name(domain.KeyLogChannelName)] = true

	_, err := f.run(true)
	assert.Equal(t, []string{
		domain.KeySetupRPCategory,
		domain.KeySetupLogChannel,
		domain.KeySetupCharacterChannel,
		domain.KeySetupWikiChannel,
		domain.KeySetupChannelsFailed,
	}, domain.Keys(err))
	assert.Empty(t, f.guild.roles)
	assert.Empty(t, f.guild.channels)
}

func TestSetupChannelReorderIsBestEffort(t *testing.T) {
	f := newSetupFixture()
	f.guild.failReorderChan = true

	_, err := f.run(true)
	assert.NoError(t, err)
}

func TestSetupServerUpdateFailure(t *testing.T) {
	f := newSetupFixture()
	f.servers.updateErr = errBoom

	_, err := f.run(true)
	assert.Equal(t, []string{domain.KeySetupServerUpdate}, domain.Keys(err))
	assert.Empty(t, f.guild.roles)
	assert.Empty(t, f.guild.channels)
}
