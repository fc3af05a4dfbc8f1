package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"rpbot/internal/domain"
	"rpbot/internal/domain/entities"
	"rpbot/internal/ports/output"
)

var errBoom = errors.New("boom")

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeLimits map[string]entities.TierLimits

func (l fakeLimits) For(tier string) entities.TierLimits {
	if t, ok := l[tier]; ok {
		return t
	}
	return l["free"]
}

type fakeTranslator struct{}

func (fakeTranslator) T(locale, key string, _ map[string]any) string {
	return locale + ":" + key
}

type fakeUniverses struct {
	byID      map[string]*entities.Universe
	stats     map[string][]entities.Stat
	servers   *fakeServers
	createErr error
	countErr  error
	findErr   error
}

func newFakeUniverses(servers *fakeServers) *fakeUniverses {
	return &fakeUniverses{byID: map[string]*entities.Universe{}, stats: map[string][]entities.Stat{}, servers: servers}
}

func (f *fakeUniverses) add(u entities.Universe) {
	f.byID[u.ID] = &u
}

func (f *fakeUniverses) CreateWithServer(ctx context.Context, u *entities.Universe, guildID string, stats []entities.Stat) (*entities.Server, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = fmt.Sprintf("u%d", len(f.byID)+1)
	f.add(*u)
	for _, s := range stats {
		s.UniverseID = u.ID
		f.stats[u.ID] = append(f.stats[u.ID], s)
	}
	return f.servers.Create(ctx, u.ID, guildID)
}

func (f *fakeUniverses) FindByID(_ context.Context, id string) (*entities.Universe, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	u, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUniverses) FindByCreatorID(_ context.Context, creatorID string) ([]entities.Universe, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	var out []entities.Universe
	for _, u := range f.byID {
		if u.CreatorID == creatorID {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUniverses) CountByCreatorID(ctx context.Context, creatorID string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	list, _ := f.FindByCreatorID(ctx, creatorID)
	return len(list), nil
}

func (f *fakeUniverses) Stats(_ context.Context, universeID string) ([]entities.Stat, error) {
	return f.stats[universeID], nil
}

type fakeServers struct {
	byGuild   map[string]*entities.Server
	findErr   error
	countErr  error
	createErr error
	updateErr error
}

func newFakeServers() *fakeServers {
	return &fakeServers{byGuild: map[string]*entities.Server{}}
}

func (f *fakeServers) Create(_ context.Context, universeID, guildID string) (*entities.Server, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	s := &entities.Server{ID: int64(len(f.byGuild) + 1), UniverseID: universeID, GuildID: guildID}
	f.byGuild[guildID] = s
	cp := *s
	return &cp, nil
}

func (f *fakeServers) FindByGuildID(_ context.Context, guildID string) (*entities.Server, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	s, ok := f.byGuild[guildID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (f *fakeServers) CountByUniverseID(_ context.Context, universeID string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	n := 0
	for _, s := range f.byGuild {
		if s.UniverseID == universeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeServers) UpdateResources(_ context.Context, s *entities.Server) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	cp := *s
	f.byGuild[s.GuildID] = &cp
	return nil
}

type fakePlaces struct {
	mu         sync.Mutex
	byCategory map[string]*entities.Place
	createErr  error
	findErr    error
}

func newFakePlaces() *fakePlaces {
	return &fakePlaces{byCategory: map[string]*entities.Place{}}
}

func (f *fakePlaces) Create(_ context.Context, p *entities.Place) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = int64(len(f.byCategory) + 1)
	cp := *p
	f.byCategory[p.CategoryID] = &cp
	return nil
}

func (f *fakePlaces) FindByCategoryID(_ context.Context, universeID, categoryID string) (*entities.Place, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.byCategory[categoryID]
	if !ok || p.UniverseID != universeID {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePlaces) CountByUniverseID(_ context.Context, universeID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, p := range f.byCategory {
		if p.UniverseID == universeID {
			n++
		}
	}
	return n, nil
}

type fakeRoads struct {
	roads     []entities.Road
	createErr error
}

func (f *fakeRoads) Create(_ context.Context, r *entities.Road) error {
	if f.createErr != nil {
		return f.createErr
	}
	r.ID = int64(len(f.roads) + 1)
	f.roads = append(f.roads, *r)
	return nil
}

func (f *fakeRoads) CountByUniverseID(_ context.Context, universeID string) (int, error) {
	n := 0
	for _, r := range f.roads {
		if r.UniverseID == universeID {
			n++
		}
	}
	return n, nil
}

// fakeGuild records Discord resources in memory. Failures are injected by
// resource name.
type fakeGuild struct {
	mu sync.Mutex

	next     int
	roles    map[string]entities.RoleSpec
	channels map[string]entities.ChannelSpec

	failRole        map[string]bool
	failChannel     map[string]bool
	failDeleteRole  bool
	failDeleteChan  bool
	failReorder     bool
	failReorderChan bool

	rolePositions    []entities.Position
	channelPositions []entities.Position
}

var _ output.GuildManager = (*fakeGuild)(nil)

func newFakeGuild() *fakeGuild {
	return &fakeGuild{
		roles:       map[string]entities.RoleSpec{},
		channels:    map[string]entities.ChannelSpec{},
		failRole:    map[string]bool{},
		failChannel: map[string]bool{},
	}
}

func (f *fakeGuild) id(prefix string) string {
	f.next++
	return fmt.Sprintf("%s%d", prefix, f.next)
}

func (f *fakeGuild) CreateRole(_ context.Context, _ string, spec entities.RoleSpec) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRole[spec.Name] {
		return "", errBoom
	}
	id := f.id("role")
	f.roles[id] = spec
	return id, nil
}

func (f *fakeGuild) DeleteRole(_ context.Context, _, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDeleteRole {
		return errBoom
	}
	delete(f.roles, roleID)
	return nil
}

func (f *fakeGuild) RoleIDs(context.Context, string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.roles))
	for id := range f.roles {
		ids = append(ids, id)
	}
	return ids, nil
}

func (f *fakeGuild) BotRoleID(context.Context, string) (string, error) {
	return "bot", nil
}

func (f *fakeGuild) ReorderRoles(_ context.Context, _ string, positions []entities.Position) error {
	if f.failReorder {
		return errBoom
	}
	f.rolePositions = positions
	return nil
}

func (f *fakeGuild) CreateChannel(_ context.Context, _ string, spec entities.ChannelSpec) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failChannel[spec.Name] {
		return "", errBoom
	}
	id := f.id("chan")
	f.channels[id] = spec
	return id, nil
}

func (f *fakeGuild) DeleteChannel(_ context.Context, channelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failDeleteChan {
		return errBoom
	}
	delete(f.channels, channelID)
	return nil
}

func (f *fakeGuild) ChannelIDs(context.Context, string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]string, 0, len(f.channels)+1)
	for id := range f.channels {
		ids = append(ids, id)
	}
	return append(ids, "unmanaged"), nil
}

func (f *fakeGuild) ReorderChannels(_ context.Context, _ string, positions []entities.Position) error {
	if f.failReorderChan {
		return errBoom
	}
	f.channelPositions = positions
	return nil
}

func (f *fakeGuild) channelNamed(name string) (string, entities.ChannelSpec, bool) {
	for id, spec := range f.channels {
		if spec.Name == name {
			return id, spec, true
		}
	}
	return "", entities.ChannelSpec{}, false
}
