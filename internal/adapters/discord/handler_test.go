package discord

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rpbot/internal/domain"
	"rpbot/internal/domain/entities"
	"rpbot/internal/ports/input"
)

type fakeUniverseUseCase struct {
	createErr error
	bindErr   error
	created   []input.CreateUniverseRequest
	bound     []string
}

func (f *fakeUniverseUseCase) CreateUniverse(_ context.Context, req input.CreateUniverseRequest) (domain.Outcome, error) {
	f.created = append(f.created, req)
	if f.createErr != nil {
		return domain.Outcome{}, f.createErr
	}
	return domain.Outcome{Key: domain.KeyUniverseCreated, Args: map[string]any{"universe_name": req.Name}}, nil
}

func (f *fakeUniverseUseCase) CreatorUniverses(context.Context, string, string) ([]entities.Universe, error) {
	return []entities.Universe{{ID: "uni1", Name: "Avalon"}}, nil
}

func (f *fakeUniverseUseCase) BindServer(_ context.Context, guildID, universeID, _ string) (domain.Outcome, error) {
	f.bound = append(f.bound, guildID+"/"+universeID)
	return domain.Outcome{Key: domain.KeyAddServerLinked}, f.bindErr
}

type fakeSetupUseCase struct {
	err      error
	requests []input.SetupRequest
}

func (f *fakeSetupUseCase) NeedsConfirmation(context.Context, string) (bool, error) {
	return false, nil
}

func (f *fakeSetupUseCase) Setup(_ context.Context, req input.SetupRequest) (domain.Outcome, error) {
	f.requests = append(f.requests, req)
	return domain.Outcome{Key: domain.KeySetupSuccessMessage}, f.err
}

type apiCall struct {
	Method string
	Path   string
	Body   map[string]any
}

// apiRecorder answers every Discord REST call and keeps a copy of it.
type apiRecorder struct {
	mu     sync.Mutex
	calls  []apiCall
	status func(method, path string) int
}

func (r *apiRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	call := apiCall{Method: req.Method, Path: req.URL.Path}
	if req.Body != nil {
		raw, _ := io.ReadAll(req.Body)
		_ = json.Unmarshal(raw, &call.Body)
	}
	r.mu.Lock()
	r.calls = append(r.calls, call)
	r.mu.Unlock()

	status, body := http.StatusOK, `{"id":"1"}`
	if r.status != nil {
		status = r.status(req.Method, req.URL.Path)
	}
	if status >= 400 {
		body = `{"code":10015,"message":"Unknown Webhook"}`
	}
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    req,
	}, nil
}

func (r *apiRecorder) recorded() []apiCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]apiCall(nil), r.calls...)
}

type handlerFixture struct {
	handler  *Handler
	session  *discordgo.Session
	api      *apiRecorder
	universe *fakeUniverseUseCase
	setup    *fakeSetupUseCase
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()
	api := &apiRecorder{}
	s, err := discordgo.New("Bot test")
	require.NoError(t, err)
	s.Client = &http.Client{Transport: api}

	f := &handlerFixture{session: s, api: api, universe: &fakeUniverseUseCase{}, setup: &fakeSetupUseCase{}}
	f.handler = NewHandler(f.universe, f.setup, nil, nil, testTranslator(t), Settings{
		ConfirmTimeout: time.Minute,
		SelectTimeout:  2 * time.Minute,
		DefaultLocale:  "en-US",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

func universeCommand(sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "i1",
		AppID:   "app",
		Token:   "tok",
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: "g1",
		Locale:  discordgo.French,
		Member:  &discordgo.Member{User: &discordgo.User{ID: "u1", Username: "alice"}},
		Data: discordgo.ApplicationCommandInteractionData{
			Name: cmdUniverse,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{{
				Name:    sub,
				Type:    discordgo.ApplicationCommandOptionSubCommand,
				Options: opts,
			}},
		},
	}}
}

func stringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func TestHandleCreateUniverseRunsSetup(t *testing.T) {
	f := newHandlerFixture(t)

	f.handler.HandleUniverse(f.session, universeCommand(subCreateUniverse,
		stringOption(optName, "Avalon"),
		stringOption(optSetupType, setupFull),
	))

	require.Len(t, f.universe.created, 1)
	assert.Equal(t, "Avalon", f.universe.created[0].Name)
	require.Len(t, f.setup.requests, 1)
	assert.Equal(t, input.SetupRequest{GuildID: "g1", Locale: "fr", Full: true}, f.setup.requests[0])

	calls := f.api.recorded()
	require.Len(t, calls, 3)
	assert.Equal(t, "/api/v9/interactions/i1/tok/callback", calls[0].Path)
	assert.Equal(t, http.MethodPatch, calls[1].Method)
	assert.Equal(t, "/api/v9/webhooks/app/tok/messages/@original", calls[1].Path)
	assert.Equal(t, http.MethodPost, calls[2].Method)
	assert.Equal(t, "/api/v9/webhooks/app/tok", calls[2].Path, "the setup result is a follow-up")
}

func TestHandleCreateUniversePartialSetup(t *testing.T) {
	f := newHandlerFixture(t)

	f.handler.HandleUniverse(f.session, universeCommand(subCreateUniverse,
		stringOption(optName, "Avalon"),
		stringOption(optSetupType, setupPartial),
	))

	require.Len(t, f.setup.requests, 1)
	assert.False(t, f.setup.requests[0].Full)
}

func TestHandleCreateUniverseFailureSkipsSetup(t *testing.T) {
	f := newHandlerFixture(t)
	f.universe.createErr = domain.Fail(domain.KeyUniverseAlreadyExists, nil)

	f.handler.HandleUniverse(f.session, universeCommand(subCreateUniverse,
		stringOption(optName, "Avalon"),
		stringOption(optSetupType, setupFull),
	))

	assert.Empty(t, f.setup.requests)
	assert.Len(t, f.api.recorded(), 2)
}

func TestReplyFallsBackWhenEditFails(t *testing.T) {
	f := newHandlerFixture(t)
	f.api.status = func(method, _ string) int {
		if method == http.MethodPatch {
			return http.StatusNotFound
		}
		return http.StatusOK
	}
	i := universeCommand(subCreateUniverse).Interaction

	f.handler.reply(f.session, i, "fr", domain.Outcome{Key: domain.KeyUniverseCreated}, nil)

	calls := f.api.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPost, calls[1].Method)
	assert.Equal(t, "/api/v9/webhooks/app/tok", calls[1].Path)
	assert.Equal(t, f.handler.loc.T("fr", domain.KeyReplyFailed, nil), calls[1].Body["content"])
}

func TestHandleUniverseSelectWithoutValue(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.handler.prompts.add(&prompt{
		kind:        promptUniverseSelect,
		userID:      "u1",
		guildID:     "g1",
		locale:      "fr",
		interaction: universeCommand(subAddServer).Interaction,
	}, time.Minute)

	click := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:      "i2",
		AppID:   "app",
		Token:   "tok2",
		Type:    discordgo.InteractionMessageComponent,
		GuildID: "g1",
		Locale:  discordgo.French,
		Member:  &discordgo.Member{User: &discordgo.User{ID: "u1"}},
		Data:    discordgo.MessageComponentInteractionData{CustomID: customIDUniverseSelect + token},
	}}
	f.handler.HandleUniverseSelect(f.session, click)

	assert.Empty(t, f.universe.bound)
	calls := f.api.recorded()
	require.Len(t, calls, 1, "the click is answered")
	assert.Equal(t, "/api/v9/interactions/i2/tok2/callback", calls[0].Path)
	assert.EqualValues(t, discordgo.InteractionResponseUpdateMessage, calls[0].Body["type"])
	data, ok := calls[0].Body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, f.handler.loc.T("fr", domain.KeyAddServerSelectionExpired+".message", nil), data["content"])
}

func TestHandleUniverseSelectRunsRequestedSetup(t *testing.T) {
	f := newHandlerFixture(t)
	token := f.handler.prompts.add(&prompt{
		kind:        promptUniverseSelect,
		userID:      "u1",
		guildID:     "g1",
		locale:      "fr",
		runSetup:    true,
		interaction: universeCommand(subAddServer).Interaction,
	}, time.Minute)

	click := &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		ID:     "i2",
		AppID:  "app",
		Token:  "tok2",
		Type:   discordgo.InteractionMessageComponent,
		Member: &discordgo.Member{User: &discordgo.User{ID: "u1"}},
		Data:   discordgo.MessageComponentInteractionData{CustomID: customIDUniverseSelect + token, Values: []string{"uni1"}},
	}}
	f.handler.HandleUniverseSelect(f.session, click)

	assert.Equal(t, []string{"g1/uni1"}, f.universe.bound)
	require.Len(t, f.setup.requests, 1)
	assert.False(t, f.setup.requests[0].Full)
}

func TestExpirePrompts(t *testing.T) {
	f := newHandlerFixture(t)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	f.handler.prompts.now = func() time.Time { return now }

	confirm := &discordgo.Interaction{AppID: "app", Token: "confirm"}
	choose := &discordgo.Interaction{AppID: "app", Token: "choose"}
	f.handler.prompts.add(&prompt{kind: promptSetupConfirm, userID: "u1", locale: "fr", interaction: confirm}, time.Minute)
	f.handler.prompts.add(&prompt{kind: promptUniverseSelect, userID: "u1", locale: "fr", interaction: choose}, time.Hour)

	now = now.Add(2 * time.Minute)
	f.handler.expirePrompts(f.session)

	calls := f.api.recorded()
	require.Len(t, calls, 1, "only the overdue prompt is closed")
	assert.Equal(t, http.MethodPatch, calls[0].Method)
	assert.Equal(t, "/api/v9/webhooks/app/confirm/messages/@original", calls[0].Path)
	assert.Equal(t, f.handler.loc.T("fr", domain.KeySetupTimeout, nil), calls[0].Body["content"])
	assert.Equal(t, 1, f.handler.prompts.len())

	now = now.Add(time.Hour)
	f.handler.expirePrompts(f.session)

	calls = f.api.recorded()
	require.Len(t, calls, 2)
	assert.Equal(t, "/api/v9/webhooks/app/choose/messages/@original", calls[1].Path)
	embeds, ok := calls[1].Body["embeds"].([]any)
	require.True(t, ok)
	assert.Len(t, embeds, 1)
	assert.Equal(t, 0, f.handler.prompts.len())
}
