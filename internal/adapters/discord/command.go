package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"rpbot/internal/domain"
	"rpbot/internal/infrastructure/logging"
	"rpbot/internal/ports/input"
	pkgdiscord "rpbot/pkg/discord"
)

// commandTimeout bounds the Discord and database calls of one interaction.
// Deferred interaction tokens stay valid for 15 minutes.
const commandTimeout = 2 * time.Minute

const (
	customIDSetupContinue  = "setup_continue:"
	customIDSetupCancel    = "setup_cancel:"
	customIDUniverseSelect = "universe_select:"
)

type optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption

func options(opts []*discordgo.ApplicationCommandInteractionDataOption) optionMap {
	m := make(optionMap, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (m optionMap) stringValue(name string) string {
	if o, ok := m[name]; ok && o.Type == discordgo.ApplicationCommandOptionString {
		return o.StringValue()
	}
	return ""
}

func (m optionMap) channelID(name string) string {
	if o, ok := m[name]; ok && o.Type == discordgo.ApplicationCommandOptionChannel {
		return o.ChannelValue(nil).ID
	}
	return ""
}

func (m optionMap) intValue(name string) int64 {
	if o, ok := m[name]; ok && o.Type == discordgo.ApplicationCommandOptionInteger {
		return o.IntValue()
	}
	return 0
}

func (h *Handler) locale(i *discordgo.Interaction) string {
	if i.Locale == "" {
		return h.loc.Match(h.defaultLocale)
	}
	return h.loc.Match(string(i.Locale))
}

// requireGuild answers command__guild_only outside of a server.
func (h *Handler) requireGuild(s *discordgo.Session, i *discordgo.Interaction) bool {
	if i.GuildID != "" {
		return true
	}
	embed := pkgdiscord.ReplyEmbed(h.loc, h.locale(i), domain.KeyGuildOnly, nil, false)
	if err := respondEmbed(s, i, embed, true); err != nil {
		h.logger.Error("❌ Erreur lors de la réponse", logging.Err(err))
	}
	return false
}

// reply edits a deferred response with the outcome or the error of a use case.
func (h *Handler) reply(s *discordgo.Session, i *discordgo.Interaction, locale string, out domain.Outcome, err error) {
	embed := pkgdiscord.OutcomeEmbed(h.loc, locale, out)
	if err != nil {
		h.logger.Warn("⚠️ Commande échouée", "guild_id", i.GuildID, "key", domain.Code(err), logging.Err(err))
		embed = pkgdiscord.ErrorEmbed(h.loc, locale, err)
	}
	if err := editEmbed(s, i, embed); err != nil {
		h.logger.Error("❌ Erreur lors de la modification de la réponse", logging.Err(err))
		if err := followupContent(s, i, h.loc.T(locale, domain.KeyReplyFailed, nil)); err != nil {
			h.logger.Error("❌ Erreur lors de l'envoi du message d'échec", logging.Err(err))
		}
	}
}

// setupFollowup runs the setup of guildID and posts its result as a
// follow-up of i.
func (h *Handler) setupFollowup(ctx context.Context, s *discordgo.Session, i *discordgo.Interaction, guildID, locale string, full bool) {
	_, err := h.setupUseCase.Setup(ctx, input.SetupRequest{GuildID: guildID, Locale: locale, Full: full})
	if err != nil {
		h.logger.Warn("⚠️ Configuration échouée", "guild_id", guildID, "keys", domain.Keys(err), logging.Err(err))
	} else {
		h.logger.Info("✅ Serveur configuré", "guild_id", guildID, "full", full)
	}
	if err := followupEmbed(s, i, pkgdiscord.SetupResultEmbed(h.loc, locale, err)); err != nil {
		h.logger.Error("❌ Erreur lors de l'envoi du résultat de la configuration", logging.Err(err))
	}
}

func (h *Handler) HandlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	latency := s.HeartbeatLatency().Milliseconds()
	content := h.loc.T(h.locale(i.Interaction), domain.KeyPingPong, map[string]any{"latency": latency})
	if err := respondContent(s, i.Interaction, content, true); err != nil {
		h.logger.Error("❌ Erreur lors de la réponse au ping", logging.Err(err))
	}
}

func (h *Handler) HandleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	content := h.loc.T(h.locale(i.Interaction), domain.KeyStartMessage, nil)
	if err := respondContent(s, i.Interaction, content, true); err != nil {
		h.logger.Error("❌ Erreur lors de la réponse à start", logging.Err(err))
	}
}

func (h *Handler) HandleUniverse(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireGuild(s, i.Interaction) {
		return
	}
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return
	}
	sub := data.Options[0]
	opts := options(sub.Options)
	h.logger.Info("🪐 Commande univers", "sub", sub.Name, "guild_id", i.GuildID, "user", resolveDisplayName(i.Member))

	switch sub.Name {
	case subCreateUniverse:
		h.handleCreateUniverse(s, i.Interaction, opts)
	case subAddServer:
		h.handleAddServer(s, i.Interaction, opts)
	case subSetup:
		h.handleSetup(s, i.Interaction, opts)
	}
}

func (h *Handler) handleCreateUniverse(s *discordgo.Session, i *discordgo.Interaction, opts optionMap) {
	if err := deferReply(s, i); err != nil {
		h.logger.Error("❌ Erreur lors de l'accusé de réception", logging.Err(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	locale := h.locale(i)
	out, err := h.universeUseCase.CreateUniverse(ctx, input.CreateUniverseRequest{
		GuildID:   i.GuildID,
		CreatorID: userID(i),
		Name:      opts.stringValue(optName),
		Locale:    locale,
	})
	h.reply(s, i, locale, out, err)
	if err != nil {
		return
	}
	h.setupFollowup(ctx, s, i, i.GuildID, locale, opts.stringValue(optSetupType) == setupFull)
}

func (h *Handler) handleAddServer(s *discordgo.Session, i *discordgo.Interaction, opts optionMap) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	locale := h.locale(i)
	universes, err := h.universeUseCase.CreatorUniverses(ctx, i.GuildID, userID(i))
	if err != nil {
		if err := respondEmbed(s, i, pkgdiscord.ErrorEmbed(h.loc, locale, err), true); err != nil {
			h.logger.Error("❌ Erreur lors de la réponse", logging.Err(err))
		}
		return
	}

	setupType := opts.stringValue(optSetupType)
	token := h.prompts.add(&prompt{
		kind:        promptUniverseSelect,
		userID:      userID(i),
		guildID:     i.GuildID,
		locale:      locale,
		runSetup:    setupType != "",
		full:        setupType == setupFull,
		interaction: i,
	}, h.selectTimeout)

	// A select menu holds at most 25 options.
	if len(universes) > 25 {
		universes = universes[:25]
	}
	menuOptions := make([]discordgo.SelectMenuOption, len(universes))
	for n, u := range universes {
		menuOptions[n] = discordgo.SelectMenuOption{Label: u.Name, Value: u.ID, Description: u.ID}
	}
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				MenuType:    discordgo.StringSelectMenu,
				CustomID:    customIDUniverseSelect + token,
				Placeholder: h.loc.T(locale, domain.KeyChooseUniverse, nil),
				Options:     menuOptions,
			},
		}},
	}
	if err := respondComponents(s, i, h.loc.T(locale, domain.KeyChooseUniverse, nil), components); err != nil {
		h.logger.Error("❌ Erreur lors de l'envoi du menu des univers", logging.Err(err))
	}
}

func (h *Handler) handleSetup(s *discordgo.Session, i *discordgo.Interaction, opts optionMap) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	locale := h.locale(i)
	full := opts.stringValue(optSetupType) == setupFull

	confirm, err := h.setupUseCase.NeedsConfirmation(ctx, i.GuildID)
	if err != nil {
		h.logger.Warn("⚠️ Configuration impossible", "guild_id", i.GuildID, logging.Err(err))
		if err := respondEmbed(s, i, pkgdiscord.SetupResultEmbed(h.loc, locale, err), true); err != nil {
			h.logger.Error("❌ Erreur lors de la réponse", logging.Err(err))
		}
		return
	}

	if confirm {
		token := h.prompts.add(&prompt{
			kind:        promptSetupConfirm,
			userID:      userID(i),
			guildID:     i.GuildID,
			locale:      locale,
			full:        full,
			interaction: i,
		}, h.confirmTimeout)
		components := []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    h.loc.T(locale, domain.KeySetupCancelButton, nil),
					Style:    discordgo.DangerButton,
					CustomID: customIDSetupCancel + token,
				},
				discordgo.Button{
					Label:    h.loc.T(locale, domain.KeySetupContinueButton, nil),
					Style:    discordgo.SuccessButton,
					CustomID: customIDSetupContinue + token,
				},
			}},
		}
		if err := respondComponents(s, i, h.loc.T(locale, domain.KeySetupContinueMessage, nil), components); err != nil {
			h.logger.Error("❌ Erreur lors de l'envoi de la confirmation", logging.Err(err))
		}
		return
	}

	if err := deferReply(s, i); err != nil {
		h.logger.Error("❌ Erreur lors de l'accusé de réception", logging.Err(err))
		return
	}
	h.runSetup(ctx, s, i, locale, full)
}

// runSetup runs the setup and edits the deferred response of i with its result.
func (h *Handler) runSetup(ctx context.Context, s *discordgo.Session, i *discordgo.Interaction, locale string, full bool) {
	start := time.Now()
	_, err := h.setupUseCase.Setup(ctx, input.SetupRequest{GuildID: i.GuildID, Locale: locale, Full: full})
	if err != nil {
		h.logger.Warn("⚠️ Configuration échouée", "guild_id", i.GuildID, "keys", domain.Keys(err), logging.Err(err))
	} else {
		h.logger.Info("✅ Serveur configuré", "guild_id", i.GuildID, "full", full, "duration", time.Since(start))
	}
	if err := editEmbed(s, i, pkgdiscord.SetupResultEmbed(h.loc, locale, err)); err != nil {
		h.logger.Error("❌ Erreur lors de la modification de la réponse", logging.Err(err))
	}
}

func (h *Handler) HandlePlace(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireGuild(s, i.Interaction) {
		return
	}
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 || data.Options[0].Name != subCreatePlace {
		return
	}
	opts := options(data.Options[0].Options)
	if err := deferReply(s, i.Interaction); err != nil {
		h.logger.Error("❌ Erreur lors de l'accusé de réception", logging.Err(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := h.placeUseCase.CreatePlace(ctx, i.GuildID, opts.stringValue(optName))
	h.reply(s, i.Interaction, h.locale(i.Interaction), out, err)
}

func (h *Handler) HandleRoad(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !h.requireGuild(s, i.Interaction) {
		return
	}
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 || data.Options[0].Name != subCreateRoad {
		return
	}
	opts := options(data.Options[0].Options)
	if err := deferReply(s, i.Interaction); err != nil {
		h.logger.Error("❌ Erreur lors de l'accusé de réception", logging.Err(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := h.roadUseCase.CreateRoad(ctx, input.CreateRoadRequest{
		GuildID:            i.GuildID,
		PlaceOneCategoryID: opts.channelID(optPlaceOne),
		PlaceTwoCategoryID: opts.channelID(optPlaceTwo),
		Distance:           opts.intValue(optDistance),
	})
	h.reply(s, i.Interaction, h.locale(i.Interaction), out, err)
}
