package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"rpbot/internal/config"
	"rpbot/internal/ports/input"
	"rpbot/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	loc     output.Localizations
	logger  *slog.Logger
}

// UseCases groups the application services driven by the bot.
type UseCases struct {
	Universe input.UniverseUseCase
	Setup    input.SetupUseCase
	Place    input.PlaceUseCase
	Road     input.RoadUseCase
}

// NewSession creates the Discord session the guild service and the bot share.
func NewSession(cfg *config.Config) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("erreur lors de la création de la session Discord: %w", err)
	}
	s.Identify.Intents = discordgo.IntentsGuilds
	return s, nil
}

// NewBot creates a Bot and wires the use cases into its handler.
func NewBot(cfg *config.Config, s *discordgo.Session, uc UseCases, loc output.Localizations, logger *slog.Logger) *Bot {
	handler := NewHandler(uc.Universe, uc.Setup, uc.Place, uc.Road, loc, Settings{
		ConfirmTimeout: cfg.SetupConfirmTimeout,
		SelectTimeout:  cfg.SelectTimeout,
		DefaultLocale:  cfg.DefaultLocale,
	}, logger)

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: handler,
		loc:     loc,
		logger:  logger,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case cmdPing:
			b.handler.HandlePing(s, i)
		case cmdStart:
			b.handler.HandleStart(s, i)
		case cmdUniverse:
			b.handler.HandleUniverse(s, i)
		case cmdPlace:
			b.handler.HandlePlace(s, i)
		case cmdRoad:
			b.handler.HandleRoad(s, i)
		}
	case discordgo.InteractionMessageComponent:
		customID := i.MessageComponentData().CustomID
		switch {
		case strings.HasPrefix(customID, customIDSetupContinue), strings.HasPrefix(customID, customIDSetupCancel):
			b.handler.HandleSetupButton(s, i)
		case strings.HasPrefix(customID, customIDUniverseSelect):
			b.handler.HandleUniverseSelect(s, i)
		}
	}
}

// Start opens the session, registers the slash commands and serves
// interactions until ctx is done.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	commands := Commands(b.loc)
	if _, err := b.session.ApplicationCommandBulkOverwrite(b.session.State.User.ID, b.config.GuildID, commands); err != nil {
		return fmt.Errorf("erreur lors de l'enregistrement des commandes: %w", err)
	}
	b.logger.Info("📝 Commandes enregistrées", "count", len(commands), "guild_id", b.config.GuildID)

	go b.handler.RunScheduledTasks(ctx, b.session)

	b.logger.Info("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	<-ctx.Done()
	b.logger.Info("👋 Arrêt du bot")
	return nil
}
