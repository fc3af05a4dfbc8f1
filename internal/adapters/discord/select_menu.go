package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"rpbot/internal/domain"
	"rpbot/internal/infrastructure/logging"
)

// HandleUniverseSelect binds the guild to the picked universe, then runs
// the setup requested with add_server, if any.
func (h *Handler) HandleUniverseSelect(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.MessageComponentData()
	token := strings.TrimPrefix(data.CustomID, customIDUniverseSelect)

	p, ok := h.claimPrompt(s, i.Interaction, token, domain.KeyAddServerSelectionExpired+".message")
	if !ok {
		return
	}
	if len(data.Values) == 0 {
		h.closePrompt(s, i.Interaction, h.loc.T(p.locale, domain.KeyAddServerSelectionExpired+".message", nil))
		return
	}

	if err := deferUpdate(s, i.Interaction); err != nil {
		h.logger.Error("❌ Erreur lors de l'accusé de réception", logging.Err(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	out, err := h.universeUseCase.BindServer(ctx, p.guildID, data.Values[0], p.userID)
	h.reply(s, p.interaction, p.locale, out, err)
	if err != nil || !p.runSetup {
		return
	}
	h.setupFollowup(ctx, s, p.interaction, p.guildID, p.locale, p.full)
}
