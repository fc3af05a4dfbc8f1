package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"

	"rpbot/internal/domain"
	"rpbot/internal/infrastructure/logging"
	pkgdiscord "rpbot/pkg/discord"
)

// claimPrompt resolves the prompt behind a component click and answers the
// click itself when the prompt is gone or belongs to someone else.
func (h *Handler) claimPrompt(s *discordgo.Session, i *discordgo.Interaction, token string, expiredKey string) (*prompt, bool) {
	p, res := h.prompts.claim(token, userID(i))
	locale := h.locale(i)
	switch res {
	case claimForeign:
		embed := pkgdiscord.ReplyEmbed(h.loc, locale, domain.KeyNotYourPrompt, nil, false)
		if err := respondEmbed(s, i, embed, true); err != nil {
			h.logger.Error("❌ Erreur lors de la réponse", logging.Err(err))
		}
		return nil, false
	case claimMissing:
		h.closePrompt(s, i, h.loc.T(locale, expiredKey, nil))
		return nil, false
	}
	return p, true
}

// closePrompt replaces the prompt message with content and drops its components.
func (h *Handler) closePrompt(s *discordgo.Session, i *discordgo.Interaction, content string) {
	err := s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    content,
			Components: []discordgo.MessageComponent{},
		},
	})
	if err != nil {
		h.logger.Error("❌ Erreur lors de la réponse", logging.Err(err))
	}
}

// HandleSetupButton answers the Continue and Cancel buttons of a setup confirmation.
func (h *Handler) HandleSetupButton(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	cancelled := strings.HasPrefix(customID, customIDSetupCancel)
	token := strings.TrimPrefix(strings.TrimPrefix(customID, customIDSetupCancel), customIDSetupContinue)

	p, ok := h.claimPrompt(s, i.Interaction, token, domain.KeySetupTimeout)
	if !ok {
		return
	}

	if cancelled {
		h.logger.Info("🚫 Configuration annulée", "guild_id", p.guildID)
		h.closePrompt(s, i.Interaction, h.loc.T(p.locale, domain.KeySetupCanceled, nil))
		return
	}

	if err := deferUpdate(s, i.Interaction); err != nil {
		h.logger.Error("❌ Erreur lors de l'accusé de réception", logging.Err(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()
	h.runSetup(ctx, s, p.interaction, p.locale, p.full)
}
