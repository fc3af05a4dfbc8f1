package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	"rpbot/internal/domain"
	"rpbot/internal/infrastructure/logging"
	pkgdiscord "rpbot/pkg/discord"
)

// sweepInterval is how often expired prompts are closed.
const sweepInterval = 5 * time.Second

// RunScheduledTasks closes expired prompts until ctx is done.
func (h *Handler) RunScheduledTasks(ctx context.Context, s *discordgo.Session) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.expirePrompts(s)
		}
	}
}

func (h *Handler) expirePrompts(s *discordgo.Session) {
	for _, p := range h.prompts.expired() {
		var err error
		switch p.kind {
		case promptSetupConfirm:
			err = editContent(s, p.interaction, h.loc.T(p.locale, domain.KeySetupTimeout, nil))
		case promptUniverseSelect:
			embed := pkgdiscord.ReplyEmbed(h.loc, p.locale, domain.KeyAddServerSelectionExpired, nil, false)
			err = editEmbed(s, p.interaction, embed)
		}
		if err != nil {
			h.logger.Warn("⚠️ Impossible de fermer une invite expirée", "guild_id", p.guildID, logging.Err(err))
			continue
		}
		h.logger.Debug("⌛ Invite expirée", "guild_id", p.guildID, "user_id", p.userID)
	}
}
