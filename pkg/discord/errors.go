package discord

import (
	"github.com/bwmarrin/discordgo"

	"rpbot/internal/domain"
	"rpbot/internal/ports/output"
)

// ErrorEmbed renders the reply of a failed command. Errors without a
// message key are shown as command__unexpected_error.
func ErrorEmbed(t output.T, locale string, err error) *discordgo.MessageEmbed {
	if key := domain.Code(err); key != "" {
		return ReplyEmbed(t, locale, key, domain.Args(err), false)
	}
	return ReplyEmbed(t, locale, domain.KeyUnexpectedError, nil, false)
}

// SetupResultEmbed renders the result of a setup run.
func SetupResultEmbed(t output.T, locale string, err error) *discordgo.MessageEmbed {
	if err == nil {
		return SetupSuccessEmbed(t, locale)
	}
	keys := domain.Keys(err)
	if len(keys) == 0 {
		keys = []string{domain.KeyUnexpectedError + ".message"}
	}
	return SetupErrorEmbed(t, locale, keys)
}
