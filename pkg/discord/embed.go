package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"rpbot/internal/domain"
	"rpbot/internal/ports/output"
)

const (
	ColorSuccess = 0x00FF00
	ColorFailure = 0xFF0000
)

func color(success bool) int {
	if success {
		return ColorSuccess
	}
	return ColorFailure
}

// ReplyEmbed renders a reply key: the title comes from "<key>.title", the
// description from "<key>.message" and the footer is the key itself.
func ReplyEmbed(t output.T, locale, key string, args map[string]any, success bool) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       t.T(locale, key+".title", args),
		Description: t.T(locale, key+".message", args),
		Color:       color(success),
		Footer:      &discordgo.MessageEmbedFooter{Text: key},
	}
}

// OutcomeEmbed renders a successful result.
func OutcomeEmbed(t output.T, locale string, o domain.Outcome) *discordgo.MessageEmbed {
	return ReplyEmbed(t, locale, o.Key, o.Args, true)
}

func SetupSuccessEmbed(t output.T, locale string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       t.T(locale, domain.KeySetupSuccessTitle, nil),
		Description: t.T(locale, domain.KeySetupSuccessMessage, nil),
		Color:       ColorSuccess,
		Footer:      &discordgo.MessageEmbedFooter{Text: domain.KeySetupSuccessMessage},
	}
}

// SetupErrorEmbed lists the text of every failed step.
func SetupErrorEmbed(t output.T, locale string, keys []string) *discordgo.MessageEmbed {
	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = "- " + t.T(locale, k, nil)
	}
	return &discordgo.MessageEmbed{
		Title:       t.T(locale, domain.KeySetupErrorTitle, nil),
		Description: t.T(locale, domain.KeySetupErrorMessage, map[string]any{"errors": strings.Join(lines, "\n")}),
		Color:       ColorFailure,
		Footer:      &discordgo.MessageEmbedFooter{Text: domain.KeySetupErrorMessage},
	}
}
