package discord

import (
	"github.com/bwmarrin/discordgo"

	"rpbot/internal/ports/output"
)

// Command, subcommand and option names. Each is also the catalog key (or
// attribute) holding its localized name.
const (
	cmdPing     = "ping"
	cmdStart    = "start"
	cmdUniverse = "universe"
	cmdPlace    = "place"
	cmdRoad     = "road"

	subCreateUniverse = "create_universe"
	subAddServer      = "add_server"
	subSetup          = "setup"
	subCreatePlace    = "create_place"
	subCreateRoad     = "create_road"

	optName      = "name"
	optSetupType = "setup_type"
	optPlaceOne  = "place_one"
	optPlaceTwo  = "place_two"
	optDistance  = "distance"

	setupFull    = "full_setup"
	setupPartial = "partial_setup"
)

type commandBuilder struct {
	loc  output.Localizations
	base string
}

func (b commandBuilder) text(key string) string {
	if v, ok := b.loc.Lookup(b.base, key); ok {
		return v
	}
	return key
}

// localized returns the value of key in every locale that defines it, or
// nil when none does.
func (b commandBuilder) localized(key string) map[discordgo.Locale]string {
	var out map[discordgo.Locale]string
	for _, l := range b.loc.Locales() {
		v, ok := b.loc.Lookup(l, key)
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[discordgo.Locale]string)
		}
		out[discordgo.Locale(l)] = v
	}
	return out
}

func (b commandBuilder) localizedPtr(key string) *map[discordgo.Locale]string {
	m := b.localized(key)
	if m == nil {
		return nil
	}
	return &m
}

func (b commandBuilder) command(name string, adminOnly bool, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommand {
	cmd := &discordgo.ApplicationCommand{
		Name:                     name,
		NameLocalizations:        b.localizedPtr(name),
		Description:              b.text(name + ".description"),
		DescriptionLocalizations: b.localizedPtr(name + ".description"),
		Options:                  options,
	}
	if adminOnly {
		perms := int64(discordgo.PermissionAdministrator)
		cmd.DefaultMemberPermissions = &perms
		cmd.Contexts = &[]discordgo.InteractionContextType{discordgo.InteractionContextGuild}
	}
	return cmd
}

func (b commandBuilder) subcommand(name string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:                     discordgo.ApplicationCommandOptionSubCommand,
		Name:                     name,
		NameLocalizations:        b.localized(name),
		Description:              b.text(name + ".description"),
		DescriptionLocalizations: b.localized(name + ".description"),
		Options:                  options,
	}
}

// option builds an option of subcommand sub. Its name comes from the
// "<sub>.<name>" attribute and its description from "<sub>.<name>-description".
func (b commandBuilder) option(sub, name string, kind discordgo.ApplicationCommandOptionType, required bool) *discordgo.ApplicationCommandOption {
	key := sub + "." + name
	return &discordgo.ApplicationCommandOption{
		Type:                     kind,
		Name:                     name,
		NameLocalizations:        b.localized(key),
		Description:              b.text(key + "-description"),
		DescriptionLocalizations: b.localized(key + "-description"),
		Required:                 required,
	}
}

func (b commandBuilder) setupTypeOption(sub string, required bool) *discordgo.ApplicationCommandOption {
	opt := b.option(sub, optSetupType, discordgo.ApplicationCommandOptionString, required)
	for _, choice := range []string{setupFull, setupPartial} {
		opt.Choices = append(opt.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:              b.text(choice),
			NameLocalizations: b.localized(choice),
			Value:             choice,
		})
	}
	return opt
}

// Commands returns the slash commands with their names, descriptions,
// options and choices localized for every catalog locale.
func Commands(loc output.Localizations) []*discordgo.ApplicationCommand {
	b := commandBuilder{loc: loc, base: loc.Locales()[0]}

	placeOne := b.option(subCreateRoad, optPlaceOne, discordgo.ApplicationCommandOptionChannel, true)
	placeOne.ChannelTypes = []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory}
	placeTwo := b.option(subCreateRoad, optPlaceTwo, discordgo.ApplicationCommandOptionChannel, true)
	placeTwo.ChannelTypes = []discordgo.ChannelType{discordgo.ChannelTypeGuildCategory}
	distance := b.option(subCreateRoad, optDistance, discordgo.ApplicationCommandOptionInteger, true)
	minDistance := 0.0
	distance.MinValue = &minDistance

	name := func(sub string) *discordgo.ApplicationCommandOption {
		opt := b.option(sub, optName, discordgo.ApplicationCommandOptionString, true)
		minLength := 1
		opt.MinLength = &minLength
		opt.MaxLength = 100
		return opt
	}

	return []*discordgo.ApplicationCommand{
		b.command(cmdPing, false),
		b.command(cmdStart, true),
		b.command(cmdUniverse, true,
			b.subcommand(subCreateUniverse, name(subCreateUniverse), b.setupTypeOption(subCreateUniverse, true)),
			b.subcommand(subAddServer, b.setupTypeOption(subAddServer, false)),
			b.subcommand(subSetup, b.setupTypeOption(subSetup, true)),
		),
		b.command(cmdPlace, true,
			b.subcommand(subCreatePlace, name(subCreatePlace)),
		),
		b.command(cmdRoad, true,
			b.subcommand(subCreateRoad, placeOne, placeTwo, distance),
		),
	}
}
