package discord

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"groupbook/internal/domain"
	"groupbook/internal/domain/dynamic"
	pkgdiscord "groupbook/pkg/discord"
)

const (
	groupCommandName = "groupe"
	optionMembers    = "membres"
	optionType       = "type"
	defaultSlug      = "s1-eg"

	// Discord caps autocomplete results at 25.
	maxChoices     = 25
	commandTimeout = 3 * time.Second
)

var commandLocales = []discordgo.Locale{discordgo.German, discordgo.French}

func (h *Handler) localized(key string) *map[discordgo.Locale]string {
	out := make(map[discordgo.Locale]string, len(commandLocales))
	for _, l := range commandLocales {
		out[l] = h.translator.T(string(l), key, nil)
	}
	return &out
}

func (h *Handler) groupCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     groupCommandName,
		Description:              h.translator.T("en", "discord.command.description", nil),
		DescriptionLocalizations: h.localized("discord.command.description"),
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:                     discordgo.ApplicationCommandOptionString,
				Name:                     optionMembers,
				Description:              h.translator.T("en", "discord.option.members", nil),
				DescriptionLocalizations: *h.localized("discord.option.members"),
				Required:                 true,
			},
			{
				Type:                     discordgo.ApplicationCommandOptionString,
				Name:                     optionType,
				Description:              h.translator.T("en", "discord.option.type", nil),
				DescriptionLocalizations: *h.localized("discord.option.type"),
				Autocomplete:             true,
			},
		},
	}
}

// groupOptions extracts the members as a "+"-joined segment, the slug
// (default s1-eg) and the name of the focused option, if any.
func groupOptions(data discordgo.ApplicationCommandInteractionData) (members, slug, focused string) {
	slug = defaultSlug
	for _, opt := range data.Options {
		if opt.Type != discordgo.ApplicationCommandOptionString {
			continue
		}
		value := strings.TrimSpace(opt.StringValue())
		switch opt.Name {
		case optionMembers:
			members = strings.Join(strings.Fields(value), "+")
		case optionType:
			if value != "" {
				slug = value
			}
		}
		if opt.Focused {
			focused = opt.Name
		}
	}
	return members, slug, focused
}

// checkGroupSlug rejects a non-default type when several members are listed.
// Groups only book the default event types.
func checkGroupSlug(members, slug string) error {
	if len(dynamic.ParseUsername(members)) > 1 && !dynamic.IsDefaultSlug(slug) {
		return domain.ErrEventTypeNotFound
	}
	return nil
}

// HandleGroupCommand replies with the booking link for the listed members.
func (h *Handler) HandleGroupCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	locale := interactionLocale(i.Interaction)
	members, slug, _ := groupOptions(i.ApplicationCommandData())
	if err := checkGroupSlug(members, slug); err != nil {
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}

	page, err := h.booking.ResolveBookingPage(ctx, members, slug)
	if err != nil {
		log.Printf("❌ /%s (membres=%q, type=%q): %v", groupCommandName, members, slug, err)
		respondEphemeral(s, i.Interaction, pkgdiscord.DomainErrorMessage(h.translator, locale, err))
		return
	}

	footer := h.translator.T(locale, "discord.link.footer", map[string]any{
		"Count":   len(page.Users),
		"Minutes": page.EventType.Length,
	})
	embed := pkgdiscord.BuildBookingLinkEmbed(page, h.publicBaseURL, footer)
	if err := respondEmbed(s, i.Interaction, embed); err != nil {
		log.Printf("❌ Réponse à /%s: %v", groupCommandName, err)
	}
}

// HandleGroupAutocomplete suggests event types bookable by the members typed
// so far.
func (h *Handler) HandleGroupAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	members, _, focused := groupOptions(i.ApplicationCommandData())
	if focused != optionType {
		return
	}

	eventTypes, err := h.booking.ListEventTypes(ctx, members)
	if err != nil {
		eventTypes = h.booking.DefaultEventTypes()
	}
	choices := pkgdiscord.EventTypeChoices(eventTypes, maxChoices)

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		log.Printf("⚠️ Autocomplete /%s: %v", groupCommandName, err)
	}
}
