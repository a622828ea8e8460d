package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"groupbook/internal/domain/entities"
)

const (
	embedColor = 0x5865F2
	// Discord rejects embed descriptions longer than 4096 characters.
	maxDescription = 4096
	// Discord rejects choice names longer than 100 characters.
	maxChoiceName = 100
)

func formatMembers(users []entities.User) string {
	var b strings.Builder
	for i, u := range users {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("- **%s** (`%s`)", u.DisplayName(), u.Username))
	}
	return b.String()
}

// truncate cuts s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// BuildBookingLinkEmbed builds the reply to a group booking command: the
// synthesized title links to the booking page.
func BuildBookingLinkEmbed(page *entities.BookingPage, publicBaseURL, footer string) *discordgo.MessageEmbed {
	desc := page.Description
	if members := formatMembers(page.Users); members != "" {
		desc += "\n\n" + members
	}
	desc = truncate(desc, maxDescription)

	embed := &discordgo.MessageEmbed{
		Title:       page.Title,
		URL:         publicBaseURL + page.Path,
		Description: desc,
		Color:       embedColor,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Lien", Value: publicBaseURL + page.Path},
		},
	}
	if footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: footer}
	}
	if len(page.Users) == 1 && page.Users[0].Avatar != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: page.Users[0].Avatar}
	}
	return embed
}

// EventTypeChoices turns event types into autocomplete choices (title → slug).
func EventTypeChoices(eventTypes []entities.EventType, limit int) []*discordgo.ApplicationCommandOptionChoice {
	if len(eventTypes) > limit {
		eventTypes = eventTypes[:limit]
	}
	out := make([]*discordgo.ApplicationCommandOptionChoice, len(eventTypes))
	for i, e := range eventTypes {
		name := fmt.Sprintf("%s (%d min)", e.Title, e.Length)
		out[i] = &discordgo.ApplicationCommandOptionChoice{Name: truncate(name, maxChoiceName), Value: e.Slug}
	}
	return out
}
