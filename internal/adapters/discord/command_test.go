package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupbook/internal/domain"
	"groupbook/internal/domain/dynamic"
	"groupbook/internal/infrastructure/i18n"
)

func stringOption(name, value string, focused bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:    name,
		Type:    discordgo.ApplicationCommandOptionString,
		Value:   value,
		Focused: focused,
	}
}

func TestGroupOptions(t *testing.T) {
	tests := []struct {
		name        string
		options     []*discordgo.ApplicationCommandInteractionDataOption
		wantMembers string
		wantSlug    string
		wantFocused string
	}{
		{
			name:        "members only uses default slug",
			options:     []*discordgo.ApplicationCommandInteractionDataOption{stringOption(optionMembers, " alice bob ", false)},
			wantMembers: "alice+bob",
			wantSlug:    "s1-eg",
		},
		{
			name:        "runs of whitespace collapse",
			options:     []*discordgo.ApplicationCommandInteractionDataOption{stringOption(optionMembers, "alice  bob\tcarol", false)},
			wantMembers: "alice+bob+carol",
			wantSlug:    "s1-eg",
		},
		{
			name: "explicit type",
			options: []*discordgo.ApplicationCommandInteractionDataOption{
				stringOption(optionMembers, "alice+bob", false),
				stringOption(optionType, "s3-ft", false),
			},
			wantMembers: "alice+bob",
			wantSlug:    "s3-ft",
		},
		{
			name: "focused type while typing",
			options: []*discordgo.ApplicationCommandInteractionDataOption{
				stringOption(optionMembers, "alice", false),
				stringOption(optionType, "", true),
			},
			wantMembers: "alice",
			wantSlug:    "s1-eg",
			wantFocused: optionType,
		},
		{
			name:     "no options",
			wantSlug: "s1-eg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			members, slug, focused := groupOptions(discordgo.ApplicationCommandInteractionData{
				Name:    groupCommandName,
				Options: tt.options,
			})
			assert.Equal(t, tt.wantMembers, members)
			assert.Equal(t, tt.wantSlug, slug)
			assert.Equal(t, tt.wantFocused, focused)
		})
	}
}

func TestGroupOptions_MembersParseWithoutBlanks(t *testing.T) {
	members, _, _ := groupOptions(discordgo.ApplicationCommandInteractionData{
		Options: []*discordgo.ApplicationCommandInteractionDataOption{stringOption(optionMembers, "alice  bob", false)},
	})
	assert.Equal(t, []string{"alice", "bob"}, dynamic.ParseUsername(members))
}

func TestCheckGroupSlug(t *testing.T) {
	tests := []struct {
		name    string
		members string
		slug    string
		wantErr error
	}{
		{"group with default slug", "alice+bob", "s3-ft", nil},
		{"group with custom slug", "alice+bob", "intro", domain.ErrEventTypeNotFound},
		{"single user with custom slug", "alice", "intro", nil},
		{"no members", "", "intro", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkGroupSlug(tt.members, tt.slug)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGroupCommand_Definition(t *testing.T) {
	h := NewHandler(nil, i18n.NewTranslator("en"), "https://cal.example.com")

	cmd := h.groupCommand()
	assert.Equal(t, "groupe", cmd.Name)
	assert.Equal(t, "Share a group booking link", cmd.Description)
	require.NotNil(t, cmd.DescriptionLocalizations)
	assert.Equal(t, "Einen Gruppen-Buchungslink teilen", (*cmd.DescriptionLocalizations)[discordgo.German])
	assert.Equal(t, "Partager un lien de réservation de groupe", (*cmd.DescriptionLocalizations)[discordgo.French])

	require.Len(t, cmd.Options, 2)
	assert.True(t, cmd.Options[0].Required)
	assert.True(t, cmd.Options[1].Autocomplete)
	assert.Equal(t, "Terminart", cmd.Options[1].DescriptionLocalizations[discordgo.German])
}

func TestInteractionLocale(t *testing.T) {
	guild := discordgo.French
	assert.Equal(t, "de", interactionLocale(&discordgo.Interaction{Locale: discordgo.German, GuildLocale: &guild}))
	assert.Equal(t, "fr", interactionLocale(&discordgo.Interaction{GuildLocale: &guild}))
	assert.Equal(t, "", interactionLocale(&discordgo.Interaction{}))
}
