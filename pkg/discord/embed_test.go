package discord

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"groupbook/internal/domain/dynamic"
	"groupbook/internal/domain/entities"
)

func TestBuildBookingLinkEmbed(t *testing.T) {
	page := &entities.BookingPage{
		Users:       []entities.User{{Username: "alice", Name: "Alice"}, {Username: "bob"}},
		Title:       "Erstgespräch with Alice & bob",
		Description: "Book a Erstgespräch with alice, bob",
		Path:        "/alice+bob/s1-eg",
	}

	embed := BuildBookingLinkEmbed(page, "https://cal.example.com", "2 participant(s) • 30 min")

	assert.Equal(t, "Erstgespräch with Alice & bob", embed.Title)
	assert.Equal(t, "https://cal.example.com/alice+bob/s1-eg", embed.URL)
	assert.Equal(t, "Book a Erstgespräch with alice, bob\n\n- **Alice** (`alice`)\n- **bob** (`bob`)", embed.Description)
	require.Len(t, embed.Fields, 1)
	assert.Equal(t, embed.URL, embed.Fields[0].Value)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "2 participant(s) • 30 min", embed.Footer.Text)
	assert.Nil(t, embed.Thumbnail)
}

func TestBuildBookingLinkEmbed_SingleUserAvatar(t *testing.T) {
	page := &entities.BookingPage{
		Users: []entities.User{{Username: "alice", Avatar: "https://img.example.com/a.png"}},
		Path:  "/alice/intro",
	}

	embed := BuildBookingLinkEmbed(page, "https://cal.example.com", "")

	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://img.example.com/a.png", embed.Thumbnail.URL)
	assert.Nil(t, embed.Footer)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	// "ü" is two bytes; cutting inside it drops the whole rune.
	assert.Equal(t, "Z", truncate("Zü", 2))
	assert.Equal(t, 4096, len(truncate(strings.Repeat("a", 5000), maxDescription)))
}

func TestEventTypeChoices(t *testing.T) {
	choices := EventTypeChoices(dynamic.DefaultEvents(), 25)
	require.Len(t, choices, 4)
	assert.Equal(t, "Erstgespräch (30 min)", choices[0].Name)
	assert.Equal(t, "s1-eg", choices[0].Value)
	assert.Equal(t, "abschlusstermin", choices[3].Value)

	assert.Len(t, EventTypeChoices(dynamic.DefaultEvents(), 2), 2)
}
