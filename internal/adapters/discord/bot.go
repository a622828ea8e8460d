package discord

import (
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"groupbook/internal/config"
	"groupbook/internal/ports/input"
	"groupbook/internal/ports/output"
)

// Bot is the Discord adapter.
type Bot struct {
	session  *discordgo.Session
	config   *config.Config
	handler  *Handler
	commands []*discordgo.ApplicationCommand
}

// NewBot creates a Bot on top of the booking use case.
func NewBot(cfg *config.Config, booking input.BookingUseCase, translator output.Translator) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("création de la session Discord: %w", err)
	}

	bot := &Bot{
		session: s,
		config:  cfg,
		handler: NewHandler(booking, translator, cfg.PublicBaseURL),
	}
	bot.session.AddHandler(bot.handleInteraction)
	return bot, nil
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		if i.ApplicationCommandData().Name == groupCommandName {
			b.handler.HandleGroupCommand(s, i)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		if i.ApplicationCommandData().Name == groupCommandName {
			b.handler.HandleGroupAutocomplete(s, i)
		}
	}
}

// Open connects the session and registers the slash commands.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}

	for _, cmd := range []*discordgo.ApplicationCommand{b.handler.groupCommand()} {
		created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.DiscordGuildID, cmd)
		if err != nil {
			log.Printf("⚠️ Erreur lors de l'enregistrement de la commande %s: %v", cmd.Name, err)
			continue
		}
		b.commands = append(b.commands, created)
	}

	log.Println("🤖 Bot Discord en ligne.")
	return nil
}

// Close removes guild-scoped commands and closes the session.
func (b *Bot) Close() error {
	if b.config.DiscordGuildID != "" {
		for _, cmd := range b.commands {
			if err := b.session.ApplicationCommandDelete(b.session.State.User.ID, b.config.DiscordGuildID, cmd.ID); err != nil {
				log.Printf("⚠️ Suppression de la commande %s: %v", cmd.Name, err)
			}
		}
	}
	return b.session.Close()
}
