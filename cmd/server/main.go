package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"groupbook/internal/adapters/discord"
	"groupbook/internal/adapters/httpserver"
	"groupbook/internal/application"
	"groupbook/internal/config"
	"groupbook/internal/infrastructure/database"
	"groupbook/internal/infrastructure/i18n"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuration invalide: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatalf("❌ Erreur lors des migrations: %v", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erreur lors de l'initialisation de la base de données: %v", err)
	}
	defer pool.Close()

	userRepo := database.NewUserRepository(pool)
	eventTypeRepo := database.NewEventTypeRepository(pool)
	booking := application.NewBookingService(userRepo, eventTypeRepo)
	translator := i18n.NewTranslator(cfg.DefaultLocale)

	if cfg.DiscordEnabled() {
		bot, err := discord.NewBot(cfg, booking, translator)
		if err != nil {
			log.Fatalf("❌ %v", err)
		}
		if err := bot.Open(); err != nil {
			log.Fatalf("❌ Erreur lors du démarrage du bot: %v", err)
		}
		defer bot.Close()
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           httpserver.NewRouter(booking, translator, pool, cfg.PublicBaseURL),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("✅ Serveur HTTP démarré sur %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("❌ Serveur HTTP: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Println("Arrêt en cours...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️ Arrêt du serveur HTTP: %v", err)
	}
}
