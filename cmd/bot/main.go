package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-long-rest/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-long-rest/internal/config"
	v2 "github.com/KirkDiggler/dnd-long-rest/internal/discord/v2"
	"github.com/KirkDiggler/dnd-long-rest/internal/services"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.RequireDiscord(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	dndClient, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{
			Timeout: cfg.DND5E.Timeout,
		},
		BaseURL: cfg.DND5E.BaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to create D&D 5e client: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		LongRest:  cfg.LongRest,
		DNDClient: dndClient,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	if cfg.Redis.URL != "" {
		log.Println("Connecting to Redis")

		opts, parseErr := redis.ParseURL(cfg.Redis.URL)
		if parseErr != nil {
			log.Printf("Failed to parse Redis URL: %v", parseErr)
			log.Println("Falling back to in-memory repositories")
		} else {
			redisClient = redis.NewClient(opts)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			pingErr := redisClient.Ping(ctx).Err()
			cancel()

			if pingErr != nil {
				log.Printf("Failed to connect to Redis: %v", pingErr)
				log.Println("Falling back to in-memory repositories")
				_ = redisClient.Close()
				redisClient = nil
			} else {
				log.Println("Using Redis for persistence")
				providerConfig.RedisClient = redisClient
			}
		}
	} else {
		log.Println("No REDIS_URL found, using in-memory repositories")
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	bot, err := v2.NewBot(&v2.BotConfig{
		Provider:       provider,
		Sender:         dg,
		ConfirmTimeout: cfg.LongRest.ConfirmTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	dg.AddHandler(bot.HandleInteraction)

	if err := dg.Open(); err != nil {
		log.Printf("Failed to open Discord connection: %v", err)
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Printf("Failed to close Discord connection: %v", clientErr)
		}
	}()

	// Use empty string for global commands, or set a specific guild ID for testing
	if err := v2.RegisterCommands(dg, cfg.Discord.AppID, cfg.Discord.GuildID); err != nil {
		log.Printf("Failed to register commands: %v", err)
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Failed to close Redis connection: %v", err)
		}
	}
}
