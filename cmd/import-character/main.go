package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-long-rest/internal/clients/dnd5e"
	"github.com/KirkDiggler/dnd-long-rest/internal/config"
	dnderr "github.com/KirkDiggler/dnd-long-rest/internal/errors"
	"github.com/KirkDiggler/dnd-long-rest/internal/services"
	"github.com/KirkDiggler/dnd-long-rest/internal/services/importer"
)

func main() {
	owner := flag.String("owner", "", "Discord user ID that owns the character")
	name := flag.String("name", "", "character name")
	classes := flag.String("classes", "", "comma separated class:levels, e.g. fighter:3,wizard:2")
	con := flag.Int("con", 0, "constitution modifier")
	flag.Parse()

	if *owner == "" || *name == "" || *classes == "" {
		fmt.Fprintln(os.Stderr, "Usage: import-character -owner <user-id> -name <name> -classes fighter:3,wizard:2 [-con 2]")
		os.Exit(1)
	}

	levels, err := parseClasses(*classes)
	if err != nil {
		log.Fatalf("Invalid classes: %v", err)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Redis.URL == "" {
		log.Fatal("REDIS_URL is required, characters live in Redis")
	}

	ctx := context.Background()

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	dndClient, err := dnd5e.New(&dnd5e.Config{
		HttpClient: &http.Client{Timeout: cfg.DND5E.Timeout},
		BaseURL:    cfg.DND5E.BaseURL,
	})
	if err != nil {
		log.Fatalf("Failed to create D&D 5e client: %v", err)
	}

	provider, err := services.NewProvider(&services.ProviderConfig{
		LongRest:    cfg.LongRest,
		RedisClient: client,
		DNDClient:   dndClient,
	})
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	start := time.Now()
	char, err := provider.ImportService.Import(ctx, &importer.ImportInput{
		OwnerID:           *owner,
		Name:              *name,
		Classes:           levels,
		ConstitutionBonus: *con,
	})
	if err != nil {
		log.Fatalf("Failed to import character: %v", err)
	}

	log.Printf("Imported %s in %v", char.Name, time.Since(start))
	fmt.Printf("%s (ID: %s) level %d, HP %d, hit dice %d\n", char.Name, char.ID, char.Level, char.HP.Max, char.MaxHitDice())
}

func parseClasses(raw string) ([]importer.ClassLevels, error) {
	var out []importer.ClassLevels
	for _, part := range strings.Split(raw, ",") {
		key, levelText, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, dnderr.InvalidArgumentf("expected class:levels, got %q", part)
		}
		levels, err := strconv.Atoi(levelText)
		if err != nil {
			return nil, dnderr.InvalidArgumentf("invalid levels in %q", part)
		}
		out = append(out, importer.ClassLevels{Key: strings.ToLower(key), Levels: levels})
	}
	return out, nil
}
