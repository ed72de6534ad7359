package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/dnd-long-rest/internal/config"
	"github.com/KirkDiggler/dnd-long-rest/internal/services"
	restService "github.com/KirkDiggler/dnd-long-rest/internal/services/rest"
	"github.com/KirkDiggler/dnd-long-rest/internal/terminal"
)

func main() {
	dialog := flag.Bool("dialog", true, "ask before finishing the rest")
	newDay := flag.Bool("newday", true, "a new day has begun")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: long-rest [-dialog=false] [-newday=false] <character-id>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	characterID := flag.Arg(0)

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Redis.URL == "" {
		log.Fatal("REDIS_URL is required, characters live in Redis")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatalf("Failed to parse Redis URL: %v", err)
	}
	client := redis.NewClient(opts)
	defer client.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	provider, err := services.NewProvider(&services.ProviderConfig{
		LongRest:    cfg.LongRest,
		RedisClient: client,
		Confirmer:   terminal.NewConfirmer(os.Stdin, os.Stdout),
	})
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	out, err := provider.RestService.LongRest(ctx, &restService.LongRestInput{
		CharacterID: characterID,
		Dialog:      *dialog,
		NewDay:      *newDay,
	})
	if err != nil {
		log.Fatalf("Long rest failed: %v", err)
	}

	c := out.Character
	if out.Rest.Aborted() {
		fmt.Printf("\n%s got up early. HP %d/%d, hit dice %d/%d\n", c.Name, c.HP.Value, c.HP.Max, c.HitDice(), c.MaxHitDice())
		return
	}

	fmt.Printf("\n%s is rested. HP %d/%d, hit dice %d/%d\n", c.Name, c.HP.Value, c.HP.Max, c.HitDice(), c.MaxHitDice())
	for _, state := range out.Rest.Trail {
		fmt.Printf("  %s\n", state)
	}
	if result := out.Rest.Result; result != nil {
		fmt.Printf("Rest %s: %+d HP, %+d hit dice, new day %t\n", result.ID, result.DeltaHitPoints, result.DeltaHitDice, result.NewDay)
	}
}
