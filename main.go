package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/Voxform-core-poc-v1/server/internal/assistant/catalog"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/flows"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/model"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/repo"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/scene"
	"github.com/Voxform-core-poc-v1/server/internal/assistant/slots"
	"github.com/Voxform-core-poc-v1/server/internal/core"
	logx "github.com/Voxform-core-poc-v1/server/pkg/logger"
	pkgredis "github.com/Voxform-core-poc-v1/server/pkg/redis"
)

// AppConfig defines all configurable parameters for the assistant example,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// Infrastructure
	Redis pkgredis.Config

	// Assistant configs
	Assistant model.AssistantConfig
	Session   model.SessionConfig
}

func main() {
	fmt.Println("Testing assistant conversation flows...")
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var cfg AppConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}
	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(cfg.Environment)})

	// Session checkpointing is optional; without REDIS_URL every flow just
	// runs in memory for the lifetime of the process.
	var sessions model.SessionRepository
	if cfg.Redis.Enabled() {
		ttl, err := time.ParseDuration(cfg.Session.CheckpointTTL)
		if err != nil {
			log.Fatalf("Invalid SESSION_CHECKPOINT_TTL '%s': %v", cfg.Session.CheckpointTTL, err)
		}
		rdb, err := cfg.Redis.New()
		if err != nil {
			log.Fatalf("Failed to initialise Redis client: %v", err)
		}
		defer rdb.Close()
		sessions = repo.NewRedisSessionRepository(rdb, ttl)
		fmt.Println("Connected to Redis successfully")
	}

	runOrderDemo(ctx, &cfg, sessions)
	runWellnessDemo(ctx, &cfg)
	runLeadDemo(ctx, &cfg)
	runAdventureDemo(ctx, sessions)
	runShoppingDemo(ctx, &cfg)
	runTutorDemo(ctx, &cfg)

	fmt.Println("\nAll flow demos completed successfully!")
}

func say(step, text string) {
	fmt.Printf("\n[%s]\n%s\n", step, text)
	fmt.Println("─────────────────────────────────────────────")
}

func runOrderDemo(ctx context.Context, cfg *AppConfig, sessions model.SessionRepository) {
	fmt.Println("\n=== Coffee order ===")
	store := repo.NewFileStore(cfg.Assistant.StorePath(cfg.Assistant.OrdersFile))
	flow := flows.NewOrderFlow(store)
	if sessions != nil {
		flow = flow.WithSessions(sessions, "demo-order-"+uuid.NewString()[:8])
	}

	res, err := flow.Start(ctx, "Sam")
	if err != nil {
		log.Fatalf("order start: %v", err)
	}
	say("greeting", res.Text)

	res, err = flow.Update(ctx, slots.Update{
		"drinkType": slots.Text("latte"),
		"size":      slots.Text("medium"),
	})
	if err != nil {
		log.Fatalf("order update: %v", err)
	}
	say("first update", res.Text)

	res, err = flow.Update(ctx, slots.Update{
		"milk":   slots.Text("oat"),
		"extras": slots.List("none"),
		"name":   slots.Text("Sam"),
	})
	if err != nil {
		log.Fatalf("order update: %v", err)
	}
	say("second update", res.Text)

	res, err = flow.Finalize(ctx)
	if err != nil {
		log.Fatalf("order finalize: %v", err)
	}
	say("finalize", res.Text)
}

func runWellnessDemo(ctx context.Context, cfg *AppConfig) {
	fmt.Println("\n=== Wellness check-in ===")
	store := repo.NewFileStore(cfg.Assistant.StorePath(cfg.Assistant.WellnessFile))
	flow := flows.NewWellnessFlow(store)

	res, err := flow.Start(ctx, "Mira")
	if err != nil {
		log.Fatalf("wellness start: %v", err)
	}
	say("greeting", res.Text)

	res, err = flow.Update(ctx, slots.Update{
		"mood":      slots.Text("pretty good"),
		"energy":    slots.Text("high"),
		"stressors": slots.Text("a deadline at work"),
		"goals":     slots.List("finish the report", "take a walk"),
	})
	if err != nil {
		log.Fatalf("wellness update: %v", err)
	}
	say("update", res.Text)

	res, err = flow.Finalize(ctx)
	if err != nil {
		log.Fatalf("wellness finalize: %v", err)
	}
	say("finalize", res.Text)
}

func runLeadDemo(ctx context.Context, cfg *AppConfig) {
	fmt.Println("\n=== Lead qualification ===")
	store := repo.NewFileStore(cfg.Assistant.StorePath(cfg.Assistant.LeadsFile))
	faq := catalog.LoadFAQ(cfg.Assistant.StorePath(cfg.Assistant.FAQFile))
	flow := flows.NewLeadFlow(store, faq)

	res, err := flow.Start(ctx, "")
	if err != nil {
		log.Fatalf("lead start: %v", err)
	}
	say("greeting", res.Text)

	res, err = flow.Lookup(ctx, "how much does it cost in fees?")
	if err != nil {
		log.Fatalf("lead lookup: %v", err)
	}
	say("faq answer", res.Text)

	res, err = flow.Update(ctx, slots.Update{
		"name":      slots.Text("Priya Shah"),
		"company":   slots.Text("Brightcart"),
		"email":     slots.Text("priya@brightcart.io"),
		"role":      slots.Text("CTO"),
		"use_case":  slots.Text("online checkout payments"),
		"team_size": slots.Text("40"),
		"timeline":  slots.Text("this quarter"),
		"notes":     slots.Text("migrating from a legacy gateway"),
	})
	if err != nil {
		log.Fatalf("lead update: %v", err)
	}
	say("update", res.Text)

	res, err = flow.Finalize(ctx)
	if err != nil {
		log.Fatalf("lead finalize: %v", err)
	}
	say("finalize", res.Text)
}

func runAdventureDemo(ctx context.Context, sessions model.SessionRepository) {
	fmt.Println("\n=== Adventure ===")
	flow := flows.NewAdventureFlow(scene.DefaultWorld())
	if sessions != nil {
		flow = flow.WithSessions(sessions, "demo-story-"+uuid.NewString()[:8])
	}

	res, err := flow.Start(ctx, "Alex")
	if err != nil {
		log.Fatalf("adventure start: %v", err)
	}
	say("opening", res.Text)

	for _, action := range []string{
		"let's inspect the tape",
		"pocket it and keep the message in mind",
		"do a backflip",
		"carefully work the hatch latch",
	} {
		res, err = flow.Ingest(ctx, model.Input{Text: action})
		if err != nil {
			log.Fatalf("adventure action %q: %v", action, err)
		}
		say(fmt.Sprintf("action: %s", action), res.Text)
	}

	res, err = flow.Journal(ctx)
	if err != nil {
		log.Fatalf("adventure journal: %v", err)
	}
	say("journal", res.Text)
}

func runShoppingDemo(ctx context.Context, cfg *AppConfig) {
	fmt.Println("\n=== Shopping ===")
	store := repo.NewFileStore(cfg.Assistant.StorePath(cfg.Assistant.PurchasesFile))
	products := catalog.LoadProducts(cfg.Assistant.StorePath(cfg.Assistant.CatalogFile))
	flow := flows.NewShoppingFlow(products, store)

	res, err := flow.Start(ctx, "Dev")
	if err != nil {
		log.Fatalf("shopping start: %v", err)
	}
	say("greeting", res.Text)

	res, err = flow.Browse(ctx, "show me black hoodies under 1500")
	if err != nil {
		log.Fatalf("shopping browse: %v", err)
	}
	say("browse", res.Text)

	res, err = flow.Buy(ctx, model.Selection{Index: 1, Quantity: 1, Size: "medium"})
	if err != nil {
		log.Fatalf("shopping buy: %v", err)
	}
	say("buy", res.Text)

	res, err = flow.LastOrder(ctx)
	if err != nil {
		log.Fatalf("shopping last order: %v", err)
	}
	say("last order", res.Text)
}

func runTutorDemo(ctx context.Context, cfg *AppConfig) {
	fmt.Println("\n=== Tutor ===")
	topics := catalog.LoadTopics(cfg.Assistant.StorePath(cfg.Assistant.TopicsFile))
	flow := flows.NewTutorFlow(topics)

	res, err := flow.Start(ctx, "Dev")
	if err != nil {
		log.Fatalf("tutor start: %v", err)
	}
	say("greeting", res.Text)

	res, err = flow.SelectTopic(ctx, "photosynthesis")
	if err != nil {
		log.Fatalf("tutor topic: %v", err)
	}
	say("topic", res.Text)

	for _, mode := range []string{flows.ModeLearn, flows.ModeQuiz, flows.ModeTeachBack} {
		res, err = flow.SetMode(ctx, mode)
		if err != nil {
			log.Fatalf("tutor mode %s: %v", mode, err)
		}
		say("mode: "+mode, res.Text)
	}

	res, err = flow.Finalize(ctx)
	if err != nil {
		log.Fatalf("tutor finalize: %v", err)
	}
	say("finalize", res.Text)
}
