// Command asisten-chat runs the conversational engine as an interactive
// terminal chat. It wires the classification stack, session memory, domain
// handlers, and external collaborators from environment configuration.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/sutandi/asisten/internal/classify"
	"github.com/sutandi/asisten/internal/config"
	"github.com/sutandi/asisten/internal/domains"
	"github.com/sutandi/asisten/internal/domains/food"
	"github.com/sutandi/asisten/internal/domains/marketplace"
	"github.com/sutandi/asisten/internal/domains/travel"
	"github.com/sutandi/asisten/internal/embedding"
	"github.com/sutandi/asisten/internal/followup"
	"github.com/sutandi/asisten/internal/language"
	"github.com/sutandi/asisten/internal/llm"
	"github.com/sutandi/asisten/internal/ner"
	"github.com/sutandi/asisten/internal/orchestrator"
	"github.com/sutandi/asisten/internal/profile"
	"github.com/sutandi/asisten/internal/retrieval"
	"github.com/sutandi/asisten/internal/search"
	"github.com/sutandi/asisten/internal/session"
	"github.com/sutandi/asisten/internal/slots"
	"github.com/sutandi/asisten/internal/taskflow"
	"github.com/sutandi/asisten/internal/translate"
	"github.com/sutandi/asisten/pkg/types"
)

var (
	userID = flag.String("user", "anonymous_user", "User identifier for session and profile state")
	mode   = flag.String("mode", "text", "Interaction mode: text or voice")
)

func main() {
	flag.Parse()

	// Optional .env for local development; environment wins when both set.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	banks, err := config.LoadBanks(cfg.BanksPath)
	if err != nil {
		log.Fatalf("Failed to load phrase banks: %v", err)
	}

	ctx := context.Background()

	embedder, err := embedding.NewEmbedder(cfg.Embedding)
	if err != nil {
		log.Fatalf("Failed to create embedder: %v", err)
	}
	detector := language.NewDetector(cfg.Classifier.DefaultLanguage)

	generator, err := llm.NewTextGenerator(cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to create completion client: %v", err)
	}
	completions := llm.NewService(generator, cfg.LLM.Temperature)

	var domainTranslator classify.Translator
	var replyTranslator orchestrator.Translator
	if cfg.Translate.URL != "" {
		client := translate.NewClient(cfg.Translate.URL, cfg.Translate.APIKey)
		domainTranslator = client
		replyTranslator = client
	}

	intents, err := classify.NewIntentClassifier(ctx, embedder, cfg.Classifier, banks)
	if err != nil {
		log.Fatalf("Failed to build intent classifier: %v", err)
	}
	domainClassifier, err := classify.NewDomainClassifier(ctx, embedder, detector, domainTranslator, intents, cfg.Classifier, banks)
	if err != nil {
		log.Fatalf("Failed to build domain classifier: %v", err)
	}

	sessions := session.NewStore(cfg.Session.TTL)
	followups, err := followup.NewResolver(ctx, embedder, sessions, cfg.Classifier, banks)
	if err != nil {
		log.Fatalf("Failed to build follow-up resolver: %v", err)
	}
	flow := taskflow.New(intents)

	providers := search.NewProviders(cfg.Search)
	images := search.NewTavilyClient(cfg.Search)
	matcher := slots.NewMatcher(embedder)
	recognizer := ner.NewRecognizer()

	if err := os.MkdirAll(filepath.Dir(cfg.Profile.Path), 0o755); err != nil {
		log.Fatalf("Failed to create profile directory: %v", err)
	}
	profiles, err := profile.NewSQLiteStore(cfg.Profile.Path)
	if err != nil {
		log.Fatalf("Failed to open profile store: %v", err)
	}
	defer profiles.Close()

	var snippets retrieval.Provider
	if cfg.Retrieval.Backend == "postgres" && cfg.Retrieval.PostgresDSN != "" {
		pg, err := retrieval.NewPostgresProvider(cfg.Retrieval.PostgresDSN, embedder, cfg.Retrieval.TopK)
		if err != nil {
			log.Printf("Postgres retrieval unavailable, using in-memory backend: %v", err)
		} else {
			defer pg.Close()
			snippets = pg
		}
	}
	if snippets == nil {
		snippets = retrieval.NewMemoryProvider(ctx, embedder, cfg.Retrieval.TopK, nil)
	}

	registry := domains.Registry{
		types.DomainFood: food.New(matcher, recognizer, images, detector, providers,
			completions, banks.FoodVocabulary, cfg.Classifier.FoodGateThreshold),
		types.DomainTravel:      travel.New(recognizer, detector, providers, completions),
		types.DomainMarketplace: marketplace.New(recognizer, detector, providers, completions),
	}

	orch, err := orchestrator.New(ctx, orchestrator.Options{
		Embedder:   embedder,
		Detector:   detector,
		Domains:    domainClassifier,
		Intents:    intents,
		Sessions:   sessions,
		Followups:  followups,
		Flow:       flow,
		Registry:   registry,
		LLM:        completions,
		Translator: replyTranslator,
		Providers:  providers,
		Retrieval:  snippets,
		Profile:    profiles,
		Classifier: cfg.Classifier,
		Banks:      banks,
	})
	if err != nil {
		log.Fatalf("Failed to build orchestrator: %v", err)
	}

	interactionMode := types.Mode(*mode)
	fmt.Println("Asisten ready. Type a message, or 'exit' to quit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "exit" || line == "quit" {
			break
		}
		fmt.Println(orch.Handle(ctx, line, *userID, interactionMode))
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Input error: %v", err)
	}
}
