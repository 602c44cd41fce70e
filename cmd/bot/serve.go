package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fadedcity/prismbot/internal/command"
	"github.com/fadedcity/prismbot/internal/dice"
	"github.com/fadedcity/prismbot/internal/orchestrators/game"
	"github.com/fadedcity/prismbot/internal/pkg/idgen"
	"github.com/fadedcity/prismbot/internal/prism"
	"github.com/fadedcity/prismbot/internal/repositories/character"
	"github.com/fadedcity/prismbot/internal/repositories/reroll"
	redisclient "github.com/fadedcity/prismbot/internal/redis"
)

var (
	serveRoom string
	serveUser string
	serveGM   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the bot against the console gateway",
	Long:  `Run the command processor, reading chat events from stdin and rendering output to stdout.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveRoom, "room", "table", "room name for console messages")
	serveCmd.Flags().StringVar(&serveUser, "user", "gm", "user name for console messages")
	serveCmd.Flags().BoolVar(&serveGM, "gm", true, "treat the console user as privileged")
}

func runServe(cmd *cobra.Command, args []string) error {
	setupLogging(getEnv("BOT_LOG_LEVEL", "info"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal")
		cancel()
	}()

	client, err := redisclient.NewClient(getEnv("BOT_REDIS_ADDR", "localhost:6379"), nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}()

	characterRepo, err := character.NewRedis(&character.RedisConfig{Client: client})
	if err != nil {
		return err
	}

	scenario := demoScenario()
	prisms, err := prism.NewSet(scenario.Prisms)
	if err != nil {
		return err
	}

	gateway := newConsoleGateway(os.Stdout, serveRoom, serveUser, serveGM)

	orchestrator, err := game.NewOrchestrator(&game.Config{
		Messenger:     gateway,
		Directory:     gateway,
		CharacterRepo: characterRepo,
		RerollRepo:    reroll.NewMemory(nil),
		Resolver:      dice.NewResolver(nil),
		Prisms:        prisms,
		Scenario:      scenario,
		IDGenerator:   idgen.NewUUID("char"),
	})
	if err != nil {
		return err
	}

	registry := command.NewRegistry(getEnv("BOT_COMMAND_PREFIX", "!"))
	if err := orchestrator.RegisterCommands(registry); err != nil {
		return err
	}

	dispatcher, err := command.NewDispatcher(&command.DispatcherConfig{
		Registry:   registry,
		Authorizer: orchestrator,
		Messenger:  gateway,
	})
	if err != nil {
		return err
	}

	slog.Info("bot ready",
		"scenario", scenario.Name,
		"prefix", registry.Prefix(),
		"room", serveRoom,
	)

	return gateway.Run(ctx, os.Stdin, dispatcher.HandleMessage, orchestrator.HandleReaction)
}

func setupLogging(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
