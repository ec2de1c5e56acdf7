// Command monster-chase runs the Monster Chase memory game.
//
// It supports three commands:
//  1. "play" (default) – plays a game in the terminal, optionally streaming it to spectators
//  2. "mcp" – serves the game as MCP tools over stdio for AI agents
//  3. "config" – prints the effective settings, or writes them to a file
//
// Settings come from built-in defaults, an optional JSON settings file,
// MONSTER_CHASE_* environment variables (a .env file is loaded first) and
// flags, in increasing order of precedence.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/monster-chase/api"
	"github.com/wricardo/monster-chase/game/config"
	"github.com/wricardo/monster-chase/game/engine"
	"github.com/wricardo/monster-chase/game/service"
	"github.com/wricardo/monster-chase/game/session"
	"github.com/wricardo/monster-chase/logger"
	"github.com/wricardo/monster-chase/transport/console"
	"github.com/wricardo/monster-chase/transport/mcp"
	"github.com/wricardo/monster-chase/transport/websocket"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Monster Chase"
)

const shutdownTimeout = 5 * time.Second

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "monster-chase: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the command tree
func newApp() *cli.Command {
	return &cli.Command{
		Name:      "monster-chase",
		Usage:     "steer the monster onto the target from memory",
		Version:   Version,
		Reader:    os.Stdin,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "JSON settings file",
				Sources: cli.EnvVars("MONSTER_CHASE_CONFIG"),
			},
			&cli.DurationFlag{
				Name:    "delay",
				Usage:   "how long the full board stays visible each turn",
				Value:   session.DefaultRevealDelay,
				Sources: cli.EnvVars("MONSTER_CHASE_DELAY"),
			},
			&cli.StringFlag{
				Name:    "theme",
				Usage:   "glyph theme: emoji or ascii",
				Value:   string(engine.ThemeEmoji),
				Sources: cli.EnvVars("MONSTER_CHASE_THEME"),
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "random seed for placement and respawns (0 = time based)",
				Sources: cli.EnvVars("MONSTER_CHASE_SEED"),
			},
			&cli.StringFlag{
				Name:    "clear",
				Usage:   "clear the screen between frames: auto, always or never",
				Value:   config.ClearAuto,
				Sources: cli.EnvVars("MONSTER_CHASE_CLEAR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging",
				Sources: cli.EnvVars("MONSTER_CHASE_DEBUG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (panic, fatal, error, warn, info, debug, trace)",
				Value:   logrus.WarnLevel.String(),
				Sources: cli.EnvVars("MONSTER_CHASE_LOG_LEVEL", "LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log format: text or json",
				Value:   config.FormatText,
				Sources: cli.EnvVars("MONSTER_CHASE_LOG_FORMAT", "LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "spectate",
				Usage:   "serve the spectator API and websocket on this address (e.g. 127.0.0.1:8080)",
				Sources: cli.EnvVars("MONSTER_CHASE_SPECTATE"),
			},
			&cli.BoolFlag{
				Name:    "ngrok",
				Usage:   "expose the spectator server through an ngrok tunnel",
				Sources: cli.EnvVars("MONSTER_CHASE_NGROK", "NGROK_ENABLED"),
			},
			&cli.StringFlag{
				Name:    "ngrok-domain",
				Usage:   "custom ngrok domain (optional)",
				Sources: cli.EnvVars("MONSTER_CHASE_NGROK_DOMAIN", "NGROK_DOMAIN"),
			},
			&cli.StringFlag{
				Name:    "ngrok-auth",
				Usage:   "ngrok auth token",
				Sources: cli.EnvVars("NGROK_AUTHTOKEN", "NGROK_AUTH_TOKEN"),
			},
		},
		Action: runPlay,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play in the terminal (default)",
				Action: runPlay,
			},
			{
				Name:   "mcp",
				Usage:  "serve the game as MCP tools over stdio",
				Action: runMCP,
			},
			{
				Name:  "config",
				Usage: "print the effective settings as JSON",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "write",
						Usage: "write the settings to this file instead of printing them",
					},
				},
				Action: runConfig,
			},
			{
				Name:  "version",
				Usage: "print the version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintf(cmd.Root().Writer, "%s v%s\n", AppName, Version)
					return err
				},
			},
		},
	}
}

// resolveSettings layers the settings file and explicitly set flags over the
// defaults and validates the result.
func resolveSettings(cmd *cli.Command) (*config.Settings, error) {
	settings := config.Default()
	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		settings = loaded
	}

	if cmd.IsSet("delay") {
		settings.RevealDelay = config.Duration(cmd.Duration("delay"))
	}
	if cmd.IsSet("theme") {
		settings.Theme = cmd.String("theme")
	}
	if cmd.IsSet("seed") {
		settings.Seed = cmd.Uint64("seed")
	}
	if cmd.IsSet("clear") {
		settings.ClearScreen = cmd.String("clear")
	}
	if cmd.IsSet("log-level") {
		settings.LogLevel = cmd.String("log-level")
	}
	if cmd.Bool("debug") {
		settings.LogLevel = logrus.DebugLevel.String()
	}
	if cmd.IsSet("log-format") {
		settings.LogFormat = cmd.String("log-format")
	}
	if cmd.IsSet("spectate") {
		settings.SpectateAddr = cmd.String("spectate")
	}
	if cmd.IsSet("ngrok") {
		settings.Ngrok = cmd.Bool("ngrok")
	}
	if cmd.IsSet("ngrok-domain") {
		settings.NgrokDomain = cmd.String("ngrok-domain")
	}

	if err := config.Validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// setup resolves settings and builds the logger shared by every command
func setup(cmd *cli.Command) (*config.Settings, *logrus.Logger, error) {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	log, err := logger.New(settings.LogLevel, settings.LogFormat, cmd.Root().ErrWriter)
	if err != nil {
		return nil, nil, err
	}
	return settings, log, nil
}

// runPlay plays one game in the terminal. Game over, closed input and
// interrupts all exit cleanly.
func runPlay(ctx context.Context, cmd *cli.Command) error {
	settings, log, err := setup(cmd)
	if err != nil {
		return err
	}

	gameID := uuid.NewString()
	eng, err := engine.NewRandomEngine(
		engine.WithSeed(settings.Seed),
		engine.WithLogger(log.WithField("game_id", gameID)),
	)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}

	root := cmd.Root()
	var display session.Display = console.NewDisplay(root.Writer, console.ClearMode(settings.ClearScreen))
	opts := []session.Option{
		session.WithRevealDelay(settings.Delay()),
		session.WithTheme(settings.GlyphTheme()),
		session.WithLogger(log),
		session.WithID(gameID),
	}

	if settings.SpectateAddr != "" {
		hub := websocket.NewHub(websocket.WithLogger(log))
		shutdown, err := startSpectators(ctx, settings, cmd.String("ngrok-auth"), hub, log)
		if err != nil {
			return err
		}
		defer shutdown()

		mirror := websocket.NewDisplay(hub, gameID)
		display = session.MultiDisplay{display, mirror}
		opts = append(opts, session.OnTurn(mirror.PublishTurn))
	}

	input := console.NewContextReader(ctx, root.Reader)
	outcome, err := session.New(eng, display, input, opts...).Run(ctx)

	log.WithFields(logrus.Fields{
		"game_id": gameID,
		"outcome": outcome,
		"score":   eng.Score(),
	}).Info("game finished")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// runMCP serves the game over stdio. Stdout carries the protocol, so logs
// always go to stderr.
func runMCP(ctx context.Context, cmd *cli.Command) error {
	settings, log, err := setup(cmd)
	if err != nil {
		return err
	}

	seed := settings.Seed
	opts := []service.Option{
		service.WithLogger(log),
		service.WithTheme(engine.ThemeASCII),
	}

	if settings.SpectateAddr != "" {
		hub := websocket.NewHub(websocket.WithLogger(log))
		shutdown, err := startSpectators(ctx, settings, cmd.String("ngrok-auth"), hub, log)
		if err != nil {
			return err
		}
		defer shutdown()
		opts = append(opts, service.WithPublisher(hub))
	}

	gameService := service.NewGameService(func() (*engine.GameEngine, error) {
		// A fixed seed still gives every game its own layout
		if seed != 0 {
			seed++
		}
		return engine.NewRandomEngine(engine.WithSeed(seed), engine.WithLogger(log))
	}, opts...)

	log.Info("MCP stdio server ready")
	return mcp.NewServer(gameService, Version).ServeStdio()
}

// runConfig prints or writes the effective settings
func runConfig(ctx context.Context, cmd *cli.Command) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	if path := cmd.String("write"); path != "" {
		return config.Save(path, settings)
	}

	enc := json.NewEncoder(cmd.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(settings)
}

// startSpectators runs the hub, the spectator HTTP server and, when enabled,
// an ngrok tunnel serving the same router. The listener is bound before
// returning so address errors abort startup.
func startSpectators(ctx context.Context, settings *config.Settings, ngrokAuth string, hub *websocket.Hub, log logrus.FieldLogger) (func(), error) {
	listener, err := net.Listen("tcp", settings.SpectateAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", settings.SpectateAddr, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	go hub.Run(ctx)

	router := api.NewServer(hub, log)
	httpServer := &http.Server{
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		addr := listener.Addr().String()
		log.WithField("addr", addr).Info("spectator server listening")
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("spectator server failed")
		}
	}()

	if settings.Ngrok {
		go serveNgrok(ctx, settings.NgrokDomain, ngrokAuth, router, log)
	}

	return func() {
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("spectator server shutdown error")
		}
	}, nil
}

// serveNgrok serves handler through an ngrok tunnel until ctx is done
func serveNgrok(ctx context.Context, domain, authToken string, handler http.Handler, log logrus.FieldLogger) {
	if authToken == "" {
		log.Warn("ngrok enabled but no auth token provided (use --ngrok-auth, NGROK_AUTHTOKEN or NGROK_AUTH_TOKEN)")
		return
	}

	var tunnel ngrokConfig.Tunnel
	if domain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(domain))
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(authToken))
	if err != nil {
		log.WithError(err).Error("failed to start ngrok tunnel")
		return
	}
	defer tun.Close()

	url := tun.URL()
	log.WithFields(logrus.Fields{
		"url":       url,
		"websocket": url + "/ws",
	}).Info("ngrok tunnel established")

	go func() {
		<-ctx.Done()
		tun.Close()
	}()

	if err := http.Serve(tun, handler); err != nil && !errors.Is(err, http.ErrServerClosed) && ctx.Err() == nil {
		log.WithError(err).Warn("ngrok server error")
	}
}
