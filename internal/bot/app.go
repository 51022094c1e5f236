package bot

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Blonteractor/discord-amibot/internal/amizone"
	"github.com/Blonteractor/discord-amibot/internal/config"
	"github.com/Blonteractor/discord-amibot/internal/credentials"
	"github.com/Blonteractor/discord-amibot/internal/logging"
	"github.com/Blonteractor/discord-amibot/internal/store"
)

// App owns the process-wide resources of the bot: the database, the shared
// upstream channel, and the Bot built on top of them.
type App struct {
	cfg  *config.Config
	log  logging.Logger
	bot  *Bot
	db   *sql.DB
	conn *amizone.Connection
}

// NewApp wires the full stack from configuration. The AEAD key is loaded
// exactly once here and lives only inside the codec from then on. Any
// failure is fatal to bootstrap.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewDefault(cfg.LogLevel)

	codec, err := buildCodec(cfg)
	if err != nil {
		return nil, err
	}

	db, err := store.Open(cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := store.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	st := store.NewPostgres(db, codec)

	conn, err := amizone.Connect(cfg.AmizoneAddr, cfg.AmizoneTLS, amizone.NewGRPCService)
	if err != nil {
		db.Close()
		return nil, TransportError(err)
	}

	log.Info(ctx, "bootstrap complete",
		"amizone_addr", cfg.AmizoneAddr,
		"tls", cfg.AmizoneTLS,
		"codec", cfg.CodecStrategy,
	)

	return &App{
		cfg:  cfg,
		log:  log,
		bot:  New(st, conn, log, cfg.CommandTimeout),
		db:   db,
		conn: conn,
	}, nil
}

func buildCodec(cfg *config.Config) (credentials.Codec, error) {
	var key []byte
	if cfg.CodecStrategy != "basic" {
		src := credentials.KeySource{
			File:       cfg.KeyFile,
			Env:        cfg.KeyEnv,
			Passphrase: cfg.KeyPassphrase,
			Salt:       cfg.KeySalt,
		}
		var err error
		if key, err = src.Load(); err != nil {
			return nil, fmt.Errorf("load credential key: %w", err)
		}
	}
	return credentials.NewCodec(cfg.CodecStrategy, key)
}

// Bot returns the command layer for the chat frontend to drive.
func (a *App) Bot() *Bot { return a.bot }

// Logger returns the process logger.
func (a *App) Logger() logging.Logger { return a.log }

// Run blocks until SIGINT or SIGTERM, then releases all resources.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.log.Info(ctx, "amibot running")
	<-ctx.Done()
	a.log.Info(ctx, "shutting down")

	return a.Close()
}

// Close releases the upstream channel and the database.
func (a *App) Close() error {
	var first error
	if err := a.conn.Close(); err != nil {
		first = err
	}
	if err := a.db.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
