package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Blonteractor/discord-amibot/internal/credentials"
	"github.com/Blonteractor/discord-amibot/internal/dbx"
	"github.com/Blonteractor/discord-amibot/internal/store/migrations"
)

// Postgres is the durable Store backed by a single credentials table.
// Rows hold only {id, token}; the secret never touches the database in any
// form but the codec's output.
type Postgres struct {
	db    *sql.DB
	codec credentials.Codec

	// legacy decodes rows written by the reversible-encoding generation.
	// It is consulted by Update and Forget exactly once per operation,
	// and only when the configured codec answers ErrLegacyFormat.
	legacy credentials.Codec
}

// Open connects to Postgres via the pgx stdlib driver.
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return db, nil
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}
	return nil
}

// NewPostgres wraps db with the deployment's codec.
func NewPostgres(db *sql.DB, codec credentials.Codec) *Postgres {
	return &Postgres{db: db, codec: codec, legacy: credentials.BasicCodec{}}
}

func (s *Postgres) CreateOrGet(ctx context.Context, identity, username, password string) (*credentials.Record, error) {
	fresh, err := credentials.NewRecord(s.codec, identity, username, password)
	if err != nil {
		return nil, err
	}

	var result *credentials.Record
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var token string
		err := tx.QueryRowContext(ctx,
			`SELECT token FROM credentials WHERE id = $1 FOR UPDATE`, identity).Scan(&token)

		switch {
		case err == nil:
			// Idempotent: the first record wins, even if the caller
			// supplied different credentials this time.
			existing, err := credentials.RecordFromToken(s.codec, identity, token)
			if err != nil {
				return err
			}
			result = existing
			return nil
		case errors.Is(err, sql.ErrNoRows):
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO credentials (id, token) VALUES ($1, $2)`,
				identity, fresh.Token()); err != nil {
				return fmt.Errorf("db error: %w", err)
			}
			result = fresh
			return nil
		default:
			return fmt.Errorf("db error: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Postgres) Lookup(ctx context.Context, identity string) (*credentials.Record, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`SELECT token FROM credentials WHERE id = $1`, identity).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return credentials.RecordFromToken(s.codec, identity, token)
}

func (s *Postgres) Update(ctx context.Context, identity, username, password string) (*credentials.Record, error) {
	fresh, err := credentials.NewRecord(s.codec, identity, username, password)
	if err != nil {
		return nil, err
	}

	var prev *credentials.Record
	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var token string
		err := tx.QueryRowContext(ctx,
			`SELECT token FROM credentials WHERE id = $1 FOR UPDATE`, identity).Scan(&token)
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		prev, err = s.decodeStored(identity, token)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE credentials SET token = $2 WHERE id = $1`,
			identity, fresh.Token()); err != nil {
			return fmt.Errorf("db error: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return prev, nil
}

func (s *Postgres) Forget(ctx context.Context, identity string) (*credentials.Record, error) {
	var token string
	err := s.db.QueryRowContext(ctx,
		`DELETE FROM credentials WHERE id = $1 RETURNING token`, identity).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return s.decodeStored(identity, token)
}

// MigrationResult reports what MigrateLegacyTokens did.
type MigrationResult struct {
	Migrated int
	Skipped  int
}

// MigrateLegacyTokens re-encodes every reversible-encoding token through the
// configured codec, inside one transaction. Rows already in the configured
// format are left alone. A row whose legacy token does not decode aborts the
// whole migration so no partial state is committed.
func (s *Postgres) MigrateLegacyTokens(ctx context.Context) (MigrationResult, error) {
	var res MigrationResult
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		rows, err := tx.QueryContext(ctx,
			`SELECT id, token FROM credentials ORDER BY id FOR UPDATE`)
		if err != nil {
			return fmt.Errorf("db error: %w", err)
		}

		type row struct{ id, token string }
		var all []row
		for rows.Next() {
			var r row
			if err := rows.Scan(&r.id, &r.token); err != nil {
				rows.Close()
				return fmt.Errorf("db error: %w", err)
			}
			all = append(all, r)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("db error: %w", err)
		}
		rows.Close()

		for _, r := range all {
			if _, err := credentials.RecordFromToken(s.codec, r.id, r.token); !errors.Is(err, credentials.ErrLegacyFormat) {
				if err != nil {
					return fmt.Errorf("row %s: %w", r.id, err)
				}
				res.Skipped++
				continue
			}

			rec, err := credentials.RecordFromToken(s.legacy, r.id, r.token)
			if err != nil {
				return fmt.Errorf("row %s: %w", r.id, err)
			}
			fresh, err := credentials.NewRecord(s.codec, r.id, rec.Username(), rec.Password())
			if err != nil {
				return fmt.Errorf("row %s: %w", r.id, err)
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE credentials SET token = $2 WHERE id = $1`,
				r.id, fresh.Token()); err != nil {
				return fmt.Errorf("db error: %w", err)
			}
			res.Migrated++
		}
		return nil
	})
	if err != nil {
		return MigrationResult{}, err
	}
	return res, nil
}

// decodeStored is the self-healing read path for Update and Forget: rows
// written by the reversible-encoding generation fail the configured codec
// with ErrLegacyFormat, and that error alone triggers one retry through the
// legacy codec. Every other decode failure propagates.
func (s *Postgres) decodeStored(identity, token string) (*credentials.Record, error) {
	rec, err := credentials.RecordFromToken(s.codec, identity, token)
	if errors.Is(err, credentials.ErrLegacyFormat) {
		return credentials.RecordFromToken(s.legacy, identity, token)
	}
	return rec, err
}
