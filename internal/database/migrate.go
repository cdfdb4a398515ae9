package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"learnpath/internal/config"
	"learnpath/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations
var migrationsFS embed.FS

// ErrDownUnsupported is returned when rolling back an Oracle schema.
var ErrDownUnsupported = errors.New("down migrations are only supported for sqlite")

// Migrator applies the embedded schema for one driver.
type Migrator struct {
	driver string
	db     *sqlx.DB
	m      *migrate.Migrate
}

// NewMigrator prepares migrations for db. For sqlite the golang-migrate
// engine owns db afterwards: Close closes it.
func NewMigrator(db *sqlx.DB, driver string) (*Migrator, error) {
	mg := &Migrator{driver: driver, db: db}
	if driver == DriverOracle {
		return mg, nil
	}

	src, err := iofs.New(migrationsFS, "migrations/sqlite")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}
	drv, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("could not create sqlite migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, DriverSQLite, drv)
	if err != nil {
		return nil, fmt.Errorf("could not create migrator: %w", err)
	}
	mg.m = m
	return mg, nil
}

// Up applies all pending migrations. Being already current is not an error.
func (mg *Migrator) Up(ctx context.Context) error {
	if mg.m == nil {
		return runOracleMigrations(ctx, mg.db)
	}
	if err := mg.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	logger.Get().Info("Migrations applied", zap.String("driver", mg.driver))
	return nil
}

// Down rolls back steps migrations, or all of them when steps <= 0.
func (mg *Migrator) Down(steps int) error {
	if mg.m == nil {
		return ErrDownUnsupported
	}
	var err error
	if steps <= 0 {
		err = mg.m.Down()
	} else {
		err = mg.m.Steps(-steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not roll back migrations: %w", err)
	}
	return nil
}

// Version reports the applied schema version; 0 means nothing is applied.
func (mg *Migrator) Version() (uint, bool, error) {
	if mg.m == nil {
		var v sql.NullInt64
		err := mg.db.Get(&v, `SELECT MAX(version) FROM schema_migrations`)
		if err != nil {
			return 0, false, fmt.Errorf("failed to query schema_migrations: %w", err)
		}
		return uint(v.Int64), false, nil
	}
	v, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Close releases the migration engine and, for sqlite, the database.
func (mg *Migrator) Close() error {
	if mg.m == nil {
		return nil
	}
	srcErr, dbErr := mg.m.Close()
	return errors.Join(srcErr, dbErr)
}

// RunMigrations applies pending migrations on a dedicated connection, so the
// caller's pool stays open once the migrator is closed.
func RunMigrations(ctx context.Context, cfg *config.Config) error {
	db, err := NewSQLXDB(cfg)
	if err != nil {
		return err
	}
	mg, err := NewMigrator(db, cfg.DB.Driver)
	if err != nil {
		db.Close()
		return err
	}
	defer func() {
		if err := mg.Close(); err != nil {
			logger.Get().Warn("Failed to close migrator", zap.Error(err))
		}
		if cfg.DB.Driver == DriverOracle {
			db.Close()
		}
	}()
	return mg.Up(ctx)
}

type oracleMigration struct {
	version uint64
	name    string
}

// runOracleMigrations executes each embedded .up.sql file not yet recorded in
// schema_migrations, in version order.
func runOracleMigrations(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, `CREATE TABLE schema_migrations (version NUMBER(19) PRIMARY KEY)`); err != nil {
		// ORA-00955: name is already used by an existing object
		if !strings.Contains(err.Error(), "ORA-00955") {
			return fmt.Errorf("could not create schema_migrations: %w", err)
		}
	}

	var applied []uint64
	if err := db.SelectContext(ctx, &applied, `SELECT version FROM schema_migrations`); err != nil {
		return fmt.Errorf("could not read schema_migrations: %w", err)
	}
	done := make(map[uint64]bool, len(applied))
	for _, v := range applied {
		done[v] = true
	}

	migrations, err := listOracleMigrations()
	if err != nil {
		return err
	}

	for _, mig := range migrations {
		if done[mig.version] {
			continue
		}
		content, err := fs.ReadFile(migrationsFS, path.Join("migrations/oracle", mig.name))
		if err != nil {
			return fmt.Errorf("could not read migration file %s: %w", mig.name, err)
		}
		for _, stmt := range splitStatements(string(content)) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("could not execute migration %s: %w", mig.name, err)
			}
		}
		if _, err := db.ExecContext(ctx, db.Rebind(`INSERT INTO schema_migrations (version) VALUES (?)`), mig.version); err != nil {
			return fmt.Errorf("could not record migration %s: %w", mig.name, err)
		}
		logger.Get().Info("Executed migration", zap.String("file", mig.name))
	}
	return nil
}

func listOracleMigrations() ([]oracleMigration, error) {
	entries, err := fs.ReadDir(migrationsFS, "migrations/oracle")
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}
	var out []oracleMigration
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), ".up.sql") {
			continue
		}
		prefix, _, ok := strings.Cut(e.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("migration %s has no version prefix", e.Name())
		}
		v, err := strconv.ParseUint(prefix, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("migration %s has invalid version: %w", e.Name(), err)
		}
		out = append(out, oracleMigration{version: v, name: e.Name()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}

// splitStatements splits a script on semicolons that end a line. go-ora
// executes one statement per call and rejects the trailing semicolon.
func splitStatements(script string) []string {
	var stmts []string
	var cur strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimRight(line, " \t\r")
		if strings.HasSuffix(trimmed, ";") {
			cur.WriteString(strings.TrimSuffix(trimmed, ";"))
			if s := strings.TrimSpace(cur.String()); s != "" {
				stmts = append(stmts, s)
			}
			cur.Reset()
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		stmts = append(stmts, s)
	}
	return stmts
}
