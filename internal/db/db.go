package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqliteScheme = "sqlite://"

var (
	ErrorEmptyURL       = errors.New("database url is empty")
	ErrorUnsupportedURL = errors.New("unsupported database url")
)

// Database agrupa el handle de gorm y el *sql.DB subyacente.
type Database struct {
	gorm *gorm.DB
	sql  *sql.DB
}

var (
	openGorm = func(dialector gorm.Dialector) (*gorm.DB, error) {
		return gorm.Open(dialector, &gorm.Config{
			Logger:  logger.Default.LogMode(logger.Silent),
			NowFunc: func() time.Time { return time.Now().UTC() },
		})
	}
	pingDatabase = func(ctx context.Context, sqlDB *sql.DB) error {
		return sqlDB.PingContext(ctx)
	}
	closeDatabase = func(sqlDB *sql.DB) {
		_ = sqlDB.Close()
	}
)

// Open abre la base indicada por databaseURL.
// Soporta sqlite://<archivo> (o sqlite://:memory:) y postgres:// / postgresql://.
// Se usa un timeout corto para evitar que el arranque quede colgado si la DB no responde.
func Open(ctx context.Context, databaseURL string) (*Database, error) {
	target, err := backendFor(databaseURL)
	if err != nil {
		return nil, err
	}

	gormDB, err := openGorm(target.dialector)
	if err != nil {
		target.release()
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		target.release()
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	target.configure(sqlDB)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Validación temprana: asegura que la app no arranca "a medias".
	if err := pingDatabase(pingCtx, sqlDB); err != nil {
		closeDatabase(sqlDB)
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{gorm: gormDB, sql: sqlDB}, nil
}

// Gorm devuelve el handle de gorm para los repositorios.
func (database *Database) Gorm() *gorm.DB {
	return database.gorm
}

func (database *Database) Ping(ctx context.Context) error {
	return database.sql.PingContext(ctx)
}

func (database *Database) Close() error {
	return database.sql.Close()
}

// Migrate crea o actualiza las tablas de los modelos dados.
func Migrate(ctx context.Context, database *Database, models ...any) error {
	if err := database.gorm.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// backend es lo necesario para abrir una base con gorm.
// conn solo existe en postgres: el pool se crea antes que gorm y hay que cerrarlo si gorm falla.
type backend struct {
	dialector gorm.Dialector
	configure func(*sql.DB)
	conn      *sql.DB
}

func (target backend) release() {
	if target.conn != nil {
		closeDatabase(target.conn)
	}
}

func backendFor(databaseURL string) (backend, error) {
	databaseURL = strings.TrimSpace(databaseURL)

	switch {
	case databaseURL == "":
		return backend{}, ErrorEmptyURL

	case strings.HasPrefix(databaseURL, sqliteScheme):
		path := strings.TrimPrefix(databaseURL, sqliteScheme)
		if path == "" {
			return backend{}, fmt.Errorf("%w: missing sqlite path", ErrorUnsupportedURL)
		}
		return backend{dialector: sqlite.Open(path), configure: configureSQLitePool}, nil

	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		pgxConfig, err := pgx.ParseConfig(databaseURL)
		if err != nil {
			return backend{}, fmt.Errorf("parse postgres url: %w", err)
		}
		sqlDB := stdlib.OpenDB(*pgxConfig)
		return backend{
			dialector: postgres.New(postgres.Config{Conn: sqlDB}),
			configure: configurePostgresPool,
			conn:      sqlDB,
		}, nil

	default:
		return backend{}, fmt.Errorf("%w: %q", ErrorUnsupportedURL, schemeOf(databaseURL))
	}
}

// SQLite admite un solo escritor; además ":memory:" vive mientras viva su única conexión.
func configureSQLitePool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	sqlDB.SetConnMaxIdleTime(0)
}

func configurePostgresPool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

func schemeOf(databaseURL string) string {
	if index := strings.Index(databaseURL, "://"); index >= 0 {
		return databaseURL[:index]
	}
	return databaseURL
}
