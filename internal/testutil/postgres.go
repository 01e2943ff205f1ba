// Package testutil provides test helpers for storage backends.
package testutil

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/cory-johannsen/mudconvert/internal/config"
	"github.com/cory-johannsen/mudconvert/internal/storage/postgres"
	"github.com/cory-johannsen/mudconvert/migrations"
)

const (
	postgresImage = "postgres:16-alpine"
	testDatabase  = "mudconvert_test"
	testRole      = "convert"
)

// PostgresContainer is a throwaway PostgreSQL server holding one empty
// database. Migrations are not applied until Migrate is called.
type PostgresContainer struct {
	container testcontainers.Container
	Pool      *pgxpool.Pool
	Config    config.DatabaseConfig
}

// NewPostgresContainer starts the server and connects a pool through
// postgres.NewPool, the same constructor the sink uses.
//
// Precondition: Docker must be available. The test is skipped under -short.
// Postcondition: the container and pool are released by t.Cleanup.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in short mode")
	}
	ctx := context.Background()
	start := time.Now()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testRole,
				"POSTGRES_PASSWORD": testRole,
				"POSTGRES_DB":       testDatabase,
			},
			// The entrypoint restarts the server once after initdb.
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("starting %s: %v [%s]", postgresImage, err, time.Since(start))
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	cfg := config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            testRole,
		Password:        testRole,
		Name:            testDatabase,
		SSLMode:         "disable",
		MaxConns:        4,
		MinConns:        1,
		MaxConnLifetime: 5 * time.Minute,
	}
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		t.Fatalf("connecting to %s: %v [%s]", cfg.Name, err, time.Since(start))
	}
	t.Cleanup(pool.Close)

	t.Logf("postgres ready on %s:%d [%s]", host, cfg.Port, time.Since(start))
	return &PostgresContainer{container: container, Pool: pool, Config: cfg}
}

// DSN returns the URL golang-migrate connects with.
func (pc *PostgresContainer) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		pc.Config.User, pc.Config.Password, pc.Config.Host, pc.Config.Port,
		pc.Config.Name, pc.Config.SSLMode)
}

// Migrate applies every embedded migration with golang-migrate, exactly as
// cmd/migrate does.
func (pc *PostgresContainer) Migrate(t *testing.T) {
	t.Helper()
	pc.run(t, "up", (*migrate.Migrate).Up)
}

// Rollback reverts every applied migration.
func (pc *PostgresContainer) Rollback(t *testing.T) {
	t.Helper()
	pc.run(t, "down", (*migrate.Migrate).Down)
}

func (pc *PostgresContainer) run(t *testing.T, direction string, step func(*migrate.Migrate) error) {
	t.Helper()
	m, err := migrations.NewMigrator(pc.DSN())
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()
	if err := step(m); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("migrating %s: %v", direction, err)
	}
}

// NewPool starts a container, migrates it and returns its pool.
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	pc := NewPostgresContainer(t)
	pc.Migrate(t)
	return pc.Pool
}
