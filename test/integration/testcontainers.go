package integration

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	transitodb "github.com/transitohq/transito-in-go/db"
	"github.com/transitohq/transito-in-go/pkg/server"
	"github.com/transitohq/transito-in-go/pkg/server/endpoints"
)

// TestContext holds the resources shared by the integration tests: a MySQL
// testcontainer with the full schema and seed data applied, and an in-process
// API server bound to a local port.
type TestContext struct {
	DB          *gorm.DB
	RawDB       *sql.DB
	Container   testcontainers.Container
	ServerURL   string
	DatabaseURL string
	HTTPClient  *http.Client
	server      *server.Server
}

const testServerPort = 18000

// NewTestContext starts a MySQL container, applies the embedded migrations
// (schema plus demo seed data) and boots the server in-process.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	container, err := tcmysql.Run(ctx,
		"mysql:8.0",
		tcmysql.WithDatabase("transito_db"),
		tcmysql.WithUsername("transito"),
		tcmysql.WithPassword("transito"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start mysql container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "3306/tcp")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}

	dsn := fmt.Sprintf(
		"transito:transito@tcp(%s:%s)/transito_db?charset=utf8mb4&parseTime=True&loc=Local&multiStatements=true",
		host, port.Port(),
	)

	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	rawDB, err := db.DB()
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to get raw db: %w", err)
	}

	if err := runMigrations(rawDB); err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s := server.NewServer(db, nil, "127.0.0.1", strconv.Itoa(testServerPort))
	endpoints.RegisterAll(s)

	go func() {
		if err := s.Start(); err != nil && err != http.ErrServerClosed {
			log.Printf("test server exited: %v", err)
		}
	}()

	serverURL := fmt.Sprintf("http://127.0.0.1:%d", testServerPort)
	if err := waitForServer(serverURL, 30*time.Second); err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("server failed to become ready: %w", err)
	}

	return &TestContext{
		DB:          db,
		RawDB:       rawDB,
		Container:   container,
		ServerURL:   serverURL,
		DatabaseURL: dsn,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
		server:      s,
	}, nil
}

// runMigrations applies every embedded migration against the test database.
func runMigrations(db *sql.DB) error {
	migrations, err := fs.Sub(transitodb.Migrations, "migrations")
	if err != nil {
		return err
	}
	source, err := iofs.New(migrations, ".")
	if err != nil {
		return err
	}
	driver, err := migratemysql.WithInstance(db, &migratemysql.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// waitForServer polls the status endpoint until it responds or times out.
func waitForServer(serverURL string, timeout time.Duration) error {
	client := &http.Client{Timeout: 2 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(serverURL + "/")
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("server did not become ready within %v", timeout)
}

// Close cleans up the test resources.
func (tc *TestContext) Close(ctx context.Context) {
	if tc.RawDB != nil {
		_ = tc.RawDB.Close()
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}
