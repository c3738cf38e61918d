package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/opstrack/forms-go/internal/domain/form"
	"github.com/opstrack/forms-go/internal/domain/submission"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SetupPostgresForIntegration opens a migrated database for integration tests.
// TEST_DB_DSN points it at an external database; otherwise a throwaway
// container is started.
func SetupPostgresForIntegration() (*gorm.DB, func()) {
	if dsn := os.Getenv("TEST_DB_DSN"); dsn != "" {
		gormDB, err := openAndMigrate(dsn)
		if err != nil {
			log.Fatal(err)
		}
		return gormDB, func() {
			if sqlDB, err := gormDB.DB(); err == nil {
				_ = sqlDB.Close()
			}
		}
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image: "postgres:15",
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "forms",
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		log.Fatal(err)
	}

	host, err := pg.Host(ctx)
	if err != nil {
		log.Fatal(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatal(err)
	}

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/forms?sslmode=disable", host, port.Port())

	// retry until the server accepts connections
	for i := 0; i < 10; i++ {
		var probe *sql.DB
		probe, err = sql.Open("postgres", dsn)
		if err == nil {
			err = probe.Ping()
			_ = probe.Close()
			if err == nil {
				break
			}
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatal(err)
	}

	gormDB, err := openAndMigrate(dsn)
	if err != nil {
		log.Fatal(err)
	}

	cleanup := func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		_ = pg.Terminate(ctx)
	}

	return gormDB, cleanup
}

func openAndMigrate(dsn string) (*gorm.DB, error) {
	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := gormDB.AutoMigrate(
		&form.Form{},
		&form.FormField{},
		&submission.FormResponse{},
		&submission.FormResponseValue{},
	); err != nil {
		return nil, err
	}
	return gormDB, nil
}
