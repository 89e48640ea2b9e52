//go:build integration

package repositories

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/joaovitorrom/API-Sistema-Pets/internal/logger"
	"github.com/joaovitorrom/API-Sistema-Pets/internal/migrations"
)

var (
	postgresDSN string
	redisAddr   string
)

func TestMain(m *testing.M) {
	logger.Initialize("debug")
	ctx := context.Background()

	pg, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "pets_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := pg.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := pg.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	postgresDSN = fmt.Sprintf("postgres://postgres:password@%s:%s/pets_test?sslmode=disable", host, port.Port())

	rd, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	rhost, err := rd.Host(ctx)
	if err != nil {
		panic(err)
	}
	rport, err := rd.MappedPort(ctx, "6379")
	if err != nil {
		panic(err)
	}
	redisAddr = fmt.Sprintf("%s:%s", rhost, rport.Port())

	code := m.Run()
	_ = pg.Terminate(ctx)
	_ = rd.Terminate(ctx)
	os.Exit(code)
}

// setupPostgres connects to the shared container, applies migrations and empties the tables.
func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()

	var (
		db  *sqlx.DB
		err error
	)
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", postgresDSN)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(db.DB))
	_, err = db.Exec(`TRUNCATE pets, users`)
	require.NoError(t, err)

	return db
}

func setupRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	require.NoError(t, client.FlushAll(context.Background()).Err())
	t.Cleanup(func() { _ = client.Close() })

	return client
}
