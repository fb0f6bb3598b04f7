//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"service-marketplace/cmd/bootstrap"
	"service-marketplace/cmd/bootstrap/components"
	"service-marketplace/internal/infra/db"
	"service-marketplace/internal/pkg/config"
	"service-marketplace/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "test"
	pgPassword = "testpass"
)

// endpoint is a host:port pair published by a container.
type endpoint struct {
	Host string
	Port nat.Port
}

func (e endpoint) Addr() string { return e.Host + ":" + e.Port.Port() }

// containers are shared by every suite in the test process.
var containers struct {
	once     sync.Once
	err      error
	postgres endpoint
	redis    endpoint
}

func sharedContainers(t *testing.T) (postgres, redis endpoint) {
	t.Helper()
	containers.once.Do(func() {
		containers.postgres, containers.err = startPostgres()
		if containers.err != nil {
			return
		}
		containers.redis, containers.err = startRedis()
	})
	require.NoError(t, containers.err, "コンテナの起動に失敗")
	return containers.postgres, containers.redis
}

func startPostgres() (endpoint, error) {
	return start(testcontainers.ContainerRequest{
		Image:        "postgres:17",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     pgUser,
			"POSTGRES_PASSWORD": pgPassword,
			"POSTGRES_DB":       "postgres",
		},
		// data on tmpfs with durability off
		Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
		Cmd: []string{
			"postgres",
			"-c", "fsync=off",
			"-c", "full_page_writes=off",
			"-c", "synchronous_commit=off",
			"-c", "max_connections=200",
			"-c", "log_statement=none",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "pgx", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable", pgUser, pgPassword, host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
		Labels: map[string]string{"purpose": "marketplace-e2e"},
	}, "5432/tcp")
}

func startRedis() (endpoint, error) {
	return start(testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
		Labels:       map[string]string{"purpose": "marketplace-e2e"},
	}, "6379/tcp")
}

// start runs a container and resolves its mapped port. Ryuk removes it when
// the test process exits.
func start(req testcontainers.ContainerRequest, port nat.Port) (endpoint, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return endpoint{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return endpoint{}, err
	}
	mapped, err := c.MappedPort(ctx, port)
	if err != nil {
		return endpoint{}, err
	}
	return endpoint{Host: host, Port: mapped}, nil
}

// createDatabase gives the calling suite its own database inside the shared
// container and drops it on cleanup.
func createDatabase(t *testing.T, pg endpoint) config.DBConfig {
	t.Helper()

	name := "e2e_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := fmt.Sprintf("postgres://%s:%s@%s/postgres?sslmode=disable", pgUser, pgPassword, pg.Addr())

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "管理者接続に失敗")
	defer admin.Close()

	// CREATE DATABASE races on the template lock when suites start together
	for attempt := range 5 {
		if _, err = admin.Exec(ctx, "CREATE DATABASE "+name); err == nil {
			break
		}
		slog.Warn("データベース作成を再試行中", "attempt", attempt+1, "error", err.Error())
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, err, "テスト用データベースの作成に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, adminDSN)
		if err != nil {
			slog.Warn("クリーンアップ用の接続に失敗", "database", name, "error", err.Error())
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("テスト用データベースの削除に失敗", "database", name, "error", err.Error())
		}
	})

	return config.DBConfig{
		Host:     pg.Host,
		Port:     pg.Port.Port(),
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "UTC",
		MaxConns: 20,
	}
}

// applyMigrations runs every migrations/*.sql file in name order, locating the
// directory relative to the package under test.
func applyMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	var files []string
	for _, dir := range []string{"migrations", "../migrations", "../../migrations", "../../../migrations"} {
		if found, _ := filepath.Glob(filepath.Join(dir, "*.sql")); len(found) > 0 {
			files = found
			break
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found")
	}
	sort.Strings(files)

	for _, file := range files {
		sqlContent, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(sqlContent)); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", file, err)
		}
	}
	return nil
}

func testConfig(dbCfg config.DBConfig, redis endpoint) config.Config {
	cfg := config.NewTestConfig()
	cfg.DB = dbCfg
	cfg.Redis.Addr = redis.Addr()
	return cfg
}

// buildApp wires the production fx graph against the test pool and config.
// The notifier stays in-app only since AMQP_URL is empty.
func buildApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(func() *pgxpool.Pool { return pool }),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.SchedulingModule,
		bootstrap.RedisModule,
		bootstrap.MetricsModule,
		bootstrap.PaymentModule,
		components.PersistenceModule,
		bootstrap.NotifierModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Invoke(bootstrap.RegisterPoolMetrics),
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "fxアプリケーションの起動に失敗")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("fxアプリケーションの停止に失敗", "error", err.Error())
		}
	})
	return router
}

// SharedSuite gives each e2e suite its own database and a fully wired router.
// Every subtest starts from truncated tables plus reference data.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg, redis := sharedContainers(t)
	dbCfg := createDatabase(t, pg)

	pool, cleanup, err := db.Connect(dbCfg)
	require.NoError(t, err, "データベース接続に失敗")
	t.Cleanup(cleanup)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, applyMigrations(ctx, pool), "マイグレーションに失敗")
	require.NoError(t, dbtest.SeedReferenceData(pool), "参照データの投入に失敗")

	s.DB = pool
	s.Config = testConfig(dbCfg, redis)
	s.Router = buildApp(t, pool, s.Config)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "データベースの初期化に失敗")
}
