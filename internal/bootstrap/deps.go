// Package bootstrap wires configuration into concrete adapters and hands
// back a ready-to-run API app or worker.
package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver registered for database/sql, used by sqlx
	"github.com/jmoiron/sqlx"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"ticketassign/adapter/in/ingest"
	"ticketassign/adapter/out/cache"
	"ticketassign/adapter/out/messaging"
	"ticketassign/adapter/out/notify"
	"ticketassign/adapter/out/persistence"
	"ticketassign/adapter/out/similarity"
	"ticketassign/config"
	"ticketassign/core/port/out"
	"ticketassign/core/service/assignment"
	"ticketassign/infra/database"
	pkgcache "ticketassign/pkg/cache"
	"ticketassign/pkg/logger"
	"ticketassign/pkg/metrics"
	"ticketassign/pkg/snowflake"
)

// Dependencies holds every constructed collaborator shared between the API
// and worker run modes.
type Dependencies struct {
	Config *config.Config

	DB      *pgxpool.Pool
	SQLDB   *sqlx.DB
	Redis   *redis.Client
	MongoDB *mongo.Client
	Neo4j   neo4j.DriverWithContext

	SnapshotStore      out.SnapshotStore
	DecisionRepository out.DecisionRepository
	Notifier           out.Notifier
	SimilarityFinder   out.SimilarTicketFinder

	AssignmentEngine *assignment.Engine
	AuditStore       *ingest.AuditStore
	Producer         *messaging.RedisProducer
}

// NewDependencies connects to every backing store and constructs the
// adapters that implement the core's ports. Returns a cleanup func that
// closes every connection it opened, safe to call even on partial failure.
func NewDependencies(cfg *config.Config) (*Dependencies, func(), error) {
	deps := &Dependencies{Config: cfg}
	var closers []func()
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.DatabaseURL == "" {
		cleanup()
		return nil, nil, fmt.Errorf("DATABASE_URL is required")
	}

	db, err := database.NewPostgres(cfg.DatabaseURL)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("connect postgres: %w", err)
	}
	deps.DB = db
	closers = append(closers, db.Close)

	sqlxURL := cfg.DatabaseURL
	if strings.Contains(sqlxURL, "?") {
		sqlxURL += "&default_query_exec_mode=simple_protocol"
	} else {
		sqlxURL += "?default_query_exec_mode=simple_protocol"
	}
	sqlDB, err := sqlx.Connect("pgx", sqlxURL)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("connect sqlx: %w", err)
	}
	deps.SQLDB = sqlDB
	closers = append(closers, func() { _ = sqlDB.Close() })
	metrics.RegisterPool("postgres", sqlDB.DB)

	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedis(cfg.RedisURL)
		if err != nil {
			logger.WithError(err).Warn("Redis connection failed, caching and streaming disabled")
		} else {
			deps.Redis = redisClient
			closers = append(closers, func() { _ = redisClient.Close() })
		}
	}

	if cfg.MongoDBURL != "" {
		mongoClient, err := database.NewMongo(cfg.MongoDBURL)
		if err != nil {
			logger.WithError(err).Warn("MongoDB connection failed, webhook audit trail disabled")
		} else {
			deps.MongoDB = mongoClient
			closers = append(closers, func() { _ = mongoClient.Disconnect(context.Background()) })
		}
	}

	if cfg.Neo4jURL != "" {
		driver, err := neo4j.NewDriverWithContext(cfg.Neo4jURL, neo4j.BasicAuth(cfg.Neo4jUsername, cfg.Neo4jPassword, ""))
		if err != nil {
			logger.WithError(err).Warn("Neo4j driver init failed, similarity lookups disabled")
		} else if err := driver.VerifyConnectivity(context.Background()); err != nil {
			logger.WithError(err).Warn("Neo4j connectivity check failed, similarity lookups disabled")
		} else {
			deps.Neo4j = driver
			closers = append(closers, func() { _ = driver.Close(context.Background()) })
		}
	}

	snowflakeGen, err := snowflake.NewGenerator(cfg.SnowflakeWorkerID)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("init snowflake generator: %w", err)
	}

	rawStore := persistence.NewSnapshotStore(deps.SQLDB)
	if deps.Redis != nil {
		redisCache := pkgcache.NewRedisCache(deps.Redis)
		deps.SnapshotStore = cache.NewCachedSnapshotStore(
			rawStore, redisCache,
			time.Duration(cfg.CacheHolidayTTLMin)*time.Minute, time.Duration(cfg.CacheMemberTTLMin)*time.Minute,
		)
	} else {
		deps.SnapshotStore = rawStore
	}

	deps.DecisionRepository = persistence.NewAssignmentRepository(deps.SQLDB, snowflakeGen)
	deps.AssignmentEngine = assignment.NewEngine(deps.SnapshotStore)

	if deps.MongoDB != nil {
		deps.AuditStore = ingest.NewAuditStore(deps.MongoDB, cfg.MongoDBName)
		if err := deps.AuditStore.EnsureIndexes(context.Background()); err != nil {
			logger.WithError(err).Warn("failed to ensure audit store indexes")
		}
	}

	if deps.Redis != nil {
		deps.Producer = messaging.NewRedisProducer(deps.Redis)
		deps.Notifier = notify.NewService(deps.Producer)
	}

	if deps.Neo4j != nil && cfg.OpenAIAPIKey != "" {
		finder := similarity.NewFinder(cfg.OpenAIAPIKey, cfg.EmbeddingModel, deps.Neo4j, "")
		if err := finder.EnsureIndex(context.Background()); err != nil {
			logger.WithError(err).Warn("failed to ensure vector index")
		}
		deps.SimilarityFinder = finder
	}

	return deps, cleanup, nil
}
