package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// generateWorkerID creates a unique worker ID using hostname and PID
func generateWorkerID() string {
	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "worker"
	}
	return fmt.Sprintf("%s-%d", hostname, os.Getpid())
}

type Config struct {
	Port        string
	Environment string

	// Database
	DatabaseURL string
	MongoDBURL  string
	MongoDBName string
	RedisURL    string

	// Neo4j (similarity collaborator)
	Neo4jURL      string
	Neo4jUsername string
	Neo4jPassword string

	// JWT
	JWTSecret string

	// OpenAI (embedding generation for similarity collaborator)
	OpenAIAPIKey   string
	EmbeddingModel string
	LLMTimeoutSec  int
	LLMMaxRetries  int

	// ServiceNow webhook ingestion
	ServiceNowWebhookSecret string
	IngestStreamName        string

	// Worker pool (fan-out of concurrent AssignTicket calls)
	WorkerID            string
	WorkerMin           int
	WorkerMax           int
	WorkerQueueSize     int
	WorkerScaleInterval time.Duration
	WorkerIdleTimeout   time.Duration

	// Consumer (Redis Stream)
	ConsumerGroup           string
	ConsumerBatchSize       int
	ConsumerBlockMS         int
	ConsumerMaxRetries      int
	ConsumerPendingCheckSec int
	ConsumerPendingIdleSec  int

	// Cache
	CacheHolidayTTLMin int
	CacheMemberTTLMin  int

	// Snowflake
	SnowflakeWorkerID int64
}

func Load() (*Config, error) {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),

		// Database
		DatabaseURL: getEnv("DATABASE_URL", ""),
		MongoDBURL:  getEnv("MONGODB_URL", ""),
		MongoDBName: getEnv("MONGODB_DATABASE", "ticketassign"),
		RedisURL:    getEnv("REDIS_URL", ""),

		// Neo4j
		Neo4jURL:      getEnv("NEO4J_URL", ""),
		Neo4jUsername: getEnv("NEO4J_USERNAME", "neo4j"),
		Neo4jPassword: getEnv("NEO4J_PASSWORD", ""),

		// JWT
		JWTSecret: getEnv("JWT_SECRET", ""),

		// OpenAI
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		EmbeddingModel: getEnv("EMBEDDING_MODEL", "text-embedding-3-small"),
		LLMTimeoutSec:  getEnvInt("LLM_TIMEOUT_SEC", 30),
		LLMMaxRetries:  getEnvInt("LLM_MAX_RETRIES", 3),

		// Ingestion
		ServiceNowWebhookSecret: getEnv("SERVICENOW_WEBHOOK_SECRET", ""),
		IngestStreamName:        getEnv("INGEST_STREAM_NAME", "tickets.created"),

		// Worker
		WorkerID:            getEnv("WORKER_ID", generateWorkerID()),
		WorkerMin:           getEnvInt("WORKER_MIN", 2),
		WorkerMax:           getEnvInt("WORKER_MAX", 50),
		WorkerQueueSize:     getEnvInt("WORKER_QUEUE_SIZE", 1000),
		WorkerScaleInterval: time.Duration(getEnvInt("WORKER_SCALE_INTERVAL_SEC", 10)) * time.Second,
		WorkerIdleTimeout:   time.Duration(getEnvInt("WORKER_IDLE_TIMEOUT_SEC", 30)) * time.Second,

		// Consumer
		ConsumerGroup:           getEnv("CONSUMER_GROUP", "assignment-workers"),
		ConsumerBatchSize:       getEnvInt("CONSUMER_BATCH_SIZE", 10),
		ConsumerBlockMS:         getEnvInt("CONSUMER_BLOCK_MS", 5000),
		ConsumerMaxRetries:      getEnvInt("CONSUMER_MAX_RETRIES", 3),
		ConsumerPendingCheckSec: getEnvInt("CONSUMER_PENDING_CHECK_SEC", 30),
		ConsumerPendingIdleSec:  getEnvInt("CONSUMER_PENDING_IDLE_SEC", 120),

		// Cache
		CacheHolidayTTLMin: getEnvInt("CACHE_HOLIDAY_TTL_MIN", 60),
		CacheMemberTTLMin:  getEnvInt("CACHE_MEMBER_TTL_MIN", 15),

		// Snowflake
		SnowflakeWorkerID: int64(getEnvInt("SNOWFLAKE_WORKER_ID", 1)),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
