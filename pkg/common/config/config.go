package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	ServerPort     string
	ServerHost     string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	MaxRequestBody int64

	// Model artifacts
	ModelDir          string
	EnsembleModelFile string
	NeuralModelFile   string
	RuleThresholds    string

	// Prediction
	LatencyBudget time.Duration

	// Cache
	CacheEnabled bool
	CacheTTL     time.Duration

	// Assessment log
	AssessmentLogEnabled bool

	// Database
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// Kafka
	KafkaEnabled     bool
	KafkaBrokers     []string
	AssessmentsTopic string
}

func Load() *Config {
	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		ServerHost:     getEnv("SERVER_HOST", "0.0.0.0"),
		ReadTimeout:    getDuration("READ_TIMEOUT", 30*time.Second),
		WriteTimeout:   getDuration("WRITE_TIMEOUT", 30*time.Second),
		MaxRequestBody: int64(getIntEnv("MAX_REQUEST_BODY_BYTES", 1*1024*1024)),

		ModelDir:          getEnv("MODEL_DIR", "models"),
		EnsembleModelFile: getEnv("ENSEMBLE_MODEL_FILE", "ensemble_latest.json"),
		NeuralModelFile:   getEnv("NEURAL_MODEL_FILE", "neural_compact_latest.json"),
		RuleThresholds:    getEnv("RULE_THRESHOLDS_FILE", ""),

		LatencyBudget: getDuration("PREDICTION_LATENCY_BUDGET", 500*time.Millisecond),

		CacheEnabled: getBoolEnv("CACHE_ENABLED", false),
		CacheTTL:     getDuration("CACHE_TTL", 5*time.Minute),

		AssessmentLogEnabled: getBoolEnv("ASSESSMENT_LOG_ENABLED", false),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "vitalsense"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "vitalsense123"),
		PostgresDB:       getEnv("POSTGRES_DB", "vitalsense"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getIntEnv("REDIS_DB", 0),

		KafkaEnabled:     getBoolEnv("KAFKA_ENABLED", false),
		KafkaBrokers:     getStringSliceEnv("KAFKA_BROKERS", []string{"localhost:9092"}),
		AssessmentsTopic: getEnv("ASSESSMENTS_TOPIC", "health.assessments"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getStringSliceEnv(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
