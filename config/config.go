package config

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
	DriverMemory   = "memory"
)

type Config struct {
	HTTPAddr       string
	AuditHTTPAddr  string
	AppName        string
	PublicBaseURL  string
	LogLevel       string
	AllowedOrigins []string
	DB             DBConfig
	Redis          RedisConfig
	Kafka          KafkaConfig
}

type DBConfig struct {
	Driver   string
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
}

// DSN is the key/value connection string understood by both lib/pq and pgx.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type RedisConfig struct {
	Host string
	Port string
	TTL  time.Duration
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool { return c.Host != "" }

func (c RedisConfig) Addr() string { return c.Host + ":" + c.Port }

type KafkaConfig struct {
	Broker string
	Topic  string
}

func (c KafkaConfig) Enabled() bool { return c.Broker != "" }

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	_ = godotenv.Load()

	httpAddr := getEnv("HTTP_ADDR", ":8081")
	return &Config{
		HTTPAddr:       httpAddr,
		AuditHTTPAddr:  getEnv("AUDIT_HTTP_ADDR", ":8083"),
		AppName:        getEnv("APP_NAME", "ifoodApp"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost"+httpAddr),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		DB: DBConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			Name:     getEnv("DB_NAME", "ifood"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host: os.Getenv("REDIS_HOST"),
			Port: getEnv("REDIS_PORT", "6379"),
			TTL:  getEnvDuration("CACHE_TTL", time.Hour),
		},
		Kafka: KafkaConfig{
			Broker: os.Getenv("KAFKA_BROKER"),
			Topic:  getEnv("KAFKA_TOPIC", "entity-events"),
		},
	}
}

func MustInitPostgres(cfg DBConfig) *sql.DB {
	driver := cfg.Driver
	if driver != DriverPgx {
		driver = DriverPostgres
	}

	db, err := sql.Open(driver, cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr(),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(cfg KafkaConfig, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.Broker},
		Topic:   cfg.Topic,
		GroupID: groupID,
	})
}

// Writes are synchronous, so a lone event would otherwise wait out kafka-go's
// one second default before its batch is flushed.
const writerBatchTimeout = 10 * time.Millisecond

func NewKafkaWriter(cfg KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Broker),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: writerBatchTimeout,
		RequiredAcks: kafka.RequireOne,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
