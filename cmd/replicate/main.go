package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"log-replicator/application"
	"log-replicator/domain"
	"log-replicator/infrastructure/console"
	"log-replicator/infrastructure/jsonfile"
	"log-replicator/infrastructure/memcache"
	"log-replicator/infrastructure/postgres"
	"log-replicator/infrastructure/redis"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using default or environment variables")
	}

	archivePath := flag.String("archive", getEnv("ARCHIVE_PATH", "parsed_access_log.json"), "Path to the parsed record archive")
	flag.Parse()

	ctx := context.Background()

	fieldStore := redis.NewFieldStore(
		getEnv("REDIS_ADDR", "localhost:6379"),
		getEnvInt("REDIS_DB", 0),
	)
	defer fieldStore.Close()

	flatRedis := redis.NewFlatStore(
		getEnv("REDIS_FLAT_ADDR", "localhost:6378"),
		getEnvInt("REDIS_FLAT_DB", 1),
	)
	defer flatRedis.Close()

	flatMemcache := memcache.NewFlatStore(getEnv("MEMCACHED_ADDR", "localhost:11211"))
	defer flatMemcache.Close()

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		getEnv("PG_USER", "postgres"),
		getEnv("PG_PASSWORD", ""),
		getEnv("PG_HOST", "localhost"),
		getEnv("PG_PORT", "5432"),
		getEnv("PG_DATABASE", "postgres"),
		getEnv("PG_SSLMODE", "disable"),
	)
	relStore, err := postgres.Open(dsn)
	if err != nil {
		log.Fatalf("Could not open postgres: %v", err)
	}
	defer relStore.Close()

	if err := fieldStore.Ping(ctx); err != nil {
		log.Fatalf("Could not connect to the redis hash store: %v", err)
	}
	if err := flatRedis.Ping(ctx); err != nil {
		log.Fatalf("Could not connect to the redis flat store: %v", err)
	}
	if err := flatMemcache.Ping(ctx); err != nil {
		log.Fatalf("Could not connect to memcached: %v", err)
	}
	if err := relStore.Ping(ctx); err != nil {
		log.Fatalf("Could not connect to postgres: %v", err)
	}

	service := application.NewReplicateService(
		fieldStore,
		[]domain.FlatStore{flatRedis, flatMemcache},
		relStore,
		jsonfile.NewArchive(*archivePath),
		console.NewConsoleUI(),
	)

	log.Printf("Replicating records from %s", *archivePath)
	if _, err := service.Run(ctx); err != nil {
		log.Fatalf("An error occurred during replication: %v", err)
	}

	log.Println("Records replicated to Redis, Memcached and Postgres.")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
