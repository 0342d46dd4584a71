package main

import (
	"flag"
	"log"
	"os"

	"log-replicator/application"
	"log-replicator/domain"
	"log-replicator/infrastructure/console"
	"log-replicator/infrastructure/fetch"
	"log-replicator/infrastructure/jsonfile"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using default or environment variables")
	}

	logPath := flag.String("log", getEnv("LOG_PATH", "NASA_access_log_Jul95"), "Path to the plain-text access log")
	outPath := flag.String("out", getEnv("ARCHIVE_PATH", "parsed_access_log.json"), "Path for the parsed record archive")
	doFetch := flag.Bool("fetch", false, "Download and decompress the source log if missing")
	flag.Parse()

	if *doFetch {
		fetcher := fetch.NewFetcher(
			getEnv("LOG_URL", "https://ita.ee.lbl.gov/traces/NASA_access_log_Jul95.gz"),
			*logPath+".gz",
			*logPath,
		)
		if err := fetcher.Ensure(); err != nil {
			log.Fatalf("Could not fetch the access log: %v", err)
		}
	}

	file, err := os.Open(*logPath)
	if err != nil {
		log.Fatalf("Could not open access log: %v", err)
	}
	defer file.Close()

	service := application.NewIngestService(domain.NewLineParser(), jsonfile.NewArchive(*outPath))

	log.Printf("Parsing access log: %s", *logPath)
	result, err := service.Run(file)
	if err != nil {
		log.Fatalf("An error occurred during ingestion: %v", err)
	}

	console.NewConsoleUI().RenderIngestReport(result)
	log.Printf("Records saved to %s", *outPath)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
