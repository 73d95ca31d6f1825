package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/complykit/sox-rag-agent/internal/bedrock"
	"github.com/complykit/sox-rag-agent/internal/database"
	"github.com/complykit/sox-rag-agent/internal/embedding"
	"github.com/complykit/sox-rag-agent/internal/ingestion"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	insertDocCommand := flag.Bool("insert-doc", false, "Insert document command")
	filePath := flag.String("filePath", "resources/sox-controls.txt", "Relative path to the document")
	chunkSize := flag.Int("chunkSize", 1000, "Chunk size")
	chunkOverlap := flag.Int("chunkOverlap", 200, "Chunk overlap")

	deleteDocCommand := flag.Bool("delete-doc", false, "Delete existing document command")
	documentId := flag.String("doc-id", "", "Document id which needs to be deleted")

	getAllDocsCommand := flag.Bool("get-docs", false, "Get all documents command")
	statsCommand := flag.Bool("stats", false, "Show corpus statistics command")

	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("Unable to load env variables")
	}

	ctx := context.Background()

	config := database.Config{
		Host:     os.Getenv("SOX_RAG_VECTOR_DB_HOST"),
		Port:     os.Getenv("SOX_RAG_VECTOR_DB_PORT"),
		User:     os.Getenv("SOX_RAG_VECTOR_DB_USER"),
		Password: os.Getenv("SOX_RAG_VECTOR_DB_PASSWORD"),
		Database: os.Getenv("SOX_RAG_VECTOR_DB_DATABASE"),
		SSLMode:  os.Getenv("SOX_RAG_VECTOR_DB_SSLMODE"),
	}

	db, err := database.NewWithBackoff(ctx, config, 3)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	log.Info().Msg("Database connected")

	region := os.Getenv("AWS_REGION")

	bedrockClient, err := bedrock.NewClient(ctx, region, "")
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to create bedrock client")
	}

	parser := ingestion.NewParser()
	chunker := ingestion.NewChunker(*chunkSize, *chunkOverlap)
	embedder := embedding.NewBedrockEmbedder(bedrockClient.Client)
	pipeline := ingestion.NewPipeline(parser, chunker, embedder, db.Pool)

	switch {
	case *deleteDocCommand:
		if err := db.DeleteDocument(ctx, *documentId); err != nil {
			log.Fatal().Err(err).Msg("Failed to delete document")
		}
		log.Info().Msg("Document deleted successfully")

	case *getAllDocsCommand:
		documents, err := db.GetAllDocs(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Unable to fetch documents from DB")
		}
		for _, document := range documents {
			log.Info().Msg(document.Print())
		}

	case *statsCommand:
		stats, err := db.GetStatistics(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Unable to load statistics")
		}
		log.Info().
			Int("total_chunks", stats.TotalChunks).
			Interface("chunk_types", stats.ChunkTypes).
			Msg("Corpus statistics")

	case *insertDocCommand:
		chunks, err := pipeline.IngestFile(ctx, *filePath)
		if err != nil {
			log.Fatal().Err(err).Msg("Ingestion failed")
		}
		log.Info().Int("chunks", chunks).Msg("Ingestion successful")

	default:
		log.Fatal().Msg("Unsupported command")
	}
}
