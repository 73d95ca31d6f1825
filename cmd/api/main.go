package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	restful "github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/complykit/sox-rag-agent/internal/bedrock"
	"github.com/complykit/sox-rag-agent/internal/classify"
	"github.com/complykit/sox-rag-agent/internal/database"
	"github.com/complykit/sox-rag-agent/internal/embedding"
	"github.com/complykit/sox-rag-agent/internal/generation"
	"github.com/complykit/sox-rag-agent/internal/ingestion"
	"github.com/complykit/sox-rag-agent/internal/middleware"
	"github.com/complykit/sox-rag-agent/internal/nlp/claudezs"
	"github.com/complykit/sox-rag-agent/internal/nlp/httpnlp"
	"github.com/complykit/sox-rag-agent/internal/query"
	"github.com/complykit/sox-rag-agent/internal/retrieval"
	"github.com/complykit/sox-rag-agent/internal/search"
)

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "SOX Compliance RAG API",
			Description: "API for SOX compliance document processing and querying",
			Version:     "1.0.0",
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "health", Description: "Health checks"}},
		{TagProps: spec.TagProps{Name: "query", Description: "Query operations"}},
		{TagProps: spec.TagProps{Name: "documents", Description: "Document ingestion and statistics"}},
	}
}

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	log.Info().Msg("Starting SOX Compliance RAG API Server")

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	region := os.Getenv("AWS_REGION")
	modelID := os.Getenv("CLAUDE_MODEL_ID")
	miniModelID := os.Getenv("CLAUDE_MINI_MODEL_ID")

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8000"
	}

	nlpBaseURL := os.Getenv("NLP_SERVICE_URL")
	if nlpBaseURL == "" {
		nlpBaseURL = "http://localhost:8090"
	}
	nlpTimeout, err := strconv.Atoi(os.Getenv("NLP_SERVICE_TIMEOUT"))
	if err != nil || nlpTimeout <= 0 {
		nlpTimeout = 10
	}

	ctx := context.Background()

	// Connect to the vector store
	dbConfig := database.Config{
		Host:     os.Getenv("SOX_RAG_VECTOR_DB_HOST"),
		Port:     os.Getenv("SOX_RAG_VECTOR_DB_PORT"),
		User:     os.Getenv("SOX_RAG_VECTOR_DB_USER"),
		Password: os.Getenv("SOX_RAG_VECTOR_DB_PASSWORD"),
		Database: os.Getenv("SOX_RAG_VECTOR_DB_DATABASE"),
		SSLMode:  os.Getenv("SOX_RAG_VECTOR_DB_SSLMODE"),
	}

	db, err := database.NewWithBackoff(ctx, dbConfig, 5)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	log.Info().Msg("Database connected")

	// Bedrock clients: full model for generation, mini model for zero-shot
	bedrockClient, err := bedrock.NewClient(ctx, region, modelID)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to initialize Bedrock client")
	}
	miniClient, err := bedrock.NewClient(ctx, region, miniModelID)
	if err != nil {
		log.Fatal().Err(err).Msg("Unable to initialize mini Bedrock client")
	}

	log.Info().
		Str("region", region).
		Str("model", modelID).
		Msg("Bedrock clients initialized")

	// Wire the query pipeline
	nlpClient := httpnlp.NewClient(httpnlp.Config{
		BaseURL:             nlpBaseURL,
		Timeout:             time.Duration(nlpTimeout) * time.Second,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
	})
	zeroShot := claudezs.NewClassifier(miniClient)
	classifier := classify.NewClassifier(nlpClient, zeroShot)

	embedder := embedding.NewBedrockEmbedder(bedrockClient.Client)
	searchService := search.NewService(db, embedder)
	planner := retrieval.NewPlanner(searchService)

	generator := generation.NewClaudeGenerator(bedrockClient, 2048, 0.7)

	queryService := query.NewService(classifier, planner, generator)
	queryHandler := query.NewHandler(queryService)

	// Wire the ingestion surface
	parser := ingestion.NewParser()
	chunker := ingestion.NewChunker(1000, 200)
	pipeline := ingestion.NewPipeline(parser, chunker, embedder, db.Pool)
	ingestionHandler := ingestion.NewHandler(pipeline, db)

	container := restful.NewContainer()

	// Add filters
	container.Filter(middleware.Logger)
	container.Filter(middleware.RecoverPanic)

	// Register APIs
	query.RegisterRoutes(container, queryHandler)
	ingestion.RegisterRoutes(container, ingestionHandler)

	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       "/api/v1/openapi.json",
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))

	// Setup CORS
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("address", addr).Msg("Starting server")

	server := http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(container),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}
