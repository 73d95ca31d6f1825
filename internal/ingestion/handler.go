package ingestion

import (
	"fmt"
	"io"
	"net/http"

	"github.com/complykit/sox-rag-agent/internal/database"
	"github.com/complykit/sox-rag-agent/internal/middleware"
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

const maxUploadBytes = 32 << 20

type UploadResponse struct {
	Message         string               `json:"message" description:"Upload outcome summary"`
	ProcessedChunks int                  `json:"processed_chunks" description:"Number of chunks indexed"`
	Statistics      *database.Statistics `json:"statistics" description:"Corpus statistics after upload"`
}

type Handler struct {
	pipeline *Pipeline
	db       *database.DB
}

func NewHandler(pipeline *Pipeline, db *database.DB) *Handler {
	return &Handler{
		pipeline: pipeline,
		db:       db,
	}
}

// Upload handles POST /api/v1/documents/upload (multipart form, field "files")
func (h *Handler) Upload(req *restful.Request, resp *restful.Response) {
	if err := req.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		log.Error().Err(err).Msg("Failed to parse multipart form")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	files := req.Request.MultipartForm.File["files"]
	if len(files) == 0 {
		middleware.HandleError(resp, fmt.Errorf("no files provided"), http.StatusBadRequest)
		return
	}

	ctx := req.Request.Context()
	totalChunks := 0

	for _, header := range files {
		file, err := header.Open()
		if err != nil {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}

		content, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}

		chunks, err := h.pipeline.IngestContent(ctx, content, header.Filename)
		if err != nil {
			log.Error().Err(err).Str("file", header.Filename).Msg("Ingestion failed")
			middleware.HandleError(resp, err, http.StatusInternalServerError)
			return
		}
		totalChunks += chunks
	}

	stats, err := h.db.GetStatistics(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load statistics")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	uploadResponse := UploadResponse{
		Message:         fmt.Sprintf("Successfully processed %d documents", len(files)),
		ProcessedChunks: totalChunks,
		Statistics:      stats,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, uploadResponse)
}

// Statistics handles GET /api/v1/statistics
func (h *Handler) Statistics(req *restful.Request, resp *restful.Response) {
	stats, err := h.db.GetStatistics(req.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to load statistics")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, stats)
}
