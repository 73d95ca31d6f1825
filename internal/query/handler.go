package query

import (
	"net/http"

	"github.com/complykit/sox-rag-agent/internal/middleware"
	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// Query handles POST /api/v1/query
func (h *Handler) Query(req *restful.Request, resp *restful.Response) {
	var queryRequest QueryRequest

	if err := req.ReadEntity(&queryRequest); err != nil {
		log.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	if err := queryRequest.Validate(); err != nil {
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	log.Info().
		Str("query", queryRequest.Query).
		Bool("include_analysis", queryRequest.IncludeAnalysis).
		Msg("Process query")

	ctx := req.Request.Context()

	queryResponse, err := h.service.ProcessQuery(ctx, queryRequest.Query)
	if err != nil {
		log.Error().Err(err).Msg("Failed to process query")
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	if !queryRequest.IncludeAnalysis {
		queryResponse.QueryAnalysis = nil
	}

	resp.WriteHeaderAndEntity(http.StatusOK, queryResponse)
}

// Health handles GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}
