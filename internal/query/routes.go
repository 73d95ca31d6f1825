package query

import (
	"github.com/complykit/sox-rag-agent/internal/answer"
	"github.com/complykit/sox-rag-agent/internal/middleware"
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/query").
			To(handler.Query).
			Doc("Query the compliance documents").
			Metadata(restfulspec.KeyOpenAPITags, []string{"query"}).
			Reads(QueryRequest{}).
			Writes(answer.QueryResponse{}).
			Returns(200, "OK", answer.QueryResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
