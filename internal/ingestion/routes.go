package ingestion

import (
	"github.com/complykit/sox-rag-agent/internal/database"
	"github.com/complykit/sox-rag-agent/internal/middleware"
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Produces(restful.MIME_JSON)

	ws.
		Route(ws.POST("/documents/upload").
			To(handler.Upload).
			Doc("Upload compliance documents for indexing").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Consumes("multipart/form-data").
			Writes(UploadResponse{}).
			Returns(200, "OK", UploadResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/statistics").
			To(handler.Statistics).
			Doc("Corpus statistics").
			Metadata(restfulspec.KeyOpenAPITags, []string{"documents"}).
			Writes(database.Statistics{}).
			Returns(200, "OK", database.Statistics{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
