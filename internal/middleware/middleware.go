package middleware

import (
	"net/http"
	"time"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog/log"
)

type ErrorResponse struct {
	Error string `json:"error" description:"Error message"`
	Code  int    `json:"code" description:"HTTP status code"`
}

func HandleError(resp *restful.Response, err error, code int) {
	errorResponse := ErrorResponse{
		Error: err.Error(),
		Code:  code,
	}

	if writeErr := resp.WriteHeaderAndEntity(code, errorResponse); writeErr != nil {
		log.Error().Err(writeErr).Msg("Failed to write error response")
	}
}

// Logger logs every request with method, path, status and duration.
func Logger(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	start := time.Now()

	chain.ProcessFilter(req, resp)

	log.Info().
		Str("method", req.Request.Method).
		Str("path", req.Request.URL.Path).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Request handled")
}

// RecoverPanic converts handler panics into a 500 response.
func RecoverPanic(req *restful.Request, resp *restful.Response, chain *restful.FilterChain) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("path", req.Request.URL.Path).
				Msg("Handler panicked")
			HandleError(resp, ErrInternal, http.StatusInternalServerError)
		}
	}()

	chain.ProcessFilter(req, resp)
}
