package frontend

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/icecave/appstatus/statuspage"
)

// Handler provides the main http.Handler implementation. It dispatches
// health-check requests to HealthCheck and everything else to API, logging
// each request.
type Handler struct {
	API              http.Handler
	HealthCheck      ConditionalHandler
	StatusPageWriter statuspage.Writer
	Logger           *log.Logger
}

func (handler *Handler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	ctx := &LogContext{
		Logger:  handler.Logger,
		Request: request,
	}
	wrapped := &ResponseWriter{Inner: writer}
	start := time.Now()

	defer func() {
		var err error
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			if wrapped.StatusCode == 0 {
				handler.statusPageWriter().Write(wrapped, request, http.StatusInternalServerError)
			}
		}

		ctx.StatusCode = wrapped.StatusCode
		ctx.BytesOut = int64(wrapped.Size)
		ctx.Duration = time.Since(start)
		ctx.RequestID = wrapped.Header().Get("X-Request-Id")
		ctx.Log(err)
	}()

	if handler.HealthCheck != nil && handler.HealthCheck.CanHandle(request) {
		handler.HealthCheck.ServeHTTP(wrapped, request)
	} else {
		handler.API.ServeHTTP(wrapped, request)
	}
}

func (handler *Handler) statusPageWriter() statuspage.Writer {
	if handler.StatusPageWriter != nil {
		return handler.StatusPageWriter
	}

	return statuspage.DefaultWriter
}
