// Package statusapi serves the monitored key list and simulated status reports
// over HTTP as JSON.
package statusapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/icecave/appstatus/publish"
	"github.com/icecave/appstatus/registry"
	"github.com/icecave/appstatus/statuspage"
)

const (
	// KeysPath is the path of the monitored key list.
	KeysPath = "/status/keys"

	// DetailsPath is the path of the status report.
	DetailsPath = "/status/details"

	// RequestIDHeader is the header used to correlate a request with log
	// entries and published reports.
	RequestIDHeader = "X-Request-Id"
)

// publishTimeout is the time allowed for a report to be published after it
// has been served.
const publishTimeout = 5 * time.Second

// Handler is an http.Handler that serves the status API.
type Handler struct {
	Registry   *registry.Registry
	Publisher  publish.Publisher
	StatusPage statuspage.Writer
	Logger     *log.Logger

	once   sync.Once
	router *mux.Router
}

func (h *Handler) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	h.once.Do(h.init)

	writer.Header().Set(RequestIDHeader, requestID(request))
	h.router.ServeHTTP(writer, request)
}

func (h *Handler) init() {
	if h.StatusPage == nil {
		h.StatusPage = statuspage.DefaultWriter
	}

	h.router = mux.NewRouter()
	h.router.
		HandleFunc(KeysPath, h.serveKeys).
		Methods(http.MethodGet, http.MethodHead)
	h.router.
		HandleFunc(DetailsPath, h.serveDetails).
		Methods(http.MethodGet, http.MethodHead)

	h.router.NotFoundHandler = http.HandlerFunc(h.serveNotFound)
	h.router.MethodNotAllowedHandler = http.HandlerFunc(h.serveMethodNotAllowed)
}

func (h *Handler) serveKeys(writer http.ResponseWriter, request *http.Request) {
	h.writeJSON(writer, request, h.Registry.ListKeys())
}

func (h *Handler) serveDetails(writer http.ResponseWriter, request *http.Request) {
	report := h.Registry.GetStatusReport()

	if !h.writeJSON(writer, request, report) {
		return
	}

	if request.Method == http.MethodGet && h.Publisher != nil {
		go h.publish(writer.Header().Get(RequestIDHeader), report)
	}
}

func (h *Handler) serveNotFound(writer http.ResponseWriter, request *http.Request) {
	h.StatusPage.Write(writer, request, http.StatusNotFound)
}

func (h *Handler) serveMethodNotAllowed(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Allow", "GET, HEAD")
	h.StatusPage.Write(writer, request, http.StatusMethodNotAllowed)
}

// writeJSON writes v to writer as a JSON response. It returns false if v
// could not be encoded.
func (h *Handler) writeJSON(
	writer http.ResponseWriter,
	request *http.Request,
	v interface{},
) bool {
	data, err := json.Marshal(v)
	if err != nil {
		h.logf("Unable to encode response for %s: %s", request.URL.Path, err)
		h.StatusPage.WriteError(writer, request, statuspage.Error{
			Inner:      err,
			StatusCode: http.StatusInternalServerError,
		})
		return false
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.Header().Set("Cache-Control", "no-store")
	writer.WriteHeader(http.StatusOK)
	writer.Write(data)

	return true
}

func (h *Handler) publish(id string, report registry.StatusReport) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := h.Publisher.Publish(ctx, report); err != nil {
		h.logf("Unable to publish status report %s: %s", id, err)
	}
}

func (h *Handler) logf(format string, v ...interface{}) {
	if h.Logger != nil {
		h.Logger.Printf(format, v...)
	}
}

// requestID returns the request ID supplied by the client, if it is a valid
// UUID, otherwise it generates a new one.
func requestID(request *http.Request) string {
	if id, err := uuid.Parse(request.Header.Get(RequestIDHeader)); err == nil {
		return id.String()
	}

	return uuid.NewString()
}
