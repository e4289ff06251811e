package frontend

import "net/http"

// ResponseWriter wraps an http.ResponseWriter, recording the status code and
// the number of body bytes written.
type ResponseWriter struct {
	Inner      http.ResponseWriter
	StatusCode int
	Size       int
}

// Header forwards to writer.Inner.Header()
func (writer *ResponseWriter) Header() http.Header {
	return writer.Inner.Header()
}

// Write forwards to writer.Inner.Write()
func (writer *ResponseWriter) Write(data []byte) (int, error) {
	if writer.StatusCode == 0 {
		writer.WriteHeader(http.StatusOK)
	}

	size, err := writer.Inner.Write(data)
	writer.Size += size

	return size, err
}

// WriteHeader forwards to writer.Inner.WriteHeader(). Only the first call has
// any effect.
func (writer *ResponseWriter) WriteHeader(statusCode int) {
	if writer.StatusCode != 0 {
		return
	}

	writer.StatusCode = statusCode
	writer.Inner.WriteHeader(statusCode)
}

// Flush forwards to writer.Inner.Flush() if it implements http.Flusher,
// otherwise it does nothing.
func (writer *ResponseWriter) Flush() {
	flusher, ok := writer.Inner.(http.Flusher)
	if ok {
		flusher.Flush()
	}
}
