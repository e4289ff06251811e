package statuspage

import (
	"bytes"
	"errors"
	htmlTemplate "html/template"
	"net/http"
	textTemplate "text/template"

	"github.com/golang/gddo/httputil/header"
)

// TemplateWriter writes status pages in HTML or plain-text format using a
// template.
type TemplateWriter struct {
	HTMLTemplate *htmlTemplate.Template
	TextTemplate *textTemplate.Template
}

// TemplateContext holds the data needed to render a status page.
type TemplateContext struct {
	Code    int
	Text    string
	Message string
}

// Write outputs a status page for statusCode to writer, in response to request.
func (wr *TemplateWriter) Write(
	writer http.ResponseWriter,
	request *http.Request,
	statusCode int,
) (bodySize int64, err error) {
	return wr.WriteMessage(
		writer,
		request,
		statusCode,
		StatusMessage(statusCode),
	)
}

// WriteMessage outputs an HTTP status page for statusCode to writer, in
// response to request, including a custom message.
func (wr *TemplateWriter) WriteMessage(
	writer http.ResponseWriter,
	request *http.Request,
	statusCode int,
	message string,
) (int64, error) {
	var buf bytes.Buffer
	var contentType string
	context := TemplateContext{
		statusCode,
		http.StatusText(statusCode),
		message,
	}

	if useHTML(request) {
		tmpl := wr.HTMLTemplate
		if tmpl == nil {
			tmpl = defaultHTMLTemplate
		}

		if err := tmpl.Execute(&buf, context); err == nil {
			contentType = "text/html"
		}
	}

	if contentType == "" {
		tmpl := wr.TextTemplate
		if tmpl == nil {
			tmpl = defaultTextTemplate
		}
		contentType = "text/plain"
		buf.Reset()
		tmpl.Execute(&buf, context)
	}

	writer.Header().Set("Content-Type", contentType+"; charset=utf-8")
	writer.Header().Set("Cache-Control", "no-store")
	writer.WriteHeader(statusCode)
	return buf.WriteTo(writer)
}

// WriteError outputs an appropriate HTTP status page for the given error to
// writer, in response to request.
func (wr *TemplateWriter) WriteError(
	writer http.ResponseWriter,
	request *http.Request,
	statusErr error,
) (statusCode int, bodySize int64, err error) {
	var e Error
	if errors.As(statusErr, &e) {
		statusCode = e.StatusCode
		if e.Message != "" {
			bodySize, err = wr.WriteMessage(
				writer,
				request,
				statusCode,
				e.Message,
			)
			return
		}
	} else {
		statusCode = http.StatusInternalServerError
	}

	bodySize, err = wr.Write(writer, request, statusCode)
	return
}

var defaultHTMLTemplate = htmlTemplate.Must(
	htmlTemplate.New("status-page").Parse(htmlTemplateSource),
)

var defaultTextTemplate = textTemplate.Must(
	textTemplate.New("status-page").Parse(textTemplateSource),
)

func useHTML(request *http.Request) bool {
	htmlQ := -1.0
	textQ := 0.0

	for _, accept := range header.ParseAccept(request.Header, "Accept") {
		if accept.Value == "text/html" || accept.Value == "application/xhtml+xml" {
			if accept.Q > htmlQ {
				htmlQ = accept.Q
			}
		} else if accept.Value == "text/plain" || accept.Value == "*/*" {
			if accept.Q > textQ {
				textQ = accept.Q
			}
		}
	}

	return htmlQ > textQ
}
