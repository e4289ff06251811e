package frontend_test

import (
	"net/http"

	"github.com/icecave/appstatus/frontend"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("ResponseWriter", func() {
	var inner *fakeResponseWriter
	var subject *frontend.ResponseWriter

	BeforeEach(func() {
		inner = &fakeResponseWriter{
			header: http.Header{"X-Header": []string{"<value>"}},
		}
		subject = &frontend.ResponseWriter{Inner: inner}
	})

	Describe("Header", func() {
		It("returns the headers from the inner writer", func() {
			Expect(subject.Header()).To(Equal(inner.header))
		})
	})

	Describe("Write", func() {
		It("increments the byte counter", func() {
			subject.Write([]byte("<buffer>"))
			subject.Write([]byte("<buffer>"))
			Expect(subject.Size).To(Equal(16))
		})

		It("writes the buffer to the inner writer", func() {
			buffer := []byte("<buffer>")
			subject.Write(buffer)
			Expect(inner.buffer).To(Equal(buffer))
		})

		It("returns the result of the inner writer", func() {
			Expect(subject.Write([]byte("<buffer>"))).To(Equal(8))
		})

		It("writes the headers if they haven't yet been written", func() {
			subject.Write([]byte("<buffer>"))
			Expect(inner.statusCode).To(Equal(http.StatusOK))
			Expect(subject.StatusCode).To(Equal(http.StatusOK))
		})

		It("does not write the headers if they've already been written", func() {
			subject.WriteHeader(http.StatusNotFound)
			subject.Write([]byte("<buffer>"))
			Expect(inner.statusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("WriteHeader", func() {
		It("writes the headers on the inner writer", func() {
			subject.WriteHeader(http.StatusNotFound)
			Expect(inner.statusCode).To(Equal(http.StatusNotFound))
		})

		It("ignores subsequent calls", func() {
			subject.WriteHeader(http.StatusNotFound)
			subject.WriteHeader(http.StatusInternalServerError)
			Expect(inner.statusCode).To(Equal(http.StatusNotFound))
			Expect(inner.headerWrites).To(Equal(1))
			Expect(subject.StatusCode).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Flush", func() {
		It("flushes the inner writer if it implements http.Flusher", func() {
			flusher := fakeFlusher{}
			subject.Inner = &flusher
			subject.Flush()
			Expect(flusher.flushed).To(BeTrue())
		})

		It("does nothing if the inner writer does not implement http.Flusher", func() {
			subject.Flush()
		})
	})
})

type fakeResponseWriter struct {
	header       http.Header
	buffer       []byte
	statusCode   int
	headerWrites int
}

func (writer *fakeResponseWriter) Header() http.Header {
	if writer.header == nil {
		writer.header = http.Header{}
	}

	return writer.header
}

func (writer *fakeResponseWriter) Write(data []byte) (int, error) {
	writer.buffer = append(writer.buffer, data...)

	return len(data), nil
}

func (writer *fakeResponseWriter) WriteHeader(statusCode int) {
	writer.statusCode = statusCode
	writer.headerWrites++
}

type fakeFlusher struct {
	fakeResponseWriter
	flushed bool
}

func (flusher *fakeFlusher) Flush() {
	flusher.flushed = true
}
