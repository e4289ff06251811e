package frontend

import (
	"bytes"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	humanize "github.com/dustin/go-humanize"
)

// LogContext holds information about an HTTP request/response transaction used
// for logging.
type LogContext struct {
	Logger     *log.Logger
	Request    *http.Request
	StatusCode int
	Duration   time.Duration
	BytesOut   int64
	RequestID  string

	buffer bytes.Buffer
}

// Log writes a log entry for the context to the logger.
//
// The log format consists of the following space separated fields:
//
// - remote address
// - host
// - request information (method, URI and protocol)
// - http status code
// - total time
// - bytes outbound
// - request ID
// - message (optional)
//
// All fields are always present, except for the message which is optional. If a
// field value is unknown or not applicable, a hyphen is used in place. If a
// field value contains spaces or other special characters it is rendered as a
// double-quoted Go string.
func (ctx *LogContext) Log(err error) {
	if ctx.Logger == nil || ctx.isMuted() {
		return
	}

	ctx.write(ctx.Request.RemoteAddr)
	ctx.write(ctx.Request.Host)
	ctx.write(
		"%s %s %s",
		ctx.Request.Method,
		ctx.Request.URL.RequestURI(),
		ctx.Request.Proto,
	)

	if ctx.StatusCode == 0 {
		ctx.write("")
	} else {
		ctx.write("%d", ctx.StatusCode)
	}

	ctx.write(
		"t/%sms",
		humanize.FormatFloat("#,###.##", float64(ctx.Duration)/float64(time.Millisecond)),
	)

	ctx.write(
		"o/%s",
		humanize.FormatFloat("#,###.", float64(ctx.BytesOut)),
	)

	ctx.write(ctx.RequestID)

	if err != nil {
		ctx.write(err.Error())
	}

	ctx.Logger.Println(ctx.buffer.String())
	ctx.buffer.Reset()
}

// write is a helper function that writes to a string to a buffer, quoting the
// string if it contains whitespace or special characters.
func (ctx *LogContext) write(str string, v ...interface{}) {
	if ctx.buffer.Len() != 0 {
		ctx.buffer.WriteRune(' ')
	}

	if len(v) != 0 {
		str = fmt.Sprintf(str, v...)
	}

	if str == "" {
		ctx.buffer.WriteRune('-')
		return
	}

	if strings.ContainsAny(str, " \a\b\f\n\r\t\v\"") {
		ctx.buffer.WriteString(strconv.Quote(str))
	} else {
		ctx.buffer.WriteString(str)
	}
}

func (ctx *LogContext) isMuted() bool {
	if ctx.Request.URL.Path != "/favicon.ico" {
		return false
	}

	return 200 <= ctx.StatusCode && ctx.StatusCode < 500
}
