package statuspage

import "net/http"

// StatusMessage returns a short, human-readable description of the given HTTP
// status code.
func StatusMessage(statusCode int) string {
	switch statusCode {
	// 4xx
	case http.StatusBadRequest:
		return "Your client has sent a malformed request."
	case http.StatusNotFound:
		return "There is no status information at this address. Try /status/keys or /status/details."
	case http.StatusMethodNotAllowed:
		return "Status information is read-only, use a GET request."
	case http.StatusNotAcceptable:
		return "Status information is only available as JSON."
	case http.StatusRequestTimeout:
		return "Your client did not send a request in a timely manner."
	case http.StatusRequestURITooLong:
		return "Your client has sent a request with a URI that's too large to process."
	case http.StatusRequestHeaderFieldsTooLarge:
		return "Your client has sent a request header that is too large to process."

	// 5xx
	case http.StatusInternalServerError:
		return "The status report could not be produced."
	case http.StatusNotImplemented:
		return "The feature you've requested is not supported."
	case http.StatusServiceUnavailable:
		return "The status service is temporarily unavailable, please try again."
	case http.StatusHTTPVersionNotSupported:
		return "Your client's HTTP version is not supported."
	}

	if 400 <= statusCode && statusCode <= 599 {
		return "We're sorry, something went wrong!"
	}

	return "That's all we know."
}
