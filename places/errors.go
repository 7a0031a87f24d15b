package places

import (
	"fmt"
	"net/http"
)

// ErrorKind is the stable error taxonomy surfaced to callers. An empty result
// always means "search found nothing"; every failure carries one of these
// kinds instead of being downgraded to an empty success.
type ErrorKind string

const (
	KindInvalidRequestShape       ErrorKind = "invalid_request_shape"
	KindUnknownDetailTier         ErrorKind = "unknown_detail_tier"
	KindRadiusOutOfRange          ErrorKind = "radius_out_of_range"
	KindUpstreamTimeout           ErrorKind = "upstream_timeout"
	KindUpstreamError             ErrorKind = "upstream_error"
	KindMalformedUpstreamResponse ErrorKind = "malformed_upstream_response"
)

// Error is a typed orchestration failure. UpstreamStatus and Body are only set
// for KindUpstreamError; Body is truncated and never contains credentials.
type Error struct {
	Kind           ErrorKind
	Message        string
	UpstreamStatus int
	Body           string
}

func (e *Error) Error() string {
	if e.Kind == KindUpstreamError {
		return fmt.Sprintf("%s: upstream status %d: %s", e.Kind, e.UpstreamStatus, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// HTTPStatus maps the error kind to the status returned by the inbound
// endpoint. Upstream auth failures are passed through so an invalid credential
// is not misreported as a gateway fault.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidRequestShape, KindUnknownDetailTier, KindRadiusOutOfRange:
		return http.StatusBadRequest
	case KindUpstreamTimeout:
		return http.StatusGatewayTimeout
	case KindUpstreamError:
		if e.UpstreamStatus == http.StatusUnauthorized || e.UpstreamStatus == http.StatusForbidden {
			return e.UpstreamStatus
		}
		return http.StatusBadGateway
	case KindMalformedUpstreamResponse:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func newError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
