package tracing

// Span names.
const (
	SpanSubmit = "registration.submit"
)

// Span attribute keys.
const (
	AttrRequestID      = "registration.request_id"
	AttrPayloadID      = "registration.payload_id"
	AttrEndpoint       = "http.url"
	AttrHTTPMethod     = "http.method"
	AttrHTTPStatusCode = "http.status_code"
	AttrErrorMessage   = "error.message"
)
