// Package submit sends a registration payload to the collaborator over HTTP.
//
// A Submitter makes exactly one POST per call. It does not retry, back off or
// de-duplicate; callers may run several submissions concurrently.
package submit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/signup/internal/log"
	"github.com/zjrosen/signup/internal/registration"
	"github.com/zjrosen/signup/internal/tracing"
)

// maxAckBytes caps how much of the acknowledgment body is read.
const maxAckBytes = 1 << 20

// Config configures a Submitter.
type Config struct {
	Endpoint string
	Timeout  time.Duration // 0 disables the timeout
}

// Ack is the collaborator's acknowledgment of a registration.
type Ack struct {
	RequestID  string
	StatusCode int
	Body       any // decoded JSON body, nil when the body is empty or not JSON
}

// StatusError is returned when the collaborator answers with a non-2xx status.
type StatusError struct {
	Code int
	Text string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%d Error: %s.", e.Code, e.Text)
}

// Option customizes a Submitter.
type Option func(*Submitter)

// WithHTTPClient replaces the HTTP client. The client's own Timeout wins over Config.Timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Submitter) { s.client = c }
}

// WithTracer records a client span per submission.
func WithTracer(t trace.Tracer) Option {
	return func(s *Submitter) { s.tracer = t }
}

// WithRequestID overrides the X-Request-Id generator.
func WithRequestID(fn func() string) Option {
	return func(s *Submitter) { s.requestID = fn }
}

// Submitter posts registration payloads to a fixed endpoint.
type Submitter struct {
	endpoint  string
	client    *http.Client
	tracer    trace.Tracer
	requestID func() string
}

// New creates a Submitter for cfg.
func New(cfg Config, opts ...Option) *Submitter {
	s := &Submitter{
		endpoint:  cfg.Endpoint,
		client:    &http.Client{Timeout: cfg.Timeout},
		tracer:    noop.NewTracerProvider().Tracer("signup"),
		requestID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Endpoint returns the URL registrations are posted to.
func (s *Submitter) Endpoint() string {
	return s.endpoint
}

// Submit posts p as JSON. Any 2xx status is success; anything else yields a
// *StatusError. Transport failures are returned wrapped.
func (s *Submitter) Submit(ctx context.Context, p registration.Payload) (Ack, error) {
	reqID := s.requestID()

	ctx, span := s.tracer.Start(ctx, tracing.SpanSubmit,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(tracing.AttrRequestID, reqID),
			attribute.Int(tracing.AttrPayloadID, p.ID),
			attribute.String(tracing.AttrEndpoint, s.endpoint),
			attribute.String(tracing.AttrHTTPMethod, http.MethodPost),
		),
	)
	defer span.End()

	ack, err := s.post(ctx, reqID, p)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(tracing.AttrErrorMessage, err.Error()))
		span.SetStatus(codes.Error, err.Error())
		log.ErrorErr(log.CatSubmit, "Registration failed", err, "request_id", reqID, "payload_id", p.ID)
		return ack, err
	}

	span.SetAttributes(attribute.Int(tracing.AttrHTTPStatusCode, ack.StatusCode))
	span.SetStatus(codes.Ok, "")
	log.Info(log.CatSubmit, "Registration accepted", "request_id", reqID, "status", ack.StatusCode, "user", p.UserName)
	log.Debug(log.CatSubmit, "Acknowledgment body", "request_id", reqID, "body", ack.Body)
	return ack, nil
}

func (s *Submitter) post(ctx context.Context, reqID string, p registration.Payload) (Ack, error) {
	ack := Ack{RequestID: reqID}

	body, err := json.Marshal(p)
	if err != nil {
		return ack, fmt.Errorf("encoding registration: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return ack, fmt.Errorf("creating registration request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	log.Debug(log.CatSubmit, "Sending registration", "request_id", reqID, "endpoint", s.endpoint, "payload_id", p.ID)

	resp, err := s.client.Do(req)
	if err != nil {
		return ack, fmt.Errorf("sending registration: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	ack.StatusCode = resp.StatusCode
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int(tracing.AttrHTTPStatusCode, resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxAckBytes))
		return ack, &StatusError{Code: resp.StatusCode, Text: statusText(resp)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAckBytes))
	if err != nil {
		return ack, fmt.Errorf("reading acknowledgment: %w", err)
	}
	if len(bytes.TrimSpace(data)) > 0 {
		var decoded any
		if jsonErr := json.Unmarshal(data, &decoded); jsonErr == nil {
			ack.Body = decoded
		} else {
			log.Warn(log.CatSubmit, "Acknowledgment is not JSON", "request_id", reqID, "error", jsonErr)
		}
	}
	return ack, nil
}

// statusText extracts the reason phrase from resp.Status, falling back to the
// canonical text for the code.
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
