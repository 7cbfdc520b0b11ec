// Package client executes describeVehicle lookups against the remote
// automotive description service.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/tiaguinho/gosoap"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/autofacts/describe/client/pool"
	"github.com/autofacts/describe/client/throttle"
	"github.com/autofacts/describe/vin"
)

// DefaultEndpoint is the WSDL URL of the automotive description service.
const DefaultEndpoint = "http://services.chromedata.com/Description/7b?wsdl"

// defaultTimeout bounds a single SOAP call when no http.Client is supplied.
const defaultTimeout = 30 * time.Second

// Client wraps the SOAP client for the description service. It merges
// account credentials, client-level defaults and per-call overrides
// into each request, and gates every call on a local VIN checksum test.
// A Client is safe for concurrent use; batched lookups overlap their
// SOAP calls up to the queue's concurrency limit.
type Client struct {
	soap   *gosoap.Client
	auth   Authenticator
	logger *slog.Logger
	tracer trace.Tracer

	country  string
	language string
	switches []string
}

// Build creates a Client with the provided options. Credentials via
// [WithAuthenticator] are required; everything else has defaults.
func Build(optFns ...Option) (*Client, error) {
	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.auth == nil {
		return nil, ErrMissingCredentials
	}

	client := &Client{
		auth:     opts.auth,
		logger:   slog.Default(),
		tracer:   noop.NewTracerProvider().Tracer("no-op tracer"),
		country:  defaultCountry,
		language: defaultLanguage,
		switches: defaultSwitches,
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}
	if opts.tracer != nil {
		client.tracer = opts.tracer
	}
	if opts.country != "" {
		client.country = opts.country
	}
	if opts.language != "" {
		client.language = opts.language
	}
	if len(opts.switches) > 0 {
		client.switches = opts.switches
	}

	hc := opts.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: defaultTimeout}
	}
	if opts.timeout != nil {
		hc.Timeout = *opts.timeout
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case hc.Transport != nil:
		transport = hc.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(opts.throttle.RPS, opts.throttle.Burst, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	hc.Transport = transport

	endpoint := opts.endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	soapClient, err := gosoap.SoapClientWithConfig(endpoint, hc, &gosoap.Config{Dump: opts.dump})
	if err != nil {
		return nil, fmt.Errorf("building soap client: %w", err)
	}
	client.soap = soapClient

	return client, nil
}

// Describe performs a synchronous describeVehicle lookup. The VIN's
// check digit is verified locally first; a VIN that fails it never
// costs a network call.
func (c *Client) Describe(ctx context.Context, vinNumber string, optFns ...DescribeOption) (*VehicleDescription, error) {
	var opts describeOpts
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, err
		}
	}

	if opts.queue != nil {
		return nil, errors.New("InQueue is only valid with DescribeAsync")
	}

	return c.describe(ctx, vinNumber, opts)
}

// DescribeAsync performs the lookup in a background goroutine and
// returns immediately with a [pool.Result] handle. Pass [InQueue] to
// share a concurrency-limited queue across several calls.
func (c *Client) DescribeAsync(ctx context.Context, vinNumber string, optFns ...DescribeOption) (*pool.Result[*VehicleDescription], error) {
	var opts describeOpts
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, err
		}
	}

	q := opts.queue
	if q == nil {
		q = pool.NewQueue[*VehicleDescription](0)
	}

	r := q.Start(ctx, func(ctx context.Context) (*VehicleDescription, error) {
		return c.describe(ctx, vinNumber, opts)
	})

	return r, nil
}

// BatchItem pairs an input VIN with its describe outcome.
type BatchItem struct {
	VIN         string
	Description *VehicleDescription
	Err         error
}

// DescribeBatch runs every VIN through a queue limited to maxConcurrent
// in-flight lookups and blocks until all complete. The returned slice
// preserves input order; the error is the join of all per-VIN failures.
// A maxConcurrent <= 0 means unlimited.
func (c *Client) DescribeBatch(ctx context.Context, vins []string, maxConcurrent int, optFns ...DescribeOption) ([]BatchItem, error) {
	var opts describeOpts
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, err
		}
	}

	if opts.queue != nil {
		return nil, errors.New("InQueue is not valid with DescribeBatch")
	}

	q := pool.NewQueue[*VehicleDescription](maxConcurrent)

	items := make([]BatchItem, len(vins))
	results := make([]*pool.Result[*VehicleDescription], len(vins))
	for i, v := range vins {
		items[i].VIN = v
		results[i] = q.Start(ctx, func(ctx context.Context) (*VehicleDescription, error) {
			return c.describe(ctx, v, opts)
		})
	}

	err := q.Wait()
	for i, r := range results {
		items[i].Description, items[i].Err = r.Value()
	}

	return items, err
}

// describe merges parameters, validates them, and runs one SOAP call.
func (c *Client) describe(ctx context.Context, vinNumber string, opts describeOpts) (*VehicleDescription, error) {
	normalized := vin.Normalize(vinNumber)
	if !opts.skipVINCheck && !vin.IsValid(normalized) {
		return nil, fmt.Errorf("%w: %q failed the check digit test", ErrInvalidVIN, normalized)
	}

	req := describeRequest{
		VIN:      normalized,
		Country:  c.country,
		Language: c.language,
		Switches: mergeSwitches(c.switches, opts.switches),
	}
	if opts.country != "" {
		req.Country = opts.country
	}
	if opts.language != "" {
		req.Language = opts.language
	}

	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("validating describe request: %w", err)
	}

	callID := uuid.NewString()
	ctx, span := c.addSpan(ctx, operationDescribeVehicle,
		attribute.String("vin", req.VIN),
		attribute.String("call_id", callID),
	)
	defer span.End()

	c.logger.Info("describe vehicle", "vin", req.VIN, "call_id", callID, "country", req.Country, "switches", req.Switches)

	res, err := c.call(ctx, operationDescribeVehicle, req.soapParams(c.auth))
	if err != nil {
		return nil, fmt.Errorf("soap call: %w", err)
	}

	var desc VehicleDescription
	if err := res.Unmarshal(&desc); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}

	if !desc.Successful() {
		c.logger.Error("service rejected describe request", "vin", req.VIN, "call_id", callID, "code", desc.Status.ResponseCode)

		return nil, &ServiceError{
			Code:        desc.Status.ResponseCode,
			Description: desc.Status.Description,
			Err:         ErrServiceFailure,
		}
	}

	return &desc, nil
}

// call runs the SOAP operation in its own goroutine so the caller's
// context is honored even though the underlying client carries none.
// An abandoned call keeps running until the HTTP client timeout.
func (c *Client) call(ctx context.Context, operation string, params gosoap.ArrayParams) (*gosoap.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type outcome struct {
		res *gosoap.Response
		err error
	}
	ch := make(chan outcome, 1)

	go func() {
		res, err := c.soap.Call(operation, params)
		ch <- outcome{res: res, err: err}
	}()

	select {
	case out := <-ch:
		return out.res, out.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// addSpan starts a span on the client's tracer. The default tracer is
// a no-op, so untraced deployments pay nothing here.
func (c *Client) addSpan(ctx context.Context, spanName string, keyValues ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := c.tracer.Start(ctx, spanName)
	span.SetAttributes(keyValues...)

	return ctx, span
}
