package client

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/autofacts/describe/client/pool"
	"github.com/autofacts/describe/client/throttle"
)

// Option is a functional option for configuring a [Client] via [Build].
type Option func(*options) error

type options struct {
	auth       Authenticator
	endpoint   string
	httpClient *http.Client
	rt         http.RoundTripper
	timeout    *time.Duration
	userAgent  string
	throttle   *throttle.Config
	country    string
	language   string
	switches   []string
	logger     *slog.Logger
	tracer     trace.Tracer
	dump       bool
}

// WithAuthenticator supplies the account credential provider. Required.
func WithAuthenticator(a Authenticator) Option {
	return func(c *options) error {
		if a == nil {
			return errors.New("authenticator must not be nil")
		}
		c.auth = a
		return nil
	}
}

// WithEndpoint overrides the default service WSDL URL.
func WithEndpoint(endpoint string) Option {
	return func(c *options) error {
		if endpoint == "" {
			return errors.New("endpoint must not be empty")
		}
		c.endpoint = endpoint
		return nil
	}
}

// WithHTTPClient replaces the default [http.Client] used for SOAP calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *options) error {
		if hc == nil {
			return errors.New("client must not be nil")
		}
		c.httpClient = hc
		return nil
	}
}

// WithTransport sets a custom [http.RoundTripper] as the base transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *options) error {
		if rt == nil {
			return errors.New("transport must not be nil")
		}
		c.rt = rt
		return nil
	}
}

// WithTimeout sets the overall request timeout on the underlying [http.Client].
func WithTimeout(d time.Duration) Option {
	return func(c *options) error {
		if d < 0 {
			return errors.New("timeout must not be negative")
		}
		c.timeout = &d
		return nil
	}
}

// WithUserAgent adds a persistent User-Agent header to all outgoing requests.
func WithUserAgent(header string) Option {
	return func(c *options) error {
		c.userAgent = header
		return nil
	}
}

// WithThrottle enables token-bucket rate limiting with the given
// requests per second and burst capacity. Description accounts are
// metered, so most deployments want this on.
func WithThrottle(rps, burst int) Option {
	return func(c *options) error {
		if rps <= 0 || burst <= 0 {
			return fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, throttle.ErrMustNotBeZero)
		}
		c.throttle = &throttle.Config{RPS: rps, Burst: burst}
		return nil
	}
}

// WithCountry sets the default account country code sent with every
// call. Defaults to US.
func WithCountry(cc string) Option {
	return func(c *options) error {
		if cc == "" {
			return errors.New("country must not be empty")
		}
		c.country = cc
		return nil
	}
}

// WithLanguage sets the default response language sent with every
// call. Defaults to en.
func WithLanguage(lang string) Option {
	return func(c *options) error {
		if lang == "" {
			return errors.New("language must not be empty")
		}
		c.language = lang
		return nil
	}
}

// WithSwitches replaces the fixed default switch set wholesale. Use the
// per-call WithSwitch option to extend rather than replace.
func WithSwitches(switches ...string) Option {
	return func(c *options) error {
		if len(switches) == 0 {
			return errors.New("at least one switch is required")
		}
		c.switches = switches
		return nil
	}
}

// WithLogger injects a custom [slog.Logger] into the [Client].
func WithLogger(logger *slog.Logger) Option {
	return func(c *options) error {
		c.logger = logger
		return nil
	}
}

// WithTracer injects an OpenTelemetry tracer. A no-op tracer is used
// when unset.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *options) error {
		c.tracer = tracer
		return nil
	}
}

// WithDump logs raw SOAP envelopes, for debugging against the live service.
func WithDump() Option {
	return func(c *options) error {
		c.dump = true
		return nil
	}
}

// userAgent is an http.RoundTripper, enabling the persistent User-Agent header.
type userAgent struct {
	value string
	base  http.RoundTripper
}

func (ua userAgent) RoundTrip(r *http.Request) (*http.Response, error) {
	cpy := r.Clone(r.Context())
	cpy.Header.Set("User-Agent", ua.value)
	return ua.base.RoundTrip(cpy)
}

// DescribeOption is a functional option for a single describe call.
type DescribeOption func(options *describeOpts) error

type describeOpts struct {
	switches     []string
	country      string
	language     string
	skipVINCheck bool
	queue        *pool.Queue[*VehicleDescription]
}

// WithSwitch adds switches to the client's set for this call only.
func WithSwitch(switches ...string) DescribeOption {
	return func(opts *describeOpts) error {
		if len(switches) == 0 {
			return errors.New("at least one switch is required")
		}
		opts.switches = append(opts.switches, switches...)

		return nil
	}
}

// WithCountryOverride replaces the client's country code for this call only.
func WithCountryOverride(cc string) DescribeOption {
	return func(opts *describeOpts) error {
		if cc == "" {
			return errors.New("country must not be empty")
		}
		opts.country = cc

		return nil
	}
}

// WithLanguageOverride replaces the client's language for this call only.
func WithLanguageOverride(lang string) DescribeOption {
	return func(opts *describeOpts) error {
		if lang == "" {
			return errors.New("language must not be empty")
		}
		opts.language = lang

		return nil
	}
}

// WithSkipVINCheck disables the local check digit gate for this call.
// The service accepts some real-world VINs whose check digits were
// stamped wrong at the factory; this lets those through.
func WithSkipVINCheck() DescribeOption {
	return func(opts *describeOpts) error {
		opts.skipVINCheck = true

		return nil
	}
}

// InQueue runs an async describe call through the given shared queue,
// so a batch of calls observes one concurrency limit and one Wait.
// Only valid with [Client.DescribeAsync].
func InQueue(q *pool.Queue[*VehicleDescription]) DescribeOption {
	return func(opts *describeOpts) error {
		if q == nil {
			return errors.New("queue must not be nil")
		}
		opts.queue = q

		return nil
	}
}
