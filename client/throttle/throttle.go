package throttle

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

var (
	ErrMustNotBeZero = errors.New("must be greater than zero")
	ErrWaitingFailed = errors.New("limiter waiting failed")
	ErrContextEnded  = errors.New("throttle context ended")
)

// logThreshold is the minimum stall worth logging. Sub-millisecond
// token refills are routine and would only add noise.
const logThreshold = time.Millisecond

// Config carries the caller-facing throttle settings: sustained
// requests per second plus the burst the account tolerates on top.
type Config struct {
	RPS   int
	Burst int
}

// throttle paces outbound calls against a token bucket so a metered
// description account does not blow through its quota under a batch.
type throttle struct {
	limiter *rate.Limiter
	rps     int
	burst   int
	next    http.RoundTripper
	logFn   func() *slog.Logger
}

// NewRoundTripper wraps next with a token-bucket limiter of rps tokens
// per second and the given burst capacity. logFn resolves the logger at
// request time, making option ordering irrelevant; returning nil
// disables wait logging.
func NewRoundTripper(rps, burst int, logFn func() *slog.Logger, next http.RoundTripper) (http.RoundTripper, error) {
	if rps <= 0 || burst <= 0 {
		return nil, fmt.Errorf("rps[%d] and burst[%d] %w", rps, burst, ErrMustNotBeZero)
	}

	return &throttle{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		rps:     rps,
		burst:   burst,
		next:    next,
		logFn:   logFn,
	}, nil
}

func (t *throttle) RoundTrip(r *http.Request) (*http.Response, error) {
	ctx := r.Context()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w early: %w", ErrContextEnded, err)
	}

	start := time.Now()
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWaitingFailed, err)
	}

	if waited := time.Since(start); waited > logThreshold {
		if logger := t.logFn(); logger != nil {
			logger.Info("throttled request", "waited", waited.String(), "rps", t.rps, "burst", t.burst, "host", r.URL.Host)
		}
	}

	if err := ctx.Err(); err != nil { // Wait can return just as the context expires.
		return nil, fmt.Errorf("%w post-wait: %w", ErrContextEnded, err)
	}

	return t.next.RoundTrip(r)
}
