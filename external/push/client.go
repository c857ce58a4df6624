// Package push delivers result-saved events to a configured webhook, e.g. the
// club's Discord relay or the static-site rebuild hook.
package push

import (
	"context"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/immxrko/fc-patron-sub000/internal/platform/id"
	"github.com/immxrko/fc-patron-sub000/internal/platform/logging"
	"github.com/immxrko/fc-patron-sub000/internal/platform/resilience"
	"github.com/immxrko/fc-patron-sub000/internal/usecase"
)

var errPushTransient = crerr.New("push transient failure")

type ClientConfig struct {
	WebhookURL     string
	Token          string
	Timeout        time.Duration
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client posts result-saved events to the webhook. It implements
// usecase.ResultNotifier.
type Client struct {
	http           *fasthttp.Client
	webhookURL     string
	token          string
	timeout        time.Duration
	ids            id.Generator
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
}

func NewClient(cfg ClientConfig, ids id.Generator, logger *logging.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if ids == nil {
		ids = id.NewRandomGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		http: &fasthttp.Client{
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
		},
		webhookURL:     strings.TrimSpace(cfg.WebhookURL),
		token:          strings.TrimSpace(cfg.Token),
		timeout:        timeout,
		ids:            ids,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type resultSavedPayload struct {
	EventID      string `json:"eventId"`
	MatchID      int64  `json:"matchId"`
	SeasonID     int64  `json:"seasonId"`
	OpponentName string `json:"opponentName"`
	Squad        string `json:"squad"`
	Date         string `json:"date"`
	Result       string `json:"result"`
	IsHome       bool   `json:"isHome"`
}

func (c *Client) NotifyResultSaved(ctx context.Context, event usecase.ResultSavedEvent) error {
	if c.webhookURL == "" {
		return crerr.New("webhook URL is not configured")
	}
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "push circuit breaker rejected event", "state", c.breaker.State())
			return crerr.Wrap(err, "push webhook is temporarily unavailable")
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	eventID, err := c.ids.NewID()
	if err != nil {
		return crerr.Wrap(err, "generate event id")
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(resultSavedPayload{
		EventID:      eventID,
		MatchID:      event.MatchID,
		SeasonID:     event.SeasonID,
		OpponentName: event.OpponentName,
		Squad:        event.Squad,
		Date:         event.Date.String(),
		Result:       event.Result,
		IsHome:       event.IsHome,
	}); err != nil {
		return crerr.Wrap(err, "marshal event payload")
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.webhookURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.Header.Set("X-Event-Id", eventID)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	// SetBody copies, releasing buf afterwards is safe.
	req.SetBody(buf.Bytes())

	deadline := time.Now().Add(c.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		callErr := crerr.Wrapf(errPushTransient, "post result-saved event match_id=%d: %v", event.MatchID, err)
		c.recordCircuitResult(callErr)
		return callErr
	}

	status := resp.StatusCode()
	if status/100 != 2 {
		body := strings.TrimSpace(string(resp.Body()))
		if len(body) > 512 {
			body = body[:512]
		}
		var callErr error
		if isRetryableStatus(status) {
			callErr = crerr.Wrapf(errPushTransient, "post result-saved event status=%d match_id=%d body=%s", status, event.MatchID, body)
		} else {
			callErr = crerr.Newf("post result-saved event status=%d match_id=%d body=%s", status, event.MatchID, body)
		}
		c.recordCircuitResult(callErr)
		return callErr
	}

	c.logger.InfoContext(ctx, "result-saved event delivered", "event_id", eventID, "match_id", event.MatchID, "result", event.Result)
	c.recordCircuitResult(nil)
	return nil
}

// recordCircuitResult counts only transient failures against the breaker;
// permanent rejections (4xx) say nothing about webhook health.
func (c *Client) recordCircuitResult(err error) {
	if !c.circuitEnabled {
		return
	}
	if err == nil {
		c.breaker.RecordSuccess()
		return
	}
	if crerr.Is(err, errPushTransient) {
		c.breaker.RecordFailure()
	}
}

func isRetryableStatus(status int) bool {
	switch status {
	case fasthttp.StatusRequestTimeout,
		fasthttp.StatusTooManyRequests,
		fasthttp.StatusInternalServerError,
		fasthttp.StatusBadGateway,
		fasthttp.StatusServiceUnavailable,
		fasthttp.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
