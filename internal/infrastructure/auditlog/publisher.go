// Package auditlog ships action records for ingestion and query calls
// to an external collector over HTTP. Publishing is fire and forget:
// a slow or absent collector never blocks a request.
package auditlog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

// Entry is one recorded action.
type Entry struct {
	Action string         `json:"action"`
	Detail map[string]any `json:"detail,omitempty"`
	At     time.Time      `json:"at"`
}

type Publisher interface {
	Publish(ctx context.Context, entry Entry)
	Close()
}

// NopPublisher drops every entry. It stands in when no collector is
// configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Entry) {}
func (NopPublisher) Close()                         {}

type HTTPPublisherConfig struct {
	Endpoint  string
	Token     string
	Timeout   time.Duration
	QueueSize int
}

// HTTPPublisher posts entries from a bounded queue on a single worker
// goroutine. When the queue is full the entry is dropped and counted;
// audit records are advisory, the scorecard data is the source of truth.
type HTTPPublisher struct {
	client   *http.Client
	endpoint string
	token    string
	logger   *slog.Logger

	queue chan Entry
	done  chan struct{}

	consecutiveFailures int
}

func NewHTTPPublisher(cfg HTTPPublisherConfig, logger *slog.Logger) (*HTTPPublisher, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, crerr.Wrapf(err, "parse audit log endpoint %q", endpoint)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, crerr.Newf("audit log endpoint %q must use http or https", endpoint)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return nil, crerr.Newf("audit log endpoint %q has empty host", endpoint)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	queueSize := cfg.QueueSize
	if queueSize < 1 {
		queueSize = 256
	}
	if logger == nil {
		logger = slog.Default()
	}

	p := &HTTPPublisher{
		client:   &http.Client{Timeout: timeout},
		endpoint: endpoint,
		token:    strings.TrimSpace(cfg.Token),
		logger:   logger,
		queue:    make(chan Entry, queueSize),
		done:     make(chan struct{}),
	}
	go p.run()

	return p, nil
}

// Publish enqueues the entry without blocking the caller.
func (p *HTTPPublisher) Publish(_ context.Context, entry Entry) {
	if entry.At.IsZero() {
		entry.At = time.Now().UTC()
	}

	select {
	case p.queue <- entry:
	default:
		p.logger.Warn("audit log queue full, dropping entry", "action", entry.Action)
	}
}

// Close stops the worker after the queued entries are shipped.
func (p *HTTPPublisher) Close() {
	close(p.queue)
	<-p.done
}

func (p *HTTPPublisher) run() {
	defer close(p.done)

	for entry := range p.queue {
		p.ship(entry)
	}
}

func (p *HTTPPublisher) ship(entry Entry) {
	body, err := sonic.Marshal(entry)
	if err != nil {
		p.logger.Warn("marshal audit log entry", "action", entry.Action, "error", err)
		return
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	_, _ = buf.Write(body)

	ctx, cancel := context.WithTimeout(context.Background(), p.client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, strings.NewReader(buf.String()))
	if err != nil {
		p.warnFailure("create audit log request", entry.Action, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if p.token != "" {
		req.Header.Set("Authorization", "Bearer "+p.token)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		p.warnFailure("post audit log entry", entry.Action, err)
		return
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		p.warnFailure("audit log collector rejected entry", entry.Action,
			crerr.Newf("status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(raw))))
		return
	}

	p.consecutiveFailures = 0
}

// warnFailure logs the first few consecutive failures and then goes
// quiet so a dead collector does not flood the logs.
func (p *HTTPPublisher) warnFailure(msg, action string, err error) {
	p.consecutiveFailures++
	if p.consecutiveFailures <= 3 {
		p.logger.Warn(msg, "action", action, "error", err)
	}
}
