// Package connectivity отвечает на вопрос "доступен ли сейчас удалённый сервис".
// Ответ носит рекомендательный характер: он решает, стоит ли пытаться
// выполнять сетевые операции, но не гарантирует их успех.
package connectivity

import (
	"context"
	"net/http"
	"time"
)

// DefaultTimeout ограничивает время одной проверки
const DefaultTimeout = 3 * time.Second

// Probe reports whether the remote side is reachable right now.
type Probe interface {
	IsOnline(ctx context.Context) bool
}

// ProbeFunc adapts an ordinary function to Probe.
type ProbeFunc func(ctx context.Context) bool

// IsOnline calls f(ctx).
func (f ProbeFunc) IsOnline(ctx context.Context) bool {
	return f(ctx)
}

// Always returns a probe with a fixed answer.
func Always(online bool) Probe {
	return ProbeFunc(func(context.Context) bool { return online })
}

// HTTPProbe проверяет доступность одним HEAD запросом.
// Любой HTTP ответ, включая 4xx/5xx, означает "online".
type HTTPProbe struct {
	client  *http.Client
	url     string
	timeout time.Duration
}

// NewHTTPProbe creates a probe for url. timeout <= 0 means DefaultTimeout.
func NewHTTPProbe(url string, timeout time.Duration) *HTTPProbe {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPProbe{
		client: &http.Client{
			// редиректы не нужны: сам ответ уже доказывает доступность
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		url:     url,
		timeout: timeout,
	}
}

// IsOnline performs the reachability request.
func (p *HTTPProbe) IsOnline(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.url, nil)
	if err != nil {
		return false
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()

	return true
}
