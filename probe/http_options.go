package probe

import "net/http"

// HTTPStatusExpectation determines whether a given HTTP status code is
// acceptable.
type HTTPStatusExpectation func(status int) bool

// HTTPProbeOption configures the behaviour of NewHTTPProbe.
type HTTPProbeOption func(*httpProbeConfig)

type httpProbeConfig struct {
	client  HTTPDoer
	expect  HTTPStatusExpectation
	headers map[string]string
}

func buildHTTPProbeConfig(client HTTPDoer, opts ...HTTPProbeOption) *httpProbeConfig {
	cfg := &httpProbeConfig{
		client: client,
		expect: defaultHTTPStatusExpectation,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if cfg.client == nil {
		cfg.client = http.DefaultClient
	}
	if cfg.expect == nil {
		cfg.expect = defaultHTTPStatusExpectation
	}
	return cfg
}

// WithHTTPClient overrides the HTTP client used for the probe.
func WithHTTPClient(client HTTPDoer) HTTPProbeOption {
	return func(cfg *httpProbeConfig) {
		cfg.client = client
	}
}

// WithHTTPStatusExpectation installs a custom status validation function.
func WithHTTPStatusExpectation(expect HTTPStatusExpectation) HTTPProbeOption {
	return func(cfg *httpProbeConfig) {
		cfg.expect = expect
	}
}

// WithHTTPAllowedStatuses restricts the probe to succeed only for the
// provided status codes.
func WithHTTPAllowedStatuses(statuses ...int) HTTPProbeOption {
	allowed := make(map[int]struct{}, len(statuses))
	for _, status := range statuses {
		allowed[status] = struct{}{}
	}
	return func(cfg *httpProbeConfig) {
		cfg.expect = func(status int) bool {
			if len(allowed) == 0 {
				return defaultHTTPStatusExpectation(status)
			}
			_, ok := allowed[status]
			return ok
		}
	}
}

// WithHTTPHeader adds a header to the outbound probe request.
func WithHTTPHeader(key, value string) HTTPProbeOption {
	return func(cfg *httpProbeConfig) {
		if cfg.headers == nil {
			cfg.headers = make(map[string]string)
		}
		cfg.headers[key] = value
	}
}
