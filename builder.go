package goAuthClient

import (
	"context"
	"net/http"

	"github.com/MrEthical07/goAuthClient/credstore"
	"github.com/MrEthical07/goAuthClient/internal/audit"
	internalmetrics "github.com/MrEthical07/goAuthClient/internal/metrics"
	"github.com/MrEthical07/goAuthClient/internal/transport"
	"github.com/MrEthical07/goAuthClient/watch"
	"github.com/redis/go-redis/v9"
)

// Builder assembles a [Client]. Configure it during initialization, call
// Build once, and discard it.
type Builder struct {
	config     Config
	httpClient *http.Client
	store      credstore.Store
	redis      *redis.Client
	redisSet   bool
	auditSink  AuditSink

	built bool
}

// New creates a Builder seeded with defaults.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig replaces the full configuration.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cfg
	return b
}

// WithBaseURL sets the backend origin.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.BaseURL = baseURL
	return b
}

// WithHTTPClient injects a custom HTTP client. Config.RequestTimeout is then
// the caller's responsibility.
func (b *Builder) WithHTTPClient(client *http.Client) *Builder {
	b.httpClient = client
	return b
}

// WithCredentialStore injects a credential store, overriding the config-driven
// default.
func (b *Builder) WithCredentialStore(store credstore.Store) *Builder {
	b.store = store
	return b
}

// WithRedis stores credentials in Redis under Config.Credentials.RedisPrefix,
// sharing the session triple across processes.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	b.redisSet = true
	return b
}

// WithAuditSink injects the sink receiving audit events.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	return b
}

// WithMetricsEnabled toggles in-process counters.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// Build validates the configuration, wires dependencies, and returns a ready
// Client. The reactive channels are seeded from whatever session the store
// already holds, so a restarted process resumes its previous login.
func (b *Builder) Build() (*Client, error) {
	if b.built {
		return nil, ErrBuilderReused
	}
	b.built = true

	if err := b.config.Validate(); err != nil {
		return nil, err
	}
	if b.redisSet && b.redis == nil {
		return nil, ErrRedisNotConfigured
	}

	httpClient := b.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: b.config.RequestTimeout}
	}

	store := b.store
	if store == nil {
		switch {
		case b.redis != nil:
			store = credstore.NewRedis(b.redis, b.config.Credentials.RedisPrefix, b.config.Credentials.RedisTTL)
		case b.config.Credentials.FilePath != "":
			store = credstore.NewFile(b.config.Credentials.FilePath)
		default:
			store = credstore.NewMemory()
		}
	}

	c := &Client{
		config:  b.config,
		api:     transport.New(httpClient, b.config.BaseURL),
		store:   store,
		metrics: internalmetrics.New(internalmetrics.Config{Enabled: b.config.Metrics.Enabled}),
		audit: audit.NewDispatcher(audit.Config{
			Enabled:    b.config.Audit.Enabled,
			BufferSize: b.config.Audit.BufferSize,
			DropIfFull: b.config.Audit.DropIfFull,
		}, b.auditSink),
	}

	sess, err := store.Get(context.Background())
	if err != nil {
		sess = credstore.Session{}
	}
	c.userWatch = watch.NewValue(sess.Username)
	c.roleWatch = watch.NewValue(Role(sess.Role))

	return c, nil
}
