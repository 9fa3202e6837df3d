package cache

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/medsum/medsum/internal/errors"
	"github.com/medsum/medsum/internal/logger"
)

// ValkeyOptions configures a connection to a Valkey (or Redis) server.
type ValkeyOptions struct {
	Address  string
	Password string
	TLS      bool
}

// Valkey stores summaries in a shared Valkey server so several backend
// replicas reuse each other's work.
type Valkey struct {
	client valkey.Client
}

// NewValkey connects to the server described by opts and pings it.
func NewValkey(ctx context.Context, opts ValkeyOptions) (*Valkey, error) {
	const op = errors.Op("cache.NewValkey")

	clientOpts := valkey.ClientOption{
		InitAddress:      []string{opts.Address},
		Password:         opts.Password,
		ConnWriteTimeout: 5 * time.Second,
	}
	if opts.TLS {
		clientOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client, err := valkey.NewClient(clientOpts)
	if err != nil {
		return nil, errors.E(op, errors.KindNetwork, fmt.Sprintf("connect to %s", opts.Address), err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, errors.E(op, errors.KindNetwork, fmt.Sprintf("ping %s", opts.Address), err)
	}

	logger.WithComponent("cache").Info("connected to valkey", "address", opts.Address)
	return newValkey(client), nil
}

func newValkey(client valkey.Client) *Valkey {
	return &Valkey{client: client}
}

// Get reads key. A missing key is a miss, not an error.
func (v *Valkey) Get(ctx context.Context, key string) (string, bool, error) {
	summary, err := v.client.Do(ctx, v.client.B().Get().Key(key).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.E(errors.Op("cache.Valkey.Get"), errors.KindNetwork, err)
	}
	return summary, true, nil
}

// Set writes key with an expiry rounded up to whole seconds.
func (v *Valkey) Set(ctx context.Context, key, summary string, ttl time.Duration) error {
	if summary == "" || ttl <= 0 {
		return nil
	}
	seconds := int64((ttl + time.Second - 1) / time.Second)
	cmd := v.client.B().Set().Key(key).Value(summary).ExSeconds(seconds).Build()
	if err := v.client.Do(ctx, cmd).Error(); err != nil {
		return errors.E(errors.Op("cache.Valkey.Set"), errors.KindNetwork, err)
	}
	return nil
}

// Close releases the connection pool.
func (v *Valkey) Close() error {
	v.client.Close()
	return nil
}
