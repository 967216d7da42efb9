package idp

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"log/slog"
	"math/big"
	"sync"
	"time"

	"petshop-api/internal/pkg/errs"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
)

var ErrUnknownKey = errs.New("signing key not found in JWKS")

type jsonWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

// JWKSClient fetches the IdP key set over HTTP and keeps the RSA keys in
// memory. The set is refetched when older than refresh or when a token names
// a kid we have not seen, but never more than once per minRefetch.
type JWKSClient struct {
	http       *resty.Client
	url        string
	refresh    time.Duration
	minRefetch time.Duration
	group      singleflight.Group

	mu          sync.RWMutex
	keys        map[string]*rsa.PublicKey
	fetchedAt   time.Time
	attemptedAt time.Time
	lastErr     error
}

func NewJWKSClient(url string, refresh, minRefetch, timeout time.Duration) *JWKSClient {
	return &JWKSClient{
		http:       resty.New().SetTimeout(timeout).SetHeader("Accept", "application/json"),
		url:        url,
		refresh:    refresh,
		minRefetch: minRefetch,
		keys:       map[string]*rsa.PublicKey{},
	}
}

func (c *JWKSClient) RSAKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if key, fresh := c.lookup(kid); key != nil && fresh {
		return key, nil
	}
	if err := c.refetch(ctx); err != nil {
		// Serve the stale key rather than failing every request while the IdP is down.
		if key, _ := c.lookup(kid); key != nil {
			slog.Warn("jwks refresh failed, using cached key", "kid", kid, "error", err)
			return key, nil
		}
		return nil, err
	}
	if key, _ := c.lookup(kid); key != nil {
		return key, nil
	}
	return nil, ErrUnknownKey
}

func (c *JWKSClient) lookup(kid string) (*rsa.PublicKey, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.keys[kid]
	if key == nil && kid == "" && len(c.keys) == 1 {
		for _, k := range c.keys {
			key = k
		}
	}
	return key, time.Since(c.fetchedAt) < c.refresh
}

// refetch collapses concurrent callers into one request. Within minRefetch of
// the previous attempt it returns that attempt's outcome without calling the
// IdP, so tokens with random kids cannot drive traffic to it.
func (c *JWKSClient) refetch(ctx context.Context) error {
	_, err, _ := c.group.Do("jwks", func() (any, error) {
		c.mu.RLock()
		recent := !c.attemptedAt.IsZero() && time.Since(c.attemptedAt) < c.minRefetch
		lastErr := c.lastErr
		c.mu.RUnlock()
		if recent {
			return nil, lastErr
		}

		err := c.fetch(ctx)
		c.mu.Lock()
		c.attemptedAt = time.Now()
		c.lastErr = err
		c.mu.Unlock()
		return nil, err
	})
	return err
}

func (c *JWKSClient) fetch(ctx context.Context) error {
	var set jsonWebKeySet
	resp, err := c.http.R().SetContext(ctx).SetResult(&set).Get(c.url)
	if err != nil {
		return errs.Wrap(err, "failed to fetch JWKS")
	}
	if resp.IsError() {
		return errs.Newf("JWKS endpoint returned %d", resp.StatusCode())
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" || (k.Use != "" && k.Use != "sig") {
			continue
		}
		pub, err := parseRSAKey(k)
		if err != nil {
			slog.Warn("skipping malformed JWKS key", "kid", k.Kid, "error", err)
			continue
		}
		keys[k.Kid] = pub
	}

	c.mu.Lock()
	c.keys = keys
	c.fetchedAt = time.Now()
	c.mu.Unlock()

	slog.Debug("jwks refreshed", "keys", len(keys))
	return nil
}

func parseRSAKey(k jsonWebKey) (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, errs.Wrap(err, "modulus")
	}
	e, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, errs.Wrap(err, "exponent")
	}
	exp := new(big.Int).SetBytes(e)
	if !exp.IsInt64() || exp.Int64() < 3 || exp.Int64() > 1<<31-1 {
		return nil, errs.New("exponent out of range")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(n), E: int(exp.Int64())}, nil
}
