// Package marvel describes and executes requests against the Marvel comics
// catalog API.
package marvel

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/blackwell-systems/comiccards/internal/endpoint"
	"github.com/blackwell-systems/comiccards/internal/util"
)

// DefaultBaseURL is the public catalog API root.
const DefaultBaseURL = "https://gateway.marvel.com/v1/public"

// Endpoint is the closed set of catalog operations.
type Endpoint int

const (
	// Comics fetches the 50 most recent comics on sale in the last week.
	Comics Endpoint = iota
)

func (e Endpoint) String() string {
	switch e {
	case Comics:
		return "comics"
	default:
		return fmt.Sprintf("Endpoint(%d)", int(e))
	}
}

// ErrMissingKeys is returned when either API key is empty.
var ErrMissingKeys = errors.New("marvel: public and private keys are required")

// Credentials are the catalog API key pair. The private key only ever feeds
// the signature.
type Credentials struct {
	PublicKey  string
	PrivateKey string
}

// Catalog builds signed request descriptors.
type Catalog struct {
	creds   Credentials
	baseURL string
	now     func() time.Time
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithBaseURL overrides the API root.
func WithBaseURL(u string) Option {
	return func(c *Catalog) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithClock sets the time source used for request timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

// NewCatalog creates a descriptor builder for the given credentials.
func NewCatalog(creds Credentials, opts ...Option) (*Catalog, error) {
	if creds.PublicKey == "" || creds.PrivateKey == "" {
		return nil, ErrMissingKeys
	}
	c := &Catalog{creds: creds, baseURL: DefaultBaseURL, now: time.Now}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Sign returns the request hash: hex(MD5(ts + privateKey + publicKey)).
func Sign(ts, privateKey, publicKey string) string {
	return util.MD5Hex(ts + privateKey + publicKey)
}

// AuthParams computes {apikey, ts, hash} for the current time. Called once
// per request; the server rejects stale pairs.
func (c *Catalog) AuthParams() url.Values {
	ts := strconv.FormatInt(c.now().Unix(), 10)
	return url.Values{
		"apikey": {c.creds.PublicKey},
		"ts":     {ts},
		"hash":   {Sign(ts, c.creds.PrivateKey, c.creds.PublicKey)},
	}
}

// Describe builds the request descriptor for e.
func (c *Catalog) Describe(e Endpoint) (*endpoint.Request, error) {
	switch e {
	case Comics:
		query := url.Values{
			"format":         {"comic"},
			"formatType":     {"comic"},
			"orderBy":        {"-onsaleDate"},
			"dateDescriptor": {"lastWeek"},
			"limit":          {"50"},
		}
		for k, v := range c.AuthParams() {
			query[k] = v
		}
		return &endpoint.Request{
			Method:  http.MethodGet,
			BaseURL: c.baseURL,
			Path:    "/comics",
			Query:   query,
			Header:  http.Header{"Content-Type": {"application/json"}},
		}, nil
	default:
		return nil, fmt.Errorf("marvel: unknown endpoint %v", e)
	}
}
