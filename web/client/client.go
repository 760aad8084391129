// Package client provides access to a remote preference store served over
// the HTTP API. Client implements store.Store, so a remote store can be
// used anywhere a local one can, including underneath a kv.Namespace.
package client

import (
	"net/http"
	"net/url"
	"time"

	"go.hackfix.me/prefs/store"
)

// Client is an HTTP client for a remote preference store.
type Client struct {
	*http.Client
	address string
}

var _ store.Store = &Client{}

// New returns a new Client for the store served at address.
func New(address string) *Client {
	return &Client{
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		address: address,
	}
}

// Close releases any idle connections held by the client.
func (c *Client) Close() error {
	c.CloseIdleConnections()
	return nil
}

func (c *Client) valueURL(key string) (*url.URL, error) {
	path, err := url.JoinPath("/api/v1/store/value", key)
	if err != nil {
		return nil, err
	}
	return &url.URL{Scheme: "http", Host: c.address, Path: path}, nil
}
