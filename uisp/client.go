package uisp

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/wisptech/uisp-zabbix-sync/config"
)

const devicesEndpoint = "/api/v2.1/devices"

// responses are quoted in errors up to this many bytes
const snippetLimit = 512

// Client is a UISP API client. One client issues one request per operation;
// there is no retry and no session state beyond the auth token header.
type Client struct {
	url        string
	token      string
	httpClient *http.Client
}

// NewClient builds a UISP client from the configuration. A trailing '/' on
// the base URL is trimmed. TLS verification can be disabled for self-signed
// UISP instances.
func NewClient(cfg config.UISP) *Client {
	transport := http.DefaultTransport
	if cfg.TLSSkipVerify {
		transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	timeout := cfg.Timeout.Duration()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		url:   strings.TrimSuffix(strings.TrimSpace(cfg.URL), "/"),
		token: cfg.Token,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// Devices retrieves the full device collection.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	raw, err := c.RawDevices(ctx)
	if err != nil {
		return nil, err
	}

	return Decode(raw)
}

// RawDevices retrieves the device collection as unparsed JSON, for snapshot
// files that preserve fields the typed model does not carry.
func (c *Client) RawDevices(ctx context.Context) ([]byte, error) {
	endpoint := c.url + devicesEndpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("x-auth-token", c.token)
	req.Header.Set("Content-Type", "application/json")

	response, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", endpoint, err)
	}

	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", endpoint, err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, fmt.Errorf("received status code %d from %s: %s", response.StatusCode, endpoint, snippet(body))
	}

	return body, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > snippetLimit {
		return s[:snippetLimit] + "..."
	}
	return s
}
