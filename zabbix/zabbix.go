// Package zabbix implements the subset of the Zabbix JSON-RPC API used for
// host inventory lookups: apiinfo.version and host.get with interfaces.
package zabbix

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/wisptech/uisp-zabbix-sync/config"
)

const rpcPath = "/api_jsonrpc.php"

// Host is one Zabbix host record with its network interfaces, as returned by
// host.get with selectInterfaces.
type Host struct {
	HostID     string      `json:"hostid"`
	Host       string      `json:"host"`
	Interfaces []Interface `json:"interfaces"`
}

type Interface struct {
	InterfaceID string `json:"interfaceid"`
	IP          string `json:"ip"`
}

type request struct {
	Version string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
	Auth    string      `json:"auth,omitempty"`
	ID      uint64      `json:"id"`
}

type response struct {
	Version string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
	ID      uint64          `json:"id"`
}

// Error is a JSON-RPC error object returned by the Zabbix API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

func (e *Error) Error() string {
	if e.Data != "" {
		return fmt.Sprintf("zabbix api error %d: %s (%s)", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("zabbix api error %d: %s", e.Code, e.Message)
}

// Client is a Zabbix API client authenticated with an API token. The token
// is sent in the request's auth member for every call that requires it.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
	id         atomic.Uint64
}

// NewClient builds a Zabbix client from the configuration. The JSON-RPC path
// is appended to the base URL if not already present.
func NewClient(cfg config.Zabbix) *Client {
	endpoint := strings.TrimSuffix(strings.TrimSpace(cfg.URL), "/")
	if !strings.HasSuffix(endpoint, rpcPath) {
		endpoint += rpcPath
	}

	timeout := cfg.Timeout.Duration()
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		endpoint: endpoint,
		token:    cfg.Token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIVersion retrieves the API version. The method is unauthenticated and
// doubles as a connectivity check before any host query.
func (c *Client) APIVersion(ctx context.Context) (string, error) {
	var version string
	if err := c.call(ctx, "apiinfo.version", struct{}{}, false, &version); err != nil {
		return "", err
	}

	return version, nil
}

// Hosts retrieves every host with its interface list.
func (c *Client) Hosts(ctx context.Context) ([]Host, error) {
	params := map[string]interface{}{
		"output":           []string{"hostid", "host"},
		"selectInterfaces": []string{"interfaceid", "ip"},
	}

	var hosts []Host
	if err := c.call(ctx, "host.get", params, true, &hosts); err != nil {
		return nil, err
	}

	return hosts, nil
}

func (c *Client) call(ctx context.Context, method string, params interface{}, authenticated bool, result interface{}) error {
	rq := request{
		Version: "2.0",
		Method:  method,
		Params:  params,
		ID:      c.id.Add(1),
	}

	if authenticated {
		rq.Auth = c.token
	}

	body, err := json.Marshal(rq)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json-rpc")

	reply, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s request to %s failed: %w", method, c.endpoint, err)
	}

	defer reply.Body.Close()

	if reply.StatusCode != http.StatusOK {
		return fmt.Errorf("received status code %d from %s for %s", reply.StatusCode, c.endpoint, method)
	}

	var rs response
	if err := json.NewDecoder(reply.Body).Decode(&rs); err != nil {
		return fmt.Errorf("decoding %s response: %w", method, err)
	}

	if rs.Error != nil {
		return rs.Error
	}

	if result != nil {
		if err := json.Unmarshal(rs.Result, result); err != nil {
			return fmt.Errorf("decoding %s result: %w", method, err)
		}
	}

	return nil
}
