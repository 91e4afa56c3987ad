package zabbix

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wisptech/uisp-zabbix-sync/config"
)

func rpcServer(t *testing.T, handler func(rq map[string]interface{}) (interface{}, *Error)) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api_jsonrpc.php", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var rq map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rq))
		assert.Equal(t, "2.0", rq["jsonrpc"])

		result, rpcErr := handler(rq)

		reply := map[string]interface{}{"jsonrpc": "2.0", "id": rq["id"]}
		if rpcErr != nil {
			reply["error"] = rpcErr
		} else {
			reply["result"] = result
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reply)
	}))
}

func TestAPIVersion(t *testing.T) {
	server := rpcServer(t, func(rq map[string]interface{}) (interface{}, *Error) {
		assert.Equal(t, "apiinfo.version", rq["method"])
		assert.NotContains(t, rq, "auth", "apiinfo.version must be unauthenticated")
		return "7.0.0", nil
	})
	defer server.Close()

	client := NewClient(config.Zabbix{URL: server.URL, Token: "token"})

	version, err := client.APIVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "7.0.0", version)
}

func TestHosts(t *testing.T) {
	server := rpcServer(t, func(rq map[string]interface{}) (interface{}, *Error) {
		assert.Equal(t, "host.get", rq["method"])
		assert.Equal(t, "zabbix-token", rq["auth"])

		params := rq["params"].(map[string]interface{})
		assert.Equal(t, []interface{}{"hostid", "host"}, params["output"])
		assert.Equal(t, []interface{}{"interfaceid", "ip"}, params["selectInterfaces"])

		return []map[string]interface{}{
			{
				"hostid": "10084",
				"host":   "core-router",
				"interfaces": []map[string]interface{}{
					{"interfaceid": "1", "ip": "10.0.0.1"},
					{"interfaceid": "2", "ip": "10.0.1.1"},
				},
			},
			{"hostid": "10085", "host": "bare-host"},
		}, nil
	})
	defer server.Close()

	client := NewClient(config.Zabbix{URL: server.URL, Token: "zabbix-token"})

	hosts, err := client.Hosts(context.Background())
	require.NoError(t, err)
	require.Len(t, hosts, 2)

	assert.Equal(t, "core-router", hosts[0].Host)
	require.Len(t, hosts[0].Interfaces, 2)
	assert.Equal(t, "10.0.0.1", hosts[0].Interfaces[0].IP)
	assert.Empty(t, hosts[1].Interfaces)
}

func TestAPIError(t *testing.T) {
	server := rpcServer(t, func(rq map[string]interface{}) (interface{}, *Error) {
		return nil, &Error{Code: -32602, Message: "Invalid params.", Data: "Not authorised."}
	})
	defer server.Close()

	client := NewClient(config.Zabbix{URL: server.URL, Token: "expired"})

	_, err := client.Hosts(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-32602")
	assert.Contains(t, err.Error(), "Not authorised.")
}

func TestEndpointPathAppended(t *testing.T) {
	client := NewClient(config.Zabbix{URL: "https://zabbix.example.com/"})
	assert.Equal(t, "https://zabbix.example.com/api_jsonrpc.php", client.endpoint)

	client = NewClient(config.Zabbix{URL: "https://zabbix.example.com/api_jsonrpc.php"})
	assert.Equal(t, "https://zabbix.example.com/api_jsonrpc.php", client.endpoint)
}
