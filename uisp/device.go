// Package uisp implements a read-only client for the UNMS/UISP device
// inventory API.
package uisp

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Device is one entry from the UISP device collection. The nested objects are
// pointers: UISP omits them freely and a missing object decodes to nil rather
// than failing.
type Device struct {
	Identification *Identification `json:"identification"`
	Overview       *Overview       `json:"overview"`
	IPAddress      string          `json:"ipAddress"`
}

type Identification struct {
	Name  string `json:"name"`
	MAC   string `json:"mac"`
	Model string `json:"model"`
	Role  string `json:"role"`
	Site  *Site  `json:"site"`
}

type Site struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type Overview struct {
	Status string `json:"status"`
}

// Decode unmarshals a device collection response. The API returns a JSON
// array for the collection endpoint but a single object is accepted too and
// yields a one element slice.
func Decode(data []byte) ([]Device, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty response")
	}

	if trimmed[0] == '[' {
		var devices []Device
		if err := json.Unmarshal(trimmed, &devices); err != nil {
			return nil, fmt.Errorf("decoding device list: %w", err)
		}
		return devices, nil
	}

	var device Device
	if err := json.Unmarshal(trimmed, &device); err != nil {
		return nil, fmt.Errorf("decoding device: %w", err)
	}

	return []Device{device}, nil
}
