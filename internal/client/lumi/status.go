package lumi

import (
	"context"
	"net/http"

	go_json "github.com/goccy/go-json"
)

type statusService struct {
	client *Client
}

// Get probes the device. Any 2xx JSON body counts as reachable; fields that
// are missing or of the wrong type stay zero.
func (s *statusService) Get(ctx context.Context) (*Status, error) {
	const route = "/api/status"

	var raw go_json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, route, nil, &raw); err != nil {
		return nil, err
	}

	var status Status
	if err := go_json.Unmarshal(raw, &status); err != nil {
		var loose map[string]any
		_ = go_json.Unmarshal(raw, &loose)
		status = Status{}
		if v, ok := loose["status"].(string); ok {
			status.Status = v
		}
		if v, ok := loose["device"].(string); ok {
			status.Device = v
		}
	}
	return &status, nil
}
