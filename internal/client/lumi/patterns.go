package lumi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/garrettladley/lumi/internal/xslog"
)

type patternService struct {
	client *Client
}

func (s *patternService) List(ctx context.Context) ([]Pattern, error) {
	const route = "/api/led/patterns"

	var resp struct {
		Patterns []Pattern `json:"patterns"`
	}
	if err := s.client.do(ctx, http.MethodGet, route, nil, &resp); err != nil {
		if isDecodeError(err) {
			s.client.logger.WarnContext(ctx, "malformed pattern list", xslog.Error(err))
			return []Pattern{}, nil
		}
		return nil, err
	}
	if resp.Patterns == nil {
		return []Pattern{}, nil
	}
	return resp.Patterns, nil
}

func (s *patternService) Run(ctx context.Context, id int) (*RunResult, error) {
	route := "/api/led/pattern/" + strconv.Itoa(id)

	var result RunResult
	if err := s.client.do(ctx, http.MethodPost, route, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *patternService) Stop(ctx context.Context) error {
	const route = "/api/led/stop"
	return s.client.do(ctx, http.MethodPost, route, nil, &ack{})
}

func (s *patternService) Upload(ctx context.Context, raw []byte) (*UploadResult, error) {
	const route = "/api/led/pattern/json"

	var result UploadResult
	err := s.client.send(ctx, request{
		method:      http.MethodPost,
		path:        route,
		body:        raw,
		contentType: "application/json",
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
