package lumi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/lumi/internal/color"
)

type faceService struct {
	client *Client
}

func (s *faceService) Set(ctx context.Context, face int, rgb color.RGB) (*FaceResult, error) {
	if face < 0 || face >= Faces {
		return nil, fmt.Errorf("face %d out of range [0,%d)", face, Faces)
	}
	route := "/api/led/face/" + strconv.Itoa(face)

	var result FaceResult
	if err := s.client.do(ctx, http.MethodPost, route, rgb.Query(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *faceService) SetAll(ctx context.Context, rgb color.RGB) error {
	g, ctx := errgroup.WithContext(ctx)
	for face := range Faces {
		g.Go(func() error {
			if _, err := s.Set(ctx, face, rgb); err != nil {
				return fmt.Errorf("face %d: %w", face, err)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *faceService) Reset(ctx context.Context) error {
	const route = "/api/led/reset"
	return s.client.do(ctx, http.MethodPost, route, nil, &ack{})
}
