package lumi

import (
	"context"

	"github.com/garrettladley/lumi/internal/color"
)

type FaceService interface {
	// Set writes one face. Black turns it off.
	Set(ctx context.Context, face int, rgb color.RGB) (*FaceResult, error)
	// SetAll writes rgb to every face concurrently. The first failure is
	// returned once all writes have finished.
	SetAll(ctx context.Context, rgb color.RGB) error
	Reset(ctx context.Context) error
}

type PatternService interface {
	// List returns the device's patterns. A body without a pattern array
	// yields an empty list rather than an error.
	List(ctx context.Context) ([]Pattern, error)
	Run(ctx context.Context, id int) (*RunResult, error)
	Stop(ctx context.Context) error
	// Upload sends a raw JSON pattern document. The client does not validate
	// it; the device's verdict comes back as an *APIError.
	Upload(ctx context.Context, raw []byte) (*UploadResult, error)
}

type StatusService interface {
	Get(ctx context.Context) (*Status, error)
}
