// Package storage keeps the simulated device's LED state and per-client rate
// limits behind a pluggable backend.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/garrettladley/lumi/internal/color"
)

// Faces is the number of faces a device exposes.
const Faces = 8

var (
	ErrNotFound    = errors.New("state not found")
	ErrFaceRange   = errors.New("face out of range")
	ErrUnknownKind = errors.New("unknown storage backend")
)

type RateLimitResult struct {
	Allowed    bool
	RetryAfter time.Duration
}

type RateLimiter interface {
	Allow(ctx context.Context, key string) (RateLimitResult, error)
}

// Pattern is the pattern the device is currently running.
type Pattern struct {
	ID int `json:"id"`
	// Name is the built-in pattern name, or the name carried by an uploaded
	// document.
	Name   string `json:"name"`
	Custom bool   `json:"custom"`
}

type DeviceState struct {
	Faces   [Faces]color.RGB
	Pattern *Pattern
}

// Lit counts faces that are not black.
func (s DeviceState) Lit() int {
	n := 0
	for _, c := range s.Faces {
		if c != color.Black {
			n++
		}
	}
	return n
}

type DeviceStore interface {
	State(ctx context.Context) (DeviceState, error)
	SetFace(ctx context.Context, face int, c color.RGB) error
	// Fill writes c to every face. Filling with black is a reset.
	Fill(ctx context.Context, c color.RGB) error
	// SetPattern records the running pattern; nil means none.
	SetPattern(ctx context.Context, p *Pattern) error
}

type Backend interface {
	RateLimiter
	DeviceStore

	Close() error

	Ping(ctx context.Context) error
}

func checkFace(face int) error {
	if face < 0 || face >= Faces {
		return fmt.Errorf("%w: %d", ErrFaceRange, face)
	}
	return nil
}
