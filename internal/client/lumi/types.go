package lumi

import (
	"time"

	"github.com/garrettladley/lumi/internal/color"
)

// Faces is the number of independently addressable faces.
const Faces = 8

type Status struct {
	Status string `json:"status"`
	Device string `json:"device"`
	// UptimeSeconds is seconds since the device booted.
	UptimeSeconds int64 `json:"uptime"`
}

func (s *Status) Uptime() time.Duration {
	return time.Duration(s.UptimeSeconds) * time.Second
}

type Pattern struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Channels struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func (c Channels) RGB() color.RGB { return color.RGB{R: c.R, G: c.G, B: c.B} }

type FaceResult struct {
	Status string   `json:"status"`
	Face   int      `json:"face"`
	Color  Channels `json:"color"`
}

type RunResult struct {
	Status  string `json:"status"`
	Pattern int    `json:"pattern"`
	Name    string `json:"name"`
}

type UploadResult struct {
	Status  string `json:"status"`
	Pattern string `json:"pattern"`
}

type ack struct {
	Status string `json:"status"`
}
