// Package simulator serves the device's HTTP API over a storage backend, for
// development without the hardware.
package simulator

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/garrettladley/lumi/internal/color"
	"github.com/garrettladley/lumi/internal/storage"
	"github.com/garrettladley/lumi/internal/validator"
	"github.com/garrettladley/lumi/internal/xcontext"
	"github.com/garrettladley/lumi/internal/xerrors"
	"github.com/garrettladley/lumi/internal/xhttp"
	"github.com/garrettladley/lumi/internal/xslog"
)

// maxUploadBytes bounds an uploaded pattern document.
const maxUploadBytes = 64 << 10

// defaultChannels is used for any of r, g, b missing from a face request.
var defaultChannels = [3]int{255, 0, 0}

type Handler struct {
	store   storage.DeviceStore
	device  string
	started time.Time
	now     func() time.Time
}

type Option func(*Handler)

// WithClock replaces time.Now for uptime reporting.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

func NewHandler(store storage.DeviceStore, device string, opts ...Option) *Handler {
	h := &Handler{
		store:  store,
		device: device,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.started = h.now()
	return h
}

type statusResponse struct {
	Status string `json:"status"`
	Device string `json:"device"`
	Uptime int64  `json:"uptime"`
}

// HandleStatus handles GET /api/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, statusResponse{
		Status: xhttp.StatusOK,
		Device: h.device,
		Uptime: int64(h.now().Sub(h.started) / time.Second),
	})
}

type channels struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

type faceResponse struct {
	Status string   `json:"status"`
	Face   int      `json:"face"`
	Color  channels `json:"color"`
}

// HandleSetFace handles POST /api/led/face/{face}?r=&g=&b=.
func (h *Handler) HandleSetFace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	face, err := strconv.Atoi(r.PathValue("face"))
	if err != nil || face < 0 || face >= storage.Faces {
		xerrors.WriteError(ctx, w, xerrors.NotFound(xerrors.WithMessage("Not found")))
		return
	}

	q := r.URL.Query()
	ch := channels{
		R: channel(q, "r", defaultChannels[0]),
		G: channel(q, "g", defaultChannels[1]),
		B: channel(q, "b", defaultChannels[2]),
	}
	rgb := color.RGB{R: uint8(ch.R), G: uint8(ch.G), B: uint8(ch.B)}

	if err := h.store.SetFace(ctx, face, rgb); err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to set face"), xerrors.WithCause(err)))
		return
	}

	xslog.FromContext(ctx).DebugContext(ctx, "face set",
		xslog.Face(face),
		xslog.Color(rgb.Hex()),
	)

	xhttp.WriteOK(w, faceResponse{Status: xhttp.StatusOK, Face: face, Color: ch})
}

// HandleReset handles POST /api/led/reset. The running pattern is left alone.
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.store.Fill(ctx, color.Black); err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to reset"), xerrors.WithCause(err)))
		return
	}
	xhttp.WriteAck(w)
}

type patternsResponse struct {
	Patterns []patternEntry `json:"patterns"`
}

// HandlePatterns handles GET /api/led/patterns.
func (h *Handler) HandlePatterns(w http.ResponseWriter, _ *http.Request) {
	xhttp.WriteOK(w, patternsResponse{Patterns: patternList()})
}

type runResponse struct {
	Status  string `json:"status"`
	Pattern int    `json:"pattern"`
	Name    string `json:"name"`
}

// HandleRunPattern handles POST /api/led/pattern/{id}.
func (h *Handler) HandleRunPattern(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(r.PathValue("id"))
	name, ok := patternName(id)
	if err != nil || !ok {
		xerrors.WriteError(ctx, w, xerrors.NotFound(xerrors.WithMessage("Not found")))
		return
	}

	if err := h.store.SetPattern(ctx, &storage.Pattern{ID: id, Name: name}); err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to run pattern"), xerrors.WithCause(err)))
		return
	}

	xslog.FromContext(ctx).InfoContext(ctx, "pattern started",
		xslog.PatternID(id),
		xslog.PatternName(name),
	)

	xhttp.WriteOK(w, runResponse{Status: xhttp.StatusOK, Pattern: id, Name: name})
}

// HandleStop handles POST /api/led/stop: the pattern is cleared and every
// face goes dark.
func (h *Handler) HandleStop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.store.SetPattern(ctx, nil); err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to stop pattern"), xerrors.WithCause(err)))
		return
	}
	if err := h.store.Fill(ctx, color.Black); err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to stop pattern"), xerrors.WithCause(err)))
		return
	}
	xhttp.WriteAck(w)
}

type uploadResponse struct {
	Status  string `json:"status"`
	Pattern string `json:"pattern"`
}

// HandleUploadPattern handles POST /api/led/pattern/json. Only the
// document's structure is checked before it becomes the running pattern.
func (h *Handler) HandleUploadPattern(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxUploadBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage(
				fmt.Sprintf("JSON parsing failed: document exceeds %d bytes", tooLarge.Limit))))
			return
		}
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("failed to read body"), xerrors.WithCause(err)))
		return
	}

	doc, err := parsePatternDocument(raw)
	if err != nil {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("JSON parsing failed: "+err.Error())))
		return
	}
	if verr := validator.Validate(doc); verr != nil {
		xerrors.WriteError(ctx, w, verr)
		return
	}

	name := doc.Name()
	if err := h.store.SetPattern(ctx, &storage.Pattern{ID: customPatternID, Name: name, Custom: true}); err != nil {
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to store pattern"), xerrors.WithCause(err)))
		return
	}

	logger.InfoContext(ctx, "custom pattern uploaded",
		xslog.PatternName(name),
		xslog.Bytes(len(raw)),
	)

	xhttp.WriteOK(w, uploadResponse{Status: xhttp.StatusOK, Pattern: name})
}

// HandleHealth reports 503 once the server has started draining.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if xcontext.IsShutdownInProgress(r.Context()) {
		xerrors.WriteError(r.Context(), w, xerrors.ServiceUnavailable(xerrors.WithMessage("shutting down")))
		return
	}
	xhttp.WriteAck(w)
}

// HandleNotFound answers every unknown path the way the firmware does.
func (h *Handler) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	xerrors.WriteError(r.Context(), w, xerrors.NotFound(xerrors.WithMessage("Not found")))
}
