package pixels

import (
	"fmt"
	"maps"
	"slices"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/brokerguard/dbp/internal/logger"
)

var pixelsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dbp_pixels_total",
	Help: "Telemetry pixels fired by name",
}, []string{"pixel"})

// Pixel is a named telemetry event.
// Params never carry personal data, only broker names, counts and error kinds.
type Pixel struct {
	Name   string
	Params map[string]string
}

// Handler delivers pixels
//
//go:generate mockgen -source=pixels.go -destination=../mocks/pixels.go -package=mocks -mock_names=Handler=MockPixelHandler
type Handler interface {
	Fire(pixel Pixel)
}

// handler logs pixels and counts them
type handler struct {
	log *zap.Logger
}

// NewHandler creates the default pixel handler
func NewHandler() Handler {
	return &handler{log: logger.Named("pixels")}
}

func (h *handler) Fire(pixel Pixel) {
	pixelsTotal.WithLabelValues(pixel.Name).Inc()

	fields := []zap.Field{
		zap.String("pixel", pixel.Name),
		zap.String("pixel_id", ulid.Make().String()),
	}
	for _, k := range slices.Sorted(maps.Keys(pixel.Params)) {
		fields = append(fields, zap.String(k, pixel.Params[k]))
	}
	h.log.Info("Pixel fired", fields...)
}

const (
	ScanSucceeded     = "dbp.scan.succeeded"
	ScanFailed        = "dbp.scan.failed"
	OptOutSubmitted   = "dbp.optout.submitted"
	OptOutFailed      = "dbp.optout.failed"
	ProfileReappeared = "dbp.optout.reappeared"
)

// New builds a pixel from alternating key and value params
func New(name string, kv ...string) Pixel {
	p := Pixel{Name: name}
	if len(kv) > 0 {
		p.Params = make(map[string]string, len(kv)/2)
		for i := 0; i+1 < len(kv); i += 2 {
			p.Params[kv[i]] = kv[i+1]
		}
	}
	return p
}

// OptOutConfirmation reports whether a submitted opt-out was confirmed within the given days
func OptOutConfirmation(days int, confirmed bool, broker string) Pixel {
	state := "Unconfirmed"
	if confirmed {
		state = "Confirmed"
	}
	return New(fmt.Sprintf("dbp.optOut%s%dDays", state, days), "data_broker", broker)
}

// IPCCalled is fired before an IPC verb is sent
func IPCCalled(verb string) Pixel {
	return New(fmt.Sprintf("ipc.%s.called", verb))
}

// IPCAcknowledged is fired when the agent acknowledged an IPC verb
func IPCAcknowledged(verb string) Pixel {
	return New(fmt.Sprintf("ipc.%s.acknowledged", verb))
}

// IPCFailed is fired when an IPC verb was not acknowledged
func IPCFailed(verb string, err error) Pixel {
	return New(fmt.Sprintf("ipc.%s.failed", verb), "error", err.Error())
}
