// Package metrics holds the prometheus collectors of the studio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Renders counts finished renders by target (preview, png, svg).
	Renders = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "qrkitchen_renders_total",
			Help: "Number of rendered codes, differentiated by target.",
		},
		[]string{"target"},
	)

	// RenderFailures counts renders that failed, by target.
	RenderFailures = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "qrkitchen_render_failures_total",
			Help: "Number of failed renders, differentiated by target.",
		},
		[]string{"target"},
	)

	// Actions counts dispatched studio actions by name.
	Actions = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "qrkitchen_actions_total",
			Help: "Number of dispatched studio actions, differentiated by action.",
		},
		[]string{"action"},
	)

	// Scans counts decoded scans by classified kind.
	Scans = promauto.NewCounterVec( //nolint:gochecknoglobals
		prometheus.CounterOpts{
			Name: "qrkitchen_scans_total",
			Help: "Number of decoded scans, differentiated by classified content type.",
		},
		[]string{"kind"},
	)

	// Sessions is the number of live studio sessions.
	Sessions = promauto.NewGauge( //nolint:gochecknoglobals
		prometheus.GaugeOpts{
			Name: "qrkitchen_sessions",
			Help: "Number of live studio sessions.",
		},
	)
)
