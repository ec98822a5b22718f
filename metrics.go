// Copyright 2026 Canonical Ltd.
// Licensed under the LGPLv3, see LICENCE file for details.

package jwm

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "jwm"

const (
	resultValid   = "valid"
	resultInvalid = "invalid"
	resultError   = "error"
)

// Collector is a prometheus.Collector that counts verification
// outcomes. Callers own its registration.
type Collector struct {
	verifications *prometheus.CounterVec
}

// NewMetricsCollector returns a new Collector.
func NewMetricsCollector() *Collector {
	return &Collector{
		verifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "verifications_total",
				Help:      "The number of token verifications, by result.",
			}, []string{"result"},
		),
	}
}

// Describe is part of the prometheus.Collector interface.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.verifications.Describe(ch)
}

// Collect is part of the prometheus.Collector interface.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.verifications.Collect(ch)
}

func (c *Collector) observe(result string) {
	if c == nil {
		return
	}
	c.verifications.WithLabelValues(result).Inc()
}
