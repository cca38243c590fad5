/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package metrics exposes Prometheus counters and histograms for network map
// queries on a registry of its own.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Query outcomes, used as the outcome label.
const (
	OutcomeSuccess     = "success"
	OutcomeNotFound    = "not_found"
	OutcomeBadRequest  = "bad_request"
	OutcomeServerError = "error"
)

// Scope label values.
const (
	ScopeNetwork    = "network"
	ScopeSubstation = "substations"
)

// DefaultBuckets are the query duration buckets, in seconds.
var DefaultBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Recorder records query metrics.
type Recorder struct {
	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with a fresh registry. Go runtime and
// process collectors are registered next to the query metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "networkmap",
			Name:      "queries_total",
			Help:      "Number of network map queries by kind, scope and outcome.",
		}, []string{"kind", "scope", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "networkmap",
			Name:      "query_duration_seconds",
			Help:      "Duration of network map queries by kind and scope.",
			Buckets:   DefaultBuckets,
		}, []string{"kind", "scope"}),
	}
	r.registry.MustRegister(
		r.queries,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveQuery records one finished query.
func (r *Recorder) ObserveQuery(kind string, scope string, outcome string, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.queries.WithLabelValues(kind, scope, outcome).Inc()
	r.duration.WithLabelValues(kind, scope).Observe(elapsed.Seconds())
}

// Registry returns the registry holding the query metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// ScopeOf returns the scope label for a list of substation ids.
func ScopeOf(substationIDs []string) string {
	if len(substationIDs) == 0 {
		return ScopeNetwork
	}
	return ScopeSubstation
}
