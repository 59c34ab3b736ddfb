// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"

	m "github.com/farcasterhub/hub/pkg/metrics"
)

func TestPrometheusCollectorsFromFields(t *testing.T) {
	s := struct {
		TotalRequests prometheus.Counter
		Depth         prometheus.Gauge
		notExported   prometheus.Counter
		SomeString    string
	}{
		TotalRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "total_requests",
			Help: "Total requests.",
		}),
		Depth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "depth",
			Help: "Current depth.",
		}),
		notExported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "not_exported",
			Help: "This metric should not be discoverable.",
		}),
		SomeString: "not a collector",
	}

	collectors := m.PrometheusCollectorsFromFields(s)

	if len(collectors) != 2 {
		t.Fatalf("got %d collectors, want 2", len(collectors))
	}
}
