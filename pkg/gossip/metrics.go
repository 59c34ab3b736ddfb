// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gossip

import (
	"github.com/prometheus/client_golang/prometheus"

	m "github.com/farcasterhub/hub/pkg/metrics"
)

type metrics struct {
	EnvelopesSent     prometheus.Counter
	EnvelopesReceived prometheus.Counter
	InvalidEnvelopes  prometheus.Counter
	ContactsSent      prometheus.Counter
	ContactsReceived  prometheus.Counter
	SyncsTriggered    prometheus.Counter
	MessagesMerged    prometheus.Counter
	EventsMerged      prometheus.Counter
}

func newMetrics() metrics {
	subsystem := "gossip"

	return metrics{
		EnvelopesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "envelopes_sent",
			Help:      "Total gossip envelopes sent.",
		}),
		EnvelopesReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "envelopes_received",
			Help:      "Total gossip envelopes received.",
		}),
		InvalidEnvelopes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "invalid_envelopes",
			Help:      "Total malformed or unsupported gossip envelopes.",
		}),
		ContactsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "contacts_sent",
			Help:      "Total contact record broadcasts.",
		}),
		ContactsReceived: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "contacts_received",
			Help:      "Total contact records received.",
		}),
		SyncsTriggered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "syncs_triggered",
			Help:      "Total reconciliation rounds triggered by gossip.",
		}),
		MessagesMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "messages_merged",
			Help:      "Total gossiped messages merged into storage.",
		}),
		EventsMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "events_merged",
			Help:      "Total gossiped id registry events merged.",
		}),
	}
}

func (s *Service) Metrics() []prometheus.Collector {
	return m.PrometheusCollectorsFromFields(s.metrics)
}
