// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peersync

import (
	"github.com/prometheus/client_golang/prometheus"

	m "github.com/farcasterhub/hub/pkg/metrics"
)

type metrics struct {
	MetadataRequests  prometheus.Counter
	IdsRequests       prometheus.Counter
	MessagesRequests  prometheus.Counter
	CustodyRequests   prometheus.Counter
	SignersRequests   prometheus.Counter
	MessagesDelivered prometheus.Counter
	MetadataHandled   prometheus.Counter
	IdsHandled        prometheus.Counter
	MessagesHandled   prometheus.Counter
	CustodyHandled    prometheus.Counter
	SignersHandled    prometheus.Counter
}

func newMetrics() metrics {
	subsystem := "peersync"

	return metrics{
		MetadataRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "metadata_requests",
			Help:      "Total outgoing trie metadata requests.",
		}),
		IdsRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "ids_requests",
			Help:      "Total outgoing sync id requests.",
		}),
		MessagesRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "messages_requests",
			Help:      "Total outgoing message fetch requests.",
		}),
		CustodyRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "custody_requests",
			Help:      "Total outgoing custody event requests.",
		}),
		SignersRequests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "signers_requests",
			Help:      "Total outgoing signer message requests.",
		}),
		MessagesDelivered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "messages_delivered",
			Help:      "Total messages received from peers.",
		}),
		MetadataHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "metadata_handled",
			Help:      "Total handled trie metadata requests.",
		}),
		IdsHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "ids_handled",
			Help:      "Total handled sync id requests.",
		}),
		MessagesHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "messages_handled",
			Help:      "Total handled message fetch requests.",
		}),
		CustodyHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "custody_handled",
			Help:      "Total handled custody event requests.",
		}),
		SignersHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "signers_handled",
			Help:      "Total handled signer message requests.",
		}),
	}
}

func (s *Service) Metrics() []prometheus.Collector {
	return m.PrometheusCollectorsFromFields(s.metrics)
}
