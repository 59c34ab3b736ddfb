// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syncer

import (
	"github.com/prometheus/client_golang/prometheus"

	m "github.com/farcasterhub/hub/pkg/metrics"
)

type metrics struct {
	SyncRounds           prometheus.Counter // number of reconciliation rounds started
	SyncErrors           prometheus.Counter // number of peer RPC failures during sync
	SyncIdsFetched       prometheus.Counter // number of sync ids fetched from peers
	MessagesMerged       prometheus.Counter // number of messages merged through sync
	MergeFailures        prometheus.Counter // number of merges that failed terminally
	DependencyRecoveries prometheus.Counter // number of unknown-user recovery attempts
	TrieInserts          prometheus.Counter // number of trie inserts from storage events
	TrieDeletes          prometheus.Counter // number of trie deletes from storage events
}

func newMetrics() metrics {
	subsystem := "syncer"

	return metrics{
		SyncRounds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "sync_rounds",
			Help:      "Total reconciliation rounds started.",
		}),
		SyncErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "sync_errors",
			Help:      "Total peer RPC failures during sync.",
		}),
		SyncIdsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "sync_ids_fetched",
			Help:      "Total sync ids fetched from peers.",
		}),
		MessagesMerged: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "messages_merged",
			Help:      "Total messages merged through sync.",
		}),
		MergeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "merge_failures",
			Help:      "Total message merges that failed terminally.",
		}),
		DependencyRecoveries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "dependency_recoveries",
			Help:      "Total unknown-user recovery attempts.",
		}),
		TrieInserts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "trie_inserts",
			Help:      "Total trie inserts driven by storage events.",
		}),
		TrieDeletes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "trie_deletes",
			Help:      "Total trie deletes driven by storage events.",
		}),
	}
}

func (e *Engine) Metrics() []prometheus.Collector {
	return m.PrometheusCollectorsFromFields(e.metrics)
}
