// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package api exposes the hub's read-only HTTP API: per-user message
// queries by type and the sync trie's metadata surface.
package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	m "github.com/farcasterhub/hub/pkg/metrics"
	"github.com/farcasterhub/hub/pkg/storage"
)

type Service interface {
	http.Handler
	m.Collector
}

type server struct {
	storage storage.Getter
	trie    *merkletrie.MerkleTrie
	logger  logging.Logger
	metrics metrics

	http.Handler
}

type Options struct {
	Storage storage.Getter
	Trie    *merkletrie.MerkleTrie
	Logger  logging.Logger
}

func New(o Options) Service {
	s := &server{
		storage: o.Storage,
		trie:    o.Trie,
		logger:  o.Logger,
		metrics: newMetrics(),
	}
	s.setupRouting()
	return s
}

type metrics struct {
	RequestCount prometheus.Counter
	ErrorCount   prometheus.Counter
}

func newMetrics() metrics {
	subsystem := "api"

	return metrics{
		RequestCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "request_count",
			Help:      "Number of API requests.",
		}),
		ErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "error_count",
			Help:      "Number of API requests that resulted in an error response.",
		}),
	}
}

func (s *server) Metrics() []prometheus.Collector {
	return m.PrometheusCollectorsFromFields(s.metrics)
}
