// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node wires the hub together: storage, the sync trie and
// engine, the libp2p transport with its protocols, gossip, and the
// HTTP API.
package node

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	ma "github.com/multiformats/go-multiaddr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/farcasterhub/hub/pkg/api"
	"github.com/farcasterhub/hub/pkg/gossip"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	m "github.com/farcasterhub/hub/pkg/metrics"
	"github.com/farcasterhub/hub/pkg/p2p/libp2p"
	"github.com/farcasterhub/hub/pkg/peersync"
	"github.com/farcasterhub/hub/pkg/storage"
	"github.com/farcasterhub/hub/pkg/storage/leveldbstore"
	"github.com/farcasterhub/hub/pkg/syncer"
)

type Options struct {
	DataDir      string
	APIAddr      string
	DebugAPIAddr string
	P2PAddr      string
	DisableWS    bool
	Bootnodes    []string
	Logger       logging.Logger
}

type Hub struct {
	store      *leveldbstore.Store
	engine     *syncer.Engine
	p2pService *libp2p.Service
	gossipSvc  *gossip.Service
	apiServer  *http.Server
	debugSrv   *http.Server
	logger     logging.Logger

	quit chan struct{}
	wg   sync.WaitGroup
}

func New(ctx context.Context, o Options) (*Hub, error) {
	logger := o.Logger

	var (
		store *leveldbstore.Store
		err   error
	)
	if o.DataDir == "" {
		logger.Warning("no data directory configured, using in-memory message store")
		store, err = leveldbstore.NewInMemory(logger)
	} else {
		store, err = leveldbstore.New(filepath.Join(o.DataDir, "messages"), logger)
	}
	if err != nil {
		return nil, fmt.Errorf("message store: %w", err)
	}

	trie := merkletrie.New()
	engine := syncer.New(trie, store, logger)
	if err := engine.Initialize(ctx); err != nil {
		return nil, err
	}

	p2pService, err := libp2p.New(ctx, libp2p.Options{
		Addr:      o.P2PAddr,
		DisableWS: o.DisableWS,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("p2p service: %w", err)
	}

	peersyncSvc := peersync.New(peersync.Options{
		Streamer: p2pService,
		Trie:     trie,
		Storage:  store,
		Logger:   logger,
	})
	if err := p2pService.AddProtocol(peersyncSvc.Protocol()); err != nil {
		return nil, fmt.Errorf("peersync protocol: %w", err)
	}

	gossipSvc := gossip.New(gossip.Options{
		Streamer:      p2pService,
		Peers:         p2pService,
		Engine:        engine,
		Clients:       peersyncSvc,
		Storage:       store,
		Self:          p2pService.Self(),
		GossipAddress: addrFromListen(o.P2PAddr),
		RPCAddress:    addrFromListen(o.P2PAddr),
		Logger:        logger,
	})
	if err := p2pService.AddProtocol(gossipSvc.Protocol()); err != nil {
		return nil, fmt.Errorf("gossip protocol: %w", err)
	}

	h := &Hub{
		store:      store,
		engine:     engine,
		p2pService: p2pService,
		gossipSvc:  gossipSvc,
		logger:     logger,
		quit:       make(chan struct{}),
	}

	// rebroadcast committed messages on the primary gossip topic
	h.startRebroadcast(store, gossipSvc)

	for _, a := range o.Bootnodes {
		addr, err := ma.NewMultiaddr(a)
		if err != nil {
			return nil, fmt.Errorf("bootnode %s: %w", a, err)
		}
		peer, err := p2pService.Connect(ctx, addr)
		if err != nil {
			logger.Errorf("connect to bootnode %s: %v", a, err)
			continue
		}
		logger.Infof("connected to bootnode %s", peer)
	}

	gossipSvc.Start()

	addrs, err := p2pService.Addresses()
	if err != nil {
		return nil, err
	}
	for _, addr := range addrs {
		logger.Infof("p2p address: %s", addr)
	}

	apiService := api.New(api.Options{
		Storage: store,
		Trie:    trie,
		Logger:  logger,
	})

	if o.APIAddr != "" {
		apiListener, err := net.Listen("tcp", o.APIAddr)
		if err != nil {
			return nil, fmt.Errorf("api listener: %w", err)
		}

		apiServer := &http.Server{
			Handler:           apiService,
			ReadHeaderTimeout: 5 * time.Second,
		}
		h.apiServer = apiServer

		h.wg.Add(1)
		go func() {
			defer h.wg.Done()

			logger.Infof("api address: %s", apiListener.Addr())
			if err := apiServer.Serve(apiListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("api server: %v", err)
			}
		}()
	}

	if o.DebugAPIAddr != "" {
		registry := newMetricsRegistry(
			engine, gossipSvc, peersyncSvc, p2pService, apiService,
		)

		debugListener, err := net.Listen("tcp", o.DebugAPIAddr)
		if err != nil {
			return nil, fmt.Errorf("debug api listener: %w", err)
		}

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.InstrumentMetricHandler(
			registry, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		))
		debugSrv := &http.Server{
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		h.debugSrv = debugSrv

		h.wg.Add(1)
		go func() {
			defer h.wg.Done()

			logger.Infof("debug api address: %s", debugListener.Addr())
			if err := debugSrv.Serve(debugListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Errorf("debug api server: %v", err)
			}
		}()
	}

	return h, nil
}

// startRebroadcast forwards committed messages to connected peers.
// Duplicate merges emit no events, which keeps the gossip loop from
// echoing forever.
func (h *Hub) startRebroadcast(sub storage.Subscriber, g *gossip.Service) {
	c, unsubscribe := sub.SubscribeEvents()

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer unsubscribe()

		for {
			select {
			case ev, ok := <-c:
				if !ok {
					return
				}
				if ev.Kind != storage.EventMessageMerged {
					continue
				}
				if err := g.BroadcastMessage(context.Background(), ev.Message); err != nil {
					h.logger.Debugf("rebroadcast message %s: %v", ev.Message.Hash, err)
				}
			case <-h.quit:
				return
			}
		}
	}()
}

func newMetricsRegistry(collectorsList ...m.Collector) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	for _, c := range collectorsList {
		registry.MustRegister(c.Metrics()...)
	}
	return registry
}

// addrFromListen derives the advertised host and port from a listen
// address, or nil when it cannot be parsed.
func addrFromListen(listen string) *gossip.Addr {
	host, portStr, err := net.SplitHostPort(listen)
	if err != nil {
		return nil
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil
	}
	if host == "" {
		host = "0.0.0.0"
	}
	return &gossip.Addr{Host: host, Port: port}
}

func (h *Hub) Close() error {
	close(h.quit)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if h.apiServer != nil {
		if err := h.apiServer.Shutdown(ctx); err != nil {
			h.logger.Errorf("api server shutdown: %v", err)
		}
	}
	if h.debugSrv != nil {
		if err := h.debugSrv.Shutdown(ctx); err != nil {
			h.logger.Errorf("debug api server shutdown: %v", err)
		}
	}

	if err := h.gossipSvc.Close(); err != nil {
		h.logger.Errorf("gossip shutdown: %v", err)
	}
	if err := h.p2pService.Close(); err != nil {
		h.logger.Errorf("p2p shutdown: %v", err)
	}
	if err := h.engine.Close(); err != nil {
		h.logger.Errorf("sync engine shutdown: %v", err)
	}

	h.wg.Wait()

	return h.store.Close()
}
