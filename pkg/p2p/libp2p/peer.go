// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package libp2p

import (
	"sync"

	"github.com/libp2p/go-libp2p-core/network"
	libp2ppeer "github.com/libp2p/go-libp2p-core/peer"
	ma "github.com/multiformats/go-multiaddr"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/p2p"
)

// peerRegistry tracks connected peers through libp2p network events.
type peerRegistry struct {
	connected map[libp2ppeer.ID]struct{}
	onConnect func()
	mu        sync.RWMutex
}

var _ network.Notifiee = (*peerRegistry)(nil)

func newPeerRegistry() *peerRegistry {
	return &peerRegistry{
		connected: make(map[libp2ppeer.ID]struct{}),
	}
}

func (r *peerRegistry) setConnectedHandler(fn func()) {
	r.mu.Lock()
	r.onConnect = fn
	r.mu.Unlock()
}

func (r *peerRegistry) peers() []p2p.Peer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ps := make([]p2p.Peer, 0, len(r.connected))
	for id := range r.connected {
		ps = append(ps, p2p.Peer{Address: farcaster.NewPeerID([]byte(id))})
	}
	return ps
}

func (r *peerRegistry) remove(id libp2ppeer.ID) {
	r.mu.Lock()
	delete(r.connected, id)
	r.mu.Unlock()
}

func (r *peerRegistry) Connected(_ network.Network, c network.Conn) {
	r.mu.Lock()
	r.connected[c.RemotePeer()] = struct{}{}
	fn := r.onConnect
	r.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (r *peerRegistry) Disconnected(_ network.Network, c network.Conn) {
	r.remove(c.RemotePeer())
}

func (r *peerRegistry) Listen(network.Network, ma.Multiaddr) {}

func (r *peerRegistry) ListenClose(network.Network, ma.Multiaddr) {}

func (r *peerRegistry) OpenedStream(network.Network, network.Stream) {}

func (r *peerRegistry) ClosedStream(network.Network, network.Stream) {}
