// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package p2p provides the peer-to-peer abstractions used
// across different protocols in the hub.
package p2p

import (
	"context"
	"io"

	ma "github.com/multiformats/go-multiaddr"

	"github.com/farcasterhub/hub/pkg/farcaster"
)

// Service provides methods to manage the underlying transport and the
// protocols registered on it.
type Service interface {
	AddProtocol(ProtocolSpec) error
	Connect(ctx context.Context, addr ma.Multiaddr) (peer farcaster.PeerID, err error)
	Disconnect(peer farcaster.PeerID) error
	Peers() []Peer
	Addresses() ([]ma.Multiaddr, error)
	Streamer
}

// Streamer opens new streams to connected peers.
type Streamer interface {
	NewStream(ctx context.Context, peer farcaster.PeerID, headers Headers, protocol, version, stream string) (Stream, error)
}

// Stream represents a bidirectional data stream to a peer.
type Stream interface {
	io.ReadWriter
	io.Closer
	FullClose() error
	Reset() error
}

// ProtocolSpec defines a collection of streams that the hub speaks
// under a common protocol name and version.
type ProtocolSpec struct {
	Name        string
	Version     string
	StreamSpecs []StreamSpec
}

// StreamSpec defines a stream and its handler.
type StreamSpec struct {
	Name    string
	Handler HandlerFunc
}

// Peer holds the identity of a connected peer.
type Peer struct {
	Address farcaster.PeerID
}

// Headers are optional per-stream key-value pairs sent before the
// protocol payload.
type Headers map[string][]byte

// HandlerFunc handles an incoming stream from a peer.
type HandlerFunc func(context.Context, Peer, Stream) error

// HandlerMiddleware wraps a HandlerFunc with additional behavior.
type HandlerMiddleware func(HandlerFunc) HandlerFunc

// NewHubStreamName constructs the fully qualified stream name used for
// protocol negotiation on the underlying transport.
func NewHubStreamName(protocol, version, stream string) string {
	return "/hub/" + protocol + "/" + version + "/" + stream
}
