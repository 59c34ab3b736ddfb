// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package libp2p implements the p2p.Service interface on top of a
// libp2p host. The libp2p peer identity is the hub identity; there is
// no separate overlay handshake.
package libp2p

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/libp2p/go-libp2p"
	crypto "github.com/libp2p/go-libp2p-core/crypto"
	"github.com/libp2p/go-libp2p-core/host"
	"github.com/libp2p/go-libp2p-core/network"
	libp2ppeer "github.com/libp2p/go-libp2p-core/peer"
	"github.com/libp2p/go-libp2p-core/peerstore"
	protocol "github.com/libp2p/go-libp2p-core/protocol"
	"github.com/libp2p/go-libp2p-peerstore/pstoremem"
	tcp "github.com/libp2p/go-tcp-transport"
	ws "github.com/libp2p/go-ws-transport"
	ma "github.com/multiformats/go-multiaddr"
	"github.com/multiformats/go-multistream"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/p2p"
)

var _ p2p.Service = (*Service)(nil)

type Service struct {
	host            host.Host
	libp2pPeerstore peerstore.Peerstore
	metrics         metrics
	peers           *peerRegistry
	protocols       []p2p.ProtocolSpec
	logger          logging.Logger
}

type Options struct {
	PrivateKey crypto.PrivKey
	Addr       string
	DisableWS  bool
	Logger     logging.Logger
}

func New(ctx context.Context, o Options) (*Service, error) {
	host, port, err := net.SplitHostPort(o.Addr)
	if err != nil {
		return nil, fmt.Errorf("address: %w", err)
	}

	ip4Addr := "0.0.0.0"
	ip6Addr := "::1"

	if host != "" {
		ip := net.ParseIP(host)
		if ip4 := ip.To4(); ip4 != nil {
			ip4Addr = ip4.String()
			ip6Addr = ""
		} else if ip6 := ip.To16(); ip6 != nil {
			ip6Addr = ip6.String()
			ip4Addr = ""
		}
	}

	var listenAddrs []string
	if ip4Addr != "" {
		listenAddrs = append(listenAddrs, fmt.Sprintf("/ip4/%s/tcp/%s", ip4Addr, port))
		if !o.DisableWS {
			listenAddrs = append(listenAddrs, fmt.Sprintf("/ip4/%s/tcp/%s/ws", ip4Addr, port))
		}
	}

	if ip6Addr != "" {
		listenAddrs = append(listenAddrs, fmt.Sprintf("/ip6/%s/tcp/%s", ip6Addr, port))
		if !o.DisableWS {
			listenAddrs = append(listenAddrs, fmt.Sprintf("/ip6/%s/tcp/%s/ws", ip6Addr, port))
		}
	}

	libp2pPeerstore := pstoremem.NewPeerstore()

	opts := []libp2p.Option{
		libp2p.ListenAddrStrings(listenAddrs...),
		libp2p.DefaultSecurity,
		// Attempt to open ports using uPNP for NATed hosts.
		libp2p.NATPortMap(),
		// Use a dedicated peerstore instead of the global DefaultPeerstore.
		libp2p.Peerstore(libp2pPeerstore),
	}

	if o.PrivateKey != nil {
		opts = append(opts, libp2p.Identity(o.PrivateKey))
	}

	transports := []libp2p.Option{
		libp2p.Transport(tcp.NewTCPTransport),
	}
	if !o.DisableWS {
		transports = append(transports, libp2p.Transport(ws.New))
	}
	opts = append(opts, transports...)

	h, err := libp2p.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	peers := newPeerRegistry()
	s := &Service{
		host:            h,
		libp2pPeerstore: libp2pPeerstore,
		metrics:         newMetrics(),
		peers:           peers,
		logger:          o.Logger,
	}

	peers.setConnectedHandler(func() {
		s.metrics.HandledConnectionCount.Inc()
	})

	h.Network().Notify(peers) // update the peer registry on network events

	return s, nil
}

// Self returns the identity of this hub on the network.
func (s *Service) Self() farcaster.PeerID {
	return farcaster.NewPeerID([]byte(s.host.ID()))
}

func (s *Service) AddProtocol(p p2p.ProtocolSpec) (err error) {
	for _, ss := range p.StreamSpecs {
		ss := ss
		id := protocol.ID(p2p.NewHubStreamName(p.Name, p.Version, ss.Name))

		s.host.SetStreamHandler(id, func(stream network.Stream) {
			peer := p2p.Peer{Address: farcaster.NewPeerID([]byte(stream.Conn().RemotePeer()))}

			s.metrics.HandledStreamCount.Inc()
			if err := ss.Handler(context.Background(), peer, newStream(stream)); err != nil {
				var de *p2p.DisconnectError
				if errors.As(err, &de) {
					_ = s.Disconnect(peer.Address)
				}

				s.logger.Debugf("handle protocol %s/%s: stream %s: peer %s: %v", p.Name, p.Version, ss.Name, peer.Address, err)
			}
		})
	}

	s.protocols = append(s.protocols, p)
	return nil
}

func (s *Service) Addresses() (addrs []ma.Multiaddr, err error) {
	// Build the host multiaddress.
	hostAddr, err := ma.NewMultiaddr(fmt.Sprintf("/p2p/%s", s.host.ID().Pretty()))
	if err != nil {
		return nil, err
	}

	// Now we can build a full multiaddress to reach this host
	// by encapsulating both addresses:
	for _, addr := range s.host.Addrs() {
		addrs = append(addrs, addr.Encapsulate(hostAddr))
	}
	return addrs, nil
}

func (s *Service) Connect(ctx context.Context, addr ma.Multiaddr) (peer farcaster.PeerID, err error) {
	// Extract the peer ID from the multiaddr.
	info, err := libp2ppeer.AddrInfoFromP2pAddr(addr)
	if err != nil {
		return farcaster.ZeroPeerID, err
	}

	if err := s.host.Connect(ctx, *info); err != nil {
		return farcaster.ZeroPeerID, err
	}

	peer = farcaster.NewPeerID([]byte(info.ID))
	s.metrics.CreatedConnectionCount.Inc()
	s.logger.Infof("peer %s connected", peer)
	return peer, nil
}

func (s *Service) Disconnect(peer farcaster.PeerID) error {
	peerID := libp2ppeer.ID(peer.ByteString())
	if err := s.host.Network().ClosePeer(peerID); err != nil {
		return err
	}
	s.peers.remove(peerID)
	return nil
}

func (s *Service) Peers() []p2p.Peer {
	return s.peers.peers()
}

func (s *Service) NewStream(ctx context.Context, peer farcaster.PeerID, headers p2p.Headers, protocolName, protocolVersion, streamName string) (p2p.Stream, error) {
	peerID := libp2ppeer.ID(peer.ByteString())

	hubStreamName := p2p.NewHubStreamName(protocolName, protocolVersion, streamName)
	st, err := s.host.NewStream(ctx, peerID, protocol.ID(hubStreamName))
	if err != nil {
		if err == multistream.ErrNotSupported || err == multistream.ErrIncorrectVersion {
			return nil, p2p.NewIncompatibleStreamError(err)
		}
		return nil, fmt.Errorf("create stream %q to %q: %w", hubStreamName, peer, err)
	}
	s.metrics.CreatedStreamCount.Inc()
	return newStream(st), nil
}

func (s *Service) Close() error {
	if err := s.libp2pPeerstore.Close(); err != nil {
		return err
	}
	return s.host.Close()
}
