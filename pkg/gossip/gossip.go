// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gossip disseminates hub state over the network: contact
// records carrying the local trie snapshot every few seconds, and
// freshly merged messages as they commit. Received contact records
// drive the sync engine's reconciliation decision.
package gossip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	"github.com/farcasterhub/hub/pkg/p2p"
	"github.com/farcasterhub/hub/pkg/ratelimit"
	"github.com/farcasterhub/hub/pkg/storage"
	"github.com/farcasterhub/hub/pkg/syncer"
)

const (
	protocolName       = "gossip"
	protocolVersion    = "1.0.0"
	envelopeStreamName = "envelope"

	// ProtocolVersion tags every gossiped content object.
	ProtocolVersion = "V1"

	// TopicPrimary carries messages and id registry events.
	TopicPrimary = "f_network_topic_primary"
	// TopicContact carries contact records.
	TopicContact = "f_network_topic_contact"

	// ContactInterval is how often the local contact record is
	// republished.
	ContactInterval = 10 * time.Second

	mergeSource = "gossip"
)

var (
	limitRate  = time.Second
	limitBurst = 10

	errUnknownTopic = errors.New("unknown gossip topic")
	errBadVersion   = errors.New("unsupported gossip version")
	ErrRateLimited  = ratelimit.ErrRateLimitExceeded
)

// Envelope is the JSON wire format of a single gossiped datum.
type Envelope struct {
	Content json.RawMessage `json:"content"`
	Topics  []string        `json:"topics"`
}

// Addr is a host and port a peer can be reached on.
type Addr struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// ContactInfo is the contact record peers exchange on TopicContact.
// Receivers feed ExcludedHashes to the sync engine to decide whether to
// reconcile with the advertised peer.
type ContactInfo struct {
	Version        string   `json:"version"`
	PeerID         string   `json:"peerId"`
	GossipAddress  *Addr    `json:"gossipAddress,omitempty"`
	RPCAddress     *Addr    `json:"rpcAddress,omitempty"`
	ExcludedHashes []string `json:"excludedHashes"`
	Count          uint64   `json:"count"`
}

// Content is the payload carried on TopicPrimary: a merged message or
// an id registry event.
type Content struct {
	Version         string                     `json:"version"`
	Message         *farcaster.Message         `json:"message,omitempty"`
	IdRegistryEvent *farcaster.IdRegistryEvent `json:"idRegistryEvent,omitempty"`
}

// SyncEngine is the part of the sync engine gossip drives.
type SyncEngine interface {
	ShouldSync(theirExcludedHashes []string) bool
	PerformSync(ctx context.Context, theirExcludedHashes []string, peer syncer.PeerClient)
	Snapshot() merkletrie.TrieSnapshot
	Items() int
}

// ClientSource builds sync clients bound to individual peers.
type ClientSource interface {
	Client(peer farcaster.PeerID) syncer.PeerClient
}

// PeerLister lists currently connected peers.
type PeerLister interface {
	Peers() []p2p.Peer
}

type Service struct {
	streamer p2p.Streamer
	peers    PeerLister
	engine   SyncEngine
	clients  ClientSource
	storage  storage.Merger
	self     farcaster.PeerID
	rpcAddr  *Addr
	gossAddr *Addr
	logger   logging.Logger
	metrics  metrics

	inLimiter *ratelimit.Limiter
	syncSem   *semaphore.Weighted

	quit chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

type Options struct {
	Streamer      p2p.Streamer
	Peers         PeerLister
	Engine        SyncEngine
	Clients       ClientSource
	Storage       storage.Merger
	Self          farcaster.PeerID
	GossipAddress *Addr
	RPCAddress    *Addr
	Logger        logging.Logger
}

func New(o Options) *Service {
	return &Service{
		streamer:  o.Streamer,
		peers:     o.Peers,
		engine:    o.Engine,
		clients:   o.Clients,
		storage:   o.Storage,
		self:      o.Self,
		gossAddr:  o.GossipAddress,
		rpcAddr:   o.RPCAddress,
		logger:    o.Logger,
		metrics:   newMetrics(),
		inLimiter: ratelimit.New(limitRate, limitBurst),
		syncSem:   semaphore.NewWeighted(1),
		quit:      make(chan struct{}),
	}
}

func (s *Service) Protocol() p2p.ProtocolSpec {
	return p2p.ProtocolSpec{
		Name:    protocolName,
		Version: protocolVersion,
		StreamSpecs: []p2p.StreamSpec{
			{
				Name:    envelopeStreamName,
				Handler: s.envelopeHandler,
			},
		},
	}
}

// Start begins the periodic contact record broadcast. It runs until
// Close.
func (s *Service) Start() {
	s.once.Do(func() {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()

			ticker := time.NewTicker(ContactInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					s.broadcastContact(context.Background())
				case <-s.quit:
					return
				}
			}
		}()
	})
}

// BroadcastMessage publishes a merged message on the primary topic to
// every connected peer.
func (s *Service) BroadcastMessage(ctx context.Context, m *farcaster.Message) error {
	content, err := json.Marshal(Content{Version: ProtocolVersion, Message: m})
	if err != nil {
		return err
	}
	return s.broadcast(ctx, Envelope{Content: content, Topics: []string{TopicPrimary}})
}

// BroadcastIdRegistryEvent publishes an id registry event on the
// primary topic to every connected peer.
func (s *Service) BroadcastIdRegistryEvent(ctx context.Context, e *farcaster.IdRegistryEvent) error {
	content, err := json.Marshal(Content{Version: ProtocolVersion, IdRegistryEvent: e})
	if err != nil {
		return err
	}
	return s.broadcast(ctx, Envelope{Content: content, Topics: []string{TopicPrimary}})
}

func (s *Service) broadcastContact(ctx context.Context) {
	snapshot := s.engine.Snapshot()
	content, err := json.Marshal(ContactInfo{
		Version:        ProtocolVersion,
		PeerID:         s.self.String(),
		GossipAddress:  s.gossAddr,
		RPCAddress:     s.rpcAddr,
		ExcludedHashes: snapshot.ExcludedHashes,
		Count:          uint64(s.engine.Items()),
	})
	if err != nil {
		s.logger.Errorf("gossip: marshal contact info: %v", err)
		return
	}

	if err := s.broadcast(ctx, Envelope{Content: content, Topics: []string{TopicContact}}); err != nil {
		s.logger.Debugf("gossip: broadcast contact info: %v", err)
	}
	s.metrics.ContactsSent.Inc()
}

// broadcast delivers one envelope to every connected peer. A failure
// toward one peer does not stop delivery to the others.
func (s *Service) broadcast(ctx context.Context, env Envelope) error {
	var lastErr error
	for _, peer := range s.peers.Peers() {
		if err := s.send(ctx, peer.Address, env); err != nil {
			lastErr = err
			s.logger.Debugf("gossip: send to peer %s: %v", peer.Address, err)
		}
	}
	return lastErr
}

func (s *Service) send(ctx context.Context, peer farcaster.PeerID, env Envelope) (err error) {
	stream, err := s.streamer.NewStream(ctx, peer, nil, protocolName, protocolVersion, envelopeStreamName)
	if err != nil {
		return fmt.Errorf("new stream: %w", err)
	}
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()

	if err := json.NewEncoder(stream).Encode(env); err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	s.metrics.EnvelopesSent.Inc()
	return nil
}

// envelopeHandler consumes envelopes from a peer until the stream ends.
func (s *Service) envelopeHandler(ctx context.Context, p p2p.Peer, stream p2p.Stream) error {
	defer func() {
		_ = stream.FullClose()
	}()

	dec := json.NewDecoder(stream)
	for {
		var env Envelope
		if err := dec.Decode(&env); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.metrics.InvalidEnvelopes.Inc()
			return fmt.Errorf("decode envelope: %w", err)
		}
		s.metrics.EnvelopesReceived.Inc()

		if err := s.handleEnvelope(ctx, p.Address, env); err != nil {
			s.logger.Debugf("gossip: envelope from peer %s: %v", p.Address, err)
		}
	}
}

func (s *Service) handleEnvelope(ctx context.Context, peer farcaster.PeerID, env Envelope) error {
	for _, topic := range env.Topics {
		switch topic {
		case TopicContact:
			if err := s.handleContact(ctx, peer, env.Content); err != nil {
				return err
			}
		case TopicPrimary:
			if err := s.handleContent(ctx, peer, env.Content); err != nil {
				return err
			}
		default:
			s.metrics.InvalidEnvelopes.Inc()
			return fmt.Errorf("%w: %q", errUnknownTopic, topic)
		}
	}
	return nil
}

// handleContact feeds a received contact record to the sync engine and
// launches a reconciliation round when the snapshots disagree. At most
// one launch runs at a time; the engine additionally guards itself.
func (s *Service) handleContact(ctx context.Context, peer farcaster.PeerID, content json.RawMessage) error {
	var ci ContactInfo
	if err := json.Unmarshal(content, &ci); err != nil {
		s.metrics.InvalidEnvelopes.Inc()
		return fmt.Errorf("unmarshal contact info: %w", err)
	}
	if ci.Version != ProtocolVersion {
		s.metrics.InvalidEnvelopes.Inc()
		return fmt.Errorf("%w: %q", errBadVersion, ci.Version)
	}
	s.metrics.ContactsReceived.Inc()

	if !s.inLimiter.Allow(peer.ByteString(), 1) {
		return ErrRateLimited
	}

	if !s.engine.ShouldSync(ci.ExcludedHashes) {
		return nil
	}

	if !s.syncSem.TryAcquire(1) {
		return nil
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.syncSem.Release(1)

		s.metrics.SyncsTriggered.Inc()
		s.engine.PerformSync(context.Background(), ci.ExcludedHashes, s.clients.Client(peer))
	}()
	return nil
}

// handleContent merges a gossiped message or id registry event.
// Failures other than duplicates are expected while dependencies are
// missing; sync rounds recover those.
func (s *Service) handleContent(ctx context.Context, peer farcaster.PeerID, content json.RawMessage) error {
	var c Content
	if err := json.Unmarshal(content, &c); err != nil {
		s.metrics.InvalidEnvelopes.Inc()
		return fmt.Errorf("unmarshal content: %w", err)
	}
	if c.Version != ProtocolVersion {
		s.metrics.InvalidEnvelopes.Inc()
		return fmt.Errorf("%w: %q", errBadVersion, c.Version)
	}

	if c.IdRegistryEvent != nil {
		if err := s.storage.MergeIdRegistryEvent(ctx, c.IdRegistryEvent, mergeSource); err != nil {
			return fmt.Errorf("merge id registry event: %w", err)
		}
		s.metrics.EventsMerged.Inc()
	}
	if c.Message != nil {
		if err := s.storage.MergeMessage(ctx, c.Message, mergeSource); err != nil {
			return fmt.Errorf("merge message %s: %w", c.Message.Hash, err)
		}
		s.metrics.MessagesMerged.Inc()
	}
	return nil
}

func (s *Service) Close() error {
	close(s.quit)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		s.wg.Wait()
	}()

	select {
	case <-stopped:
		return nil
	case <-time.After(time.Second * 5):
		return errors.New("gossip: waited 5 seconds to close active goroutines")
	}
}
