// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package peersync provides the sync RPC protocol implementation. It
// answers trie metadata, sync id, message, custody and signer queries
// from remote hubs, and exposes the same queries as a PeerClient for
// the local sync engine.
package peersync

import (
	"context"
	"fmt"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	"github.com/farcasterhub/hub/pkg/p2p"
	"github.com/farcasterhub/hub/pkg/p2p/protobuf"
	"github.com/farcasterhub/hub/pkg/peersync/pb"
	"github.com/farcasterhub/hub/pkg/storage"
)

const (
	protocolName    = "peersync"
	protocolVersion = "1.0.0"

	metadataStreamName = "metadata"
	idsStreamName      = "ids"
	messagesStreamName = "messages"
	custodyStreamName  = "custody"
	signersStreamName  = "signers"
)

type Service struct {
	streamer p2p.Streamer
	trie     *merkletrie.MerkleTrie
	storage  storage.Storer
	logger   logging.Logger
	metrics  metrics
}

type Options struct {
	Streamer p2p.Streamer
	Trie     *merkletrie.MerkleTrie
	Storage  storage.Storer
	Logger   logging.Logger
}

func New(o Options) *Service {
	return &Service{
		streamer: o.Streamer,
		trie:     o.Trie,
		storage:  o.Storage,
		logger:   o.Logger,
		metrics:  newMetrics(),
	}
}

func (s *Service) Protocol() p2p.ProtocolSpec {
	return p2p.ProtocolSpec{
		Name:    protocolName,
		Version: protocolVersion,
		StreamSpecs: []p2p.StreamSpec{
			{
				Name:    metadataStreamName,
				Handler: s.metadataHandler,
			},
			{
				Name:    idsStreamName,
				Handler: s.idsHandler,
			},
			{
				Name:    messagesStreamName,
				Handler: s.messagesHandler,
			},
			{
				Name:    custodyStreamName,
				Handler: s.custodyHandler,
			},
			{
				Name:    signersStreamName,
				Handler: s.signersHandler,
			},
		},
	}
}

// GetSyncMetadataByPrefix requests the trie node projection at prefix
// from a peer. An unknown prefix yields an empty projection.
func (s *Service) GetSyncMetadataByPrefix(ctx context.Context, peer farcaster.PeerID, prefix []byte) (md merkletrie.NodeMetadata, err error) {
	stream, err := s.streamer.NewStream(ctx, peer, nil, protocolName, protocolVersion, metadataStreamName)
	if err != nil {
		return md, fmt.Errorf("new stream: %w", err)
	}
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()
	s.metrics.MetadataRequests.Inc()

	w, r := protobuf.NewWriterAndReader(stream)

	if err = w.WriteMsgWithContext(ctx, &pb.GetMetadata{Prefix: prefix}); err != nil {
		return md, fmt.Errorf("write get metadata: %w", err)
	}

	var resp pb.Metadata
	if err = r.ReadMsgWithContext(ctx, &resp); err != nil {
		return md, fmt.Errorf("read metadata: %w", err)
	}

	return fromWireMetadata(&resp), nil
}

// GetSyncIdsByPrefix requests every SyncId a peer holds under prefix.
func (s *Service) GetSyncIdsByPrefix(ctx context.Context, peer farcaster.PeerID, prefix []byte) (ids []farcaster.SyncId, err error) {
	stream, err := s.streamer.NewStream(ctx, peer, nil, protocolName, protocolVersion, idsStreamName)
	if err != nil {
		return nil, fmt.Errorf("new stream: %w", err)
	}
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()
	s.metrics.IdsRequests.Inc()

	w, r := protobuf.NewWriterAndReader(stream)

	if err = w.WriteMsgWithContext(ctx, &pb.GetIds{Prefix: prefix}); err != nil {
		return nil, fmt.Errorf("write get ids: %w", err)
	}

	var resp pb.Ids
	if err = r.ReadMsgWithContext(ctx, &resp); err != nil {
		return nil, fmt.Errorf("read ids: %w", err)
	}

	for _, wireId := range resp.Ids {
		b, err := fromWireHex(wireId)
		if err != nil {
			s.logger.Debugf("peersync: peer %s sent malformed sync id %q: %v", peer, wireId, err)
			continue
		}
		ids = append(ids, farcaster.SyncIdFromBytes(b))
	}
	return ids, nil
}

// GetMessagesByHashes requests the messages behind the given hashes.
// Hashes unknown to the peer are silently absent from the response.
func (s *Service) GetMessagesByHashes(ctx context.Context, peer farcaster.PeerID, hashes []farcaster.Hash) (msgs []*farcaster.Message, err error) {
	stream, err := s.streamer.NewStream(ctx, peer, nil, protocolName, protocolVersion, messagesStreamName)
	if err != nil {
		return nil, fmt.Errorf("new stream: %w", err)
	}
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()
	s.metrics.MessagesRequests.Inc()

	w, r := protobuf.NewWriterAndReader(stream)

	req := &pb.GetMessages{}
	for _, h := range hashes {
		req.Hashes = append(req.Hashes, toWireHex(h.Bytes()))
	}
	if err = w.WriteMsgWithContext(ctx, req); err != nil {
		return nil, fmt.Errorf("write get messages: %w", err)
	}

	var resp pb.Messages
	if err = r.ReadMsgWithContext(ctx, &resp); err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}

	for _, wm := range resp.Messages {
		msgs = append(msgs, fromWireMessage(wm))
	}
	s.metrics.MessagesDelivered.Add(float64(len(msgs)))
	return msgs, nil
}

// GetCustodyEventByFid requests the custody event of a user.
func (s *Service) GetCustodyEventByFid(ctx context.Context, peer farcaster.PeerID, fid farcaster.FID) (e *farcaster.IdRegistryEvent, err error) {
	stream, err := s.streamer.NewStream(ctx, peer, nil, protocolName, protocolVersion, custodyStreamName)
	if err != nil {
		return nil, fmt.Errorf("new stream: %w", err)
	}
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()
	s.metrics.CustodyRequests.Inc()

	w, r := protobuf.NewWriterAndReader(stream)

	if err = w.WriteMsgWithContext(ctx, &pb.GetCustodyEvent{Fid: uint64(fid)}); err != nil {
		return nil, fmt.Errorf("write get custody event: %w", err)
	}

	var resp pb.CustodyEvent
	if err = r.ReadMsgWithContext(ctx, &resp); err != nil {
		return nil, fmt.Errorf("read custody event: %w", err)
	}

	return fromWireCustodyEvent(&resp), nil
}

// GetAllSignerMessagesByFid requests the signer add and remove messages
// of a user.
func (s *Service) GetAllSignerMessagesByFid(ctx context.Context, peer farcaster.PeerID, fid farcaster.FID) (msgs []*farcaster.Message, err error) {
	stream, err := s.streamer.NewStream(ctx, peer, nil, protocolName, protocolVersion, signersStreamName)
	if err != nil {
		return nil, fmt.Errorf("new stream: %w", err)
	}
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()
	s.metrics.SignersRequests.Inc()

	w, r := protobuf.NewWriterAndReader(stream)

	if err = w.WriteMsgWithContext(ctx, &pb.GetSignerMessages{Fid: uint64(fid)}); err != nil {
		return nil, fmt.Errorf("write get signer messages: %w", err)
	}

	var resp pb.Messages
	if err = r.ReadMsgWithContext(ctx, &resp); err != nil {
		return nil, fmt.Errorf("read signer messages: %w", err)
	}

	for _, wm := range resp.Messages {
		msgs = append(msgs, fromWireMessage(wm))
	}
	return msgs, nil
}

// metadataHandler answers a trie node projection query.
func (s *Service) metadataHandler(ctx context.Context, p p2p.Peer, stream p2p.Stream) (err error) {
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()
	s.metrics.MetadataHandled.Inc()

	w, r := protobuf.NewWriterAndReader(stream)

	var req pb.GetMetadata
	if err := r.ReadMsgWithContext(ctx, &req); err != nil {
		return fmt.Errorf("read get metadata: %w", err)
	}

	resp := &pb.Metadata{Prefix: req.Prefix}
	if md, ok := s.trie.NodeMetadata(req.Prefix); ok {
		resp = toWireMetadata(md)
	}

	if err := w.WriteMsgWithContext(ctx, resp); err != nil {
		return fmt.Errorf("write metadata: %w", err)
	}
	return nil
}

// idsHandler answers a sync id listing query.
func (s *Service) idsHandler(ctx context.Context, p p2p.Peer, stream p2p.Stream) (err error) {
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()
	s.metrics.IdsHandled.Inc()

	w, r := protobuf.NewWriterAndReader(stream)

	var req pb.GetIds
	if err := r.ReadMsgWithContext(ctx, &req); err != nil {
		return fmt.Errorf("read get ids: %w", err)
	}

	resp := &pb.Ids{}
	for _, id := range s.trie.Values(req.Prefix) {
		resp.Ids = append(resp.Ids, toWireHex(id.Bytes()))
	}

	if err := w.WriteMsgWithContext(ctx, resp); err != nil {
		return fmt.Errorf("write ids: %w", err)
	}
	return nil
}

// messagesHandler answers a message fetch. Unknown hashes are skipped
// rather than failing the batch.
func (s *Service) messagesHandler(ctx context.Context, p p2p.Peer, stream p2p.Stream) (err error) {
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()
	s.metrics.MessagesHandled.Inc()

	w, r := protobuf.NewWriterAndReader(stream)

	var req pb.GetMessages
	if err := r.ReadMsgWithContext(ctx, &req); err != nil {
		return fmt.Errorf("read get messages: %w", err)
	}

	resp := &pb.Messages{}
	for _, wireHash := range req.Hashes {
		b, err := fromWireHex(wireHash)
		if err != nil {
			s.logger.Debugf("peersync: peer %s requested malformed hash %q: %v", p.Address, wireHash, err)
			continue
		}
		m, err := s.storage.GetMessageByHash(ctx, farcaster.NewHash(b))
		if err != nil {
			s.logger.Debugf("peersync: peer %s requested unknown hash %q", p.Address, wireHash)
			continue
		}
		resp.Messages = append(resp.Messages, toWireMessage(m))
	}

	if err := w.WriteMsgWithContext(ctx, resp); err != nil {
		return fmt.Errorf("write messages: %w", err)
	}
	return nil
}

// custodyHandler answers a custody event query. An unknown user fails
// the stream; the requesting side treats it as a network failure.
func (s *Service) custodyHandler(ctx context.Context, p p2p.Peer, stream p2p.Stream) (err error) {
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()
	s.metrics.CustodyHandled.Inc()

	w, r := protobuf.NewWriterAndReader(stream)

	var req pb.GetCustodyEvent
	if err := r.ReadMsgWithContext(ctx, &req); err != nil {
		return fmt.Errorf("read get custody event: %w", err)
	}

	e, err := s.storage.GetCustodyEventByFid(ctx, farcaster.FID(req.Fid))
	if err != nil {
		return fmt.Errorf("get custody event fid %d: %w", req.Fid, err)
	}

	if err := w.WriteMsgWithContext(ctx, toWireCustodyEvent(e)); err != nil {
		return fmt.Errorf("write custody event: %w", err)
	}
	return nil
}

// signersHandler answers a signer message listing query.
func (s *Service) signersHandler(ctx context.Context, p p2p.Peer, stream p2p.Stream) (err error) {
	defer func() {
		if err != nil {
			_ = stream.Reset()
		} else {
			_ = stream.FullClose()
		}
	}()
	s.metrics.SignersHandled.Inc()

	w, r := protobuf.NewWriterAndReader(stream)

	var req pb.GetSignerMessages
	if err := r.ReadMsgWithContext(ctx, &req); err != nil {
		return fmt.Errorf("read get signer messages: %w", err)
	}

	resp := &pb.Messages{}
	for _, t := range []farcaster.MessageType{farcaster.MessageTypeSignerAdd, farcaster.MessageTypeSignerRemove} {
		ms, err := s.storage.GetMessagesByFid(ctx, farcaster.FID(req.Fid), t)
		if err != nil {
			return fmt.Errorf("get signer messages fid %d: %w", req.Fid, err)
		}
		for _, m := range ms {
			resp.Messages = append(resp.Messages, toWireMessage(m))
		}
	}

	if err := w.WriteMsgWithContext(ctx, resp); err != nil {
		return fmt.Errorf("write signer messages: %w", err)
	}
	return nil
}
