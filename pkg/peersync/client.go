// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peersync

import (
	"context"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	"github.com/farcasterhub/hub/pkg/syncer"
)

var _ syncer.PeerClient = (*peerClient)(nil)

// peerClient binds the protocol to a single peer, satisfying the
// capability set the sync engine consumes.
type peerClient struct {
	s    *Service
	peer farcaster.PeerID
}

// Client returns a PeerClient bound to peer.
func (s *Service) Client(peer farcaster.PeerID) syncer.PeerClient {
	return &peerClient{s: s, peer: peer}
}

func (c *peerClient) GetSyncMetadataByPrefix(ctx context.Context, prefix []byte) (merkletrie.NodeMetadata, error) {
	return c.s.GetSyncMetadataByPrefix(ctx, c.peer, prefix)
}

func (c *peerClient) GetSyncIdsByPrefix(ctx context.Context, prefix []byte) ([]farcaster.SyncId, error) {
	return c.s.GetSyncIdsByPrefix(ctx, c.peer, prefix)
}

func (c *peerClient) GetMessagesByHashes(ctx context.Context, hashes []farcaster.Hash) ([]*farcaster.Message, error) {
	return c.s.GetMessagesByHashes(ctx, c.peer, hashes)
}

func (c *peerClient) GetCustodyEventByFid(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error) {
	return c.s.GetCustodyEventByFid(ctx, c.peer, fid)
}

func (c *peerClient) GetAllSignerMessagesByFid(ctx context.Context, fid farcaster.FID) ([]*farcaster.Message, error) {
	return c.s.GetAllSignerMessagesByFid(ctx, c.peer, fid)
}
