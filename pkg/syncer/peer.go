// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syncer

import (
	"context"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/merkletrie"
)

// PeerClient is the capability set the engine consumes from a remote
// hub during reconciliation. Implementations are bound to a single
// peer; hex framing on the wire is an implementation concern.
type PeerClient interface {
	// GetSyncMetadataByPrefix returns the peer's trie node projection
	// at prefix.
	GetSyncMetadataByPrefix(ctx context.Context, prefix []byte) (merkletrie.NodeMetadata, error)
	// GetSyncIdsByPrefix returns every SyncId the peer holds under
	// prefix.
	GetSyncIdsByPrefix(ctx context.Context, prefix []byte) ([]farcaster.SyncId, error)
	// GetMessagesByHashes returns the messages with the given hashes.
	GetMessagesByHashes(ctx context.Context, hashes []farcaster.Hash) ([]*farcaster.Message, error)
	// GetCustodyEventByFid returns the identity registry event holding
	// the custody address of a user.
	GetCustodyEventByFid(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error)
	// GetAllSignerMessagesByFid returns the user's signer add and
	// remove messages.
	GetAllSignerMessagesByFid(ctx context.Context, fid farcaster.FID) ([]*farcaster.Message, error)
}
