// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mock provides a PeerClient implementation for use in testing.
package mock

import (
	"context"
	"errors"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	"github.com/farcasterhub/hub/pkg/syncer"
)

var _ syncer.PeerClient = (*PeerClient)(nil)

// PeerClient records calls and delegates to configurable functions.
type PeerClient struct {
	getSyncMetadataByPrefix   func(ctx context.Context, prefix []byte) (merkletrie.NodeMetadata, error)
	getSyncIdsByPrefix        func(ctx context.Context, prefix []byte) ([]farcaster.SyncId, error)
	getMessagesByHashes       func(ctx context.Context, hashes []farcaster.Hash) ([]*farcaster.Message, error)
	getCustodyEventByFid      func(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error)
	getAllSignerMessagesByFid func(ctx context.Context, fid farcaster.FID) ([]*farcaster.Message, error)

	MetadataCalls [][]byte
	IdsCalls      [][]byte
	HashesCalls   [][]farcaster.Hash
	CustodyCalls  []farcaster.FID
	SignersCalls  []farcaster.FID
}

type Option interface {
	apply(*PeerClient)
}

type optionFunc func(*PeerClient)

func (f optionFunc) apply(c *PeerClient) { f(c) }

func WithGetSyncMetadataByPrefix(fn func(ctx context.Context, prefix []byte) (merkletrie.NodeMetadata, error)) Option {
	return optionFunc(func(c *PeerClient) {
		c.getSyncMetadataByPrefix = fn
	})
}

func WithGetSyncIdsByPrefix(fn func(ctx context.Context, prefix []byte) ([]farcaster.SyncId, error)) Option {
	return optionFunc(func(c *PeerClient) {
		c.getSyncIdsByPrefix = fn
	})
}

func WithGetMessagesByHashes(fn func(ctx context.Context, hashes []farcaster.Hash) ([]*farcaster.Message, error)) Option {
	return optionFunc(func(c *PeerClient) {
		c.getMessagesByHashes = fn
	})
}

func WithGetCustodyEventByFid(fn func(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error)) Option {
	return optionFunc(func(c *PeerClient) {
		c.getCustodyEventByFid = fn
	})
}

func WithGetAllSignerMessagesByFid(fn func(ctx context.Context, fid farcaster.FID) ([]*farcaster.Message, error)) Option {
	return optionFunc(func(c *PeerClient) {
		c.getAllSignerMessagesByFid = fn
	})
}

func NewPeerClient(opts ...Option) *PeerClient {
	c := new(PeerClient)
	for _, o := range opts {
		o.apply(c)
	}
	return c
}

func (c *PeerClient) GetSyncMetadataByPrefix(ctx context.Context, prefix []byte) (merkletrie.NodeMetadata, error) {
	c.MetadataCalls = append(c.MetadataCalls, append([]byte(nil), prefix...))
	if c.getSyncMetadataByPrefix == nil {
		return merkletrie.NodeMetadata{}, errors.New("not implemented")
	}
	return c.getSyncMetadataByPrefix(ctx, prefix)
}

func (c *PeerClient) GetSyncIdsByPrefix(ctx context.Context, prefix []byte) ([]farcaster.SyncId, error) {
	c.IdsCalls = append(c.IdsCalls, append([]byte(nil), prefix...))
	if c.getSyncIdsByPrefix == nil {
		return nil, errors.New("not implemented")
	}
	return c.getSyncIdsByPrefix(ctx, prefix)
}

func (c *PeerClient) GetMessagesByHashes(ctx context.Context, hashes []farcaster.Hash) ([]*farcaster.Message, error) {
	c.HashesCalls = append(c.HashesCalls, hashes)
	if c.getMessagesByHashes == nil {
		return nil, errors.New("not implemented")
	}
	return c.getMessagesByHashes(ctx, hashes)
}

func (c *PeerClient) GetCustodyEventByFid(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error) {
	c.CustodyCalls = append(c.CustodyCalls, fid)
	if c.getCustodyEventByFid == nil {
		return nil, errors.New("not implemented")
	}
	return c.getCustodyEventByFid(ctx, fid)
}

func (c *PeerClient) GetAllSignerMessagesByFid(ctx context.Context, fid farcaster.FID) ([]*farcaster.Message, error) {
	c.SignersCalls = append(c.SignersCalls, fid)
	if c.getAllSignerMessagesByFid == nil {
		return nil, errors.New("not implemented")
	}
	return c.getAllSignerMessagesByFid(ctx, fid)
}
