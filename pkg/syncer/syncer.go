// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package syncer provides the engine that keeps the sync trie
// consistent with the local message store and reconciles the local
// message set against remote peers.
//
// The engine subscribes to storage mutation events to maintain the
// trie incrementally, and drives the divergence-detection walk when a
// peer's gossiped snapshot disagrees with the local one. Messages
// discovered missing are fetched in batches and merged back into
// storage, which loops the new state into the trie through the same
// event stream.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
	"go.uber.org/atomic"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	"github.com/farcasterhub/hub/pkg/storage"
)

const (
	// SyncThresholdSeconds is the settlement boundary: only messages
	// older than this many seconds participate in snapshots.
	SyncThresholdSeconds = 10

	// HashesPerFetch bounds the subtree size below which the engine
	// stops recursing and requests the full id list.
	HashesPerFetch = 50

	// initProgressInterval is how many messages pass between progress
	// log lines during trie initialization.
	initProgressInterval = 10_000

	mergeSource = "sync-engine"
)

var (
	// ErrAlreadyInitialized is returned when Initialize runs twice.
	ErrAlreadyInitialized = errors.New("sync engine already initialized")

	// ErrNetworkFailure tags errors caused by peer RPC failures during
	// dependency recovery.
	ErrNetworkFailure = errors.New("network failure")

	// ErrStorageFailure tags errors caused by local merges failing
	// after dependency recovery.
	ErrStorageFailure = errors.New("storage failure")
)

// Engine owns the sync trie and drives reconciliation.
type Engine struct {
	trie    *merkletrie.MerkleTrie
	storage storage.Storer
	logger  logging.Logger
	metrics metrics

	isSyncing   atomic.Bool
	initialized atomic.Bool

	quit chan struct{}
	wg   sync.WaitGroup
}

// New constructs an engine around trie and storage and starts consuming
// the storage event stream. Call Close to release the subscription.
func New(trie *merkletrie.MerkleTrie, storage storage.Storer, logger logging.Logger) *Engine {
	e := &Engine{
		trie:    trie,
		storage: storage,
		logger:  logger,
		metrics: newMetrics(),
		quit:    make(chan struct{}),
	}
	e.startEventLoop()
	return e
}

// Initialize replays every persisted message into the trie. It may run
// only once per process.
func (e *Engine) Initialize(ctx context.Context) error {
	if !e.initialized.CAS(false, true) {
		return ErrAlreadyInitialized
	}

	count := 0
	err := e.storage.ForEachMessage(ctx, func(m *farcaster.Message) error {
		id, err := farcaster.NewSyncId(m)
		if err != nil {
			e.logger.Debugf("sync engine: initialize: skipping message %s: %v", m.Hash, err)
			return nil
		}
		e.trie.Insert(id)
		count++
		if count%initProgressInterval == 0 {
			e.logger.Infof("sync engine: initialized %d messages", count)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("initialize sync trie: %w", err)
	}

	e.logger.Infof("sync engine: initialization done, %d messages indexed", count)
	return nil
}

// Items returns the number of messages the trie currently indexes.
func (e *Engine) Items() int {
	return e.trie.Items()
}

// SnapshotTimestamp returns the current Farcaster time floored to the
// sync threshold. Messages below this boundary are settled.
func (e *Engine) SnapshotTimestamp() uint32 {
	ts := farcaster.Now()
	return ts - ts%SyncThresholdSeconds
}

// Snapshot commits to the settled portion of the trie. The prefix is
// the snapshot timestamp with its least-significant digit dropped,
// which aligns it on the 10-second boundary.
func (e *Engine) Snapshot() merkletrie.TrieSnapshot {
	return e.trie.Snapshot(e.snapshotPrefix())
}

func (e *Engine) snapshotPrefix() []byte {
	ts := farcaster.FormatTimestamp(e.SnapshotTimestamp())
	return []byte(ts[:farcaster.TimestampLength-1])
}

// ShouldSync reports whether a peer's excluded hashes disagree with the
// local snapshot. It is false while a reconciliation is running.
func (e *Engine) ShouldSync(theirExcludedHashes []string) bool {
	if e.isSyncing.Load() {
		return false
	}

	ours := e.Snapshot().ExcludedHashes
	if len(ours) != len(theirExcludedHashes) {
		return true
	}
	for i := range ours {
		if ours[i] != theirExcludedHashes[i] {
			return true
		}
	}
	return false
}

// PerformSync runs one reconciliation round against a peer. Errors
// inside the pipeline are logged and swallowed: the next gossiped
// contact record drives the retry.
func (e *Engine) PerformSync(ctx context.Context, theirExcludedHashes []string, peer PeerClient) {
	if !e.isSyncing.CAS(false, true) {
		e.logger.Debug("sync engine: sync already in progress")
		return
	}
	defer e.isSyncing.Store(false)

	e.metrics.SyncRounds.Inc()

	snapshot := e.Snapshot()
	divergence := e.trie.DivergencePrefix(snapshot.Prefix, theirExcludedHashes)
	e.logger.Debugf("sync engine: divergence prefix %q", divergence)

	missing := e.fetchMissingSyncIdsByPrefix(ctx, divergence, peer)
	e.logger.Debugf("sync engine: %d missing sync ids", len(missing))

	e.fetchAndMergeMessages(ctx, missing, peer)
}

// fetchMissingSyncIdsByPrefix resolves both hubs' view of the subtree
// at prefix and collects the SyncIds the local hub is missing. Remote
// failures terminate only this branch of the walk.
func (e *Engine) fetchMissingSyncIdsByPrefix(ctx context.Context, prefix []byte, peer PeerClient) []farcaster.SyncId {
	var ourNode *merkletrie.NodeMetadata
	if md, ok := e.trie.NodeMetadata(prefix); ok {
		ourNode = &md
	}

	theirNode, err := peer.GetSyncMetadataByPrefix(ctx, prefix)
	if err != nil {
		e.logger.Warningf("sync engine: get sync metadata for prefix %q: %v", prefix, err)
		e.metrics.SyncErrors.Inc()
		return nil
	}

	return e.fetchMissingSyncIdsByNode(ctx, theirNode, ourNode, peer)
}

// fetchMissingSyncIdsByNode is the central recursion of the divergence
// walk. Small remote subtrees are fetched whole; deduplication against
// ids we already hold happens at merge time, where storage rejects
// duplicates idempotently.
func (e *Engine) fetchMissingSyncIdsByNode(ctx context.Context, theirNode merkletrie.NodeMetadata, ourNode *merkletrie.NodeMetadata, peer PeerClient) []farcaster.SyncId {
	if theirNode.NumMessages <= HashesPerFetch {
		ids, err := peer.GetSyncIdsByPrefix(ctx, theirNode.Prefix)
		if err != nil {
			e.logger.Warningf("sync engine: get sync ids for prefix %q: %v", theirNode.Prefix, err)
			e.metrics.SyncErrors.Inc()
			return nil
		}
		e.metrics.SyncIdsFetched.Add(float64(len(ids)))
		return ids
	}

	var missing []farcaster.SyncId
	for b, theirChild := range theirNode.Children {
		if ourNode != nil {
			ourChild, ok := ourNode.Children[b]
			if ok && ourChild.Hash == theirChild.Hash {
				continue // subtree already in agreement
			}
		}
		missing = append(missing, e.fetchMissingSyncIdsByPrefix(ctx, theirChild.Prefix, peer)...)
	}
	return missing
}

// fetchAndMergeMessages requests the messages behind the given SyncIds
// and merges them into storage one by one. Merges are strictly
// sequential: later messages may depend on earlier ones, such as a cast
// depending on its signer. It reports whether any message merged.
func (e *Engine) fetchAndMergeMessages(ctx context.Context, ids []farcaster.SyncId, peer PeerClient) bool {
	if len(ids) == 0 {
		return false
	}

	hashes := make([]farcaster.Hash, 0, len(ids))
	for _, id := range ids {
		if h := id.UnderlyingHash(); !h.IsZero() {
			hashes = append(hashes, h)
		}
	}

	msgs, err := peer.GetMessagesByHashes(ctx, hashes)
	if err != nil {
		e.logger.Warningf("sync engine: get messages by hashes: %v", err)
		e.metrics.SyncErrors.Inc()
		return false
	}

	merged := false
	for _, m := range msgs {
		err := e.storage.MergeMessage(ctx, m, mergeSource)
		if err != nil && storage.Status(err) == storage.StatusUnknownUser {
			err = e.syncUserAndRetryMessage(ctx, m, peer)
		}
		if err != nil {
			e.logger.Debugf("sync engine: merge message %s: %v", m.Hash, err)
			e.metrics.MergeFailures.Inc()
			continue
		}
		merged = true
		e.metrics.MessagesMerged.Inc()
	}
	return merged
}

// syncUserAndRetryMessage recovers the dependency chain of a message
// whose user is unknown locally: the custody event first, then the
// signer set, then the original message again.
func (e *Engine) syncUserAndRetryMessage(ctx context.Context, m *farcaster.Message, peer PeerClient) error {
	e.metrics.DependencyRecoveries.Inc()

	custody, err := peer.GetCustodyEventByFid(ctx, m.Fid)
	if err != nil {
		return fmt.Errorf("get custody event for fid %d: %s: %w", m.Fid, err, ErrNetworkFailure)
	}
	if err := e.storage.MergeIdRegistryEvent(ctx, custody, mergeSource); err != nil {
		return fmt.Errorf("merge custody event for fid %d: %s: %w", m.Fid, err, ErrStorageFailure)
	}

	signers, err := peer.GetAllSignerMessagesByFid(ctx, m.Fid)
	if err != nil {
		return fmt.Errorf("get signer messages for fid %d: %s: %w", m.Fid, err, ErrNetworkFailure)
	}

	if len(signers) > 0 {
		var combined *multierror.Error
		failed := 0
		for _, err := range e.storage.MergeMessages(ctx, signers, mergeSource) {
			if err != nil {
				combined = multierror.Append(combined, err)
				failed++
			}
		}
		if failed == len(signers) {
			return fmt.Errorf("merge signer messages for fid %d: %s: %w", m.Fid, combined, ErrStorageFailure)
		}
	}

	if err := e.storage.MergeMessage(ctx, m, mergeSource); err != nil {
		return fmt.Errorf("retry merge message %s: %s: %w", m.Hash, err, ErrStorageFailure)
	}
	return nil
}

// startEventLoop consumes storage mutation events in commit order. The
// hook contract is idempotent and order-insensitive: Insert and Delete
// report whether they changed anything, so repeated events are no-ops.
func (e *Engine) startEventLoop() {
	c, unsubscribe := e.storage.SubscribeEvents()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer unsubscribe()

		for {
			select {
			case ev, ok := <-c:
				if !ok {
					return
				}
				e.handleEvent(ev)
			case <-e.quit:
				return
			}
		}
	}()
}

func (e *Engine) handleEvent(ev storage.Event) {
	id, err := farcaster.NewSyncId(ev.Message)
	if err != nil {
		e.logger.Debugf("sync engine: event %s: %v", ev, err)
		return
	}

	switch ev.Kind {
	case storage.EventMessageMerged:
		if e.trie.Insert(id) {
			e.metrics.TrieInserts.Inc()
		}
	case storage.EventMessageDeleted:
		// advisory: the storage transaction may not have committed; a
		// later sync round reinserts if so
		if e.trie.Delete(id) {
			e.metrics.TrieDeletes.Inc()
		}
	}
}

// Close stops the event loop. The trie is not persisted; the next
// process rebuilds it from storage.
func (e *Engine) Close() error {
	close(e.quit)
	e.wg.Wait()
	return nil
}
