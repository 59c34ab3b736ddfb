// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package merkletrie provides the timestamp-prefixed Merkle trie that
// indexes every locally known message by its SyncId and maintains a
// running 160-bit digest per subtree. Two hubs holding the same message
// set produce byte-identical root hashes regardless of insertion order,
// which is what makes cheap divergence detection possible.
package merkletrie

import (
	"sync"

	"github.com/farcasterhub/hub/pkg/farcaster"
)

// NodeMetadata is the wire-visible projection of a trie node. Children
// carry only their own prefix, count and hash.
type NodeMetadata struct {
	Prefix      []byte
	NumMessages int
	Hash        string
	Children    map[byte]NodeMetadata
}

// TrieSnapshot is an immutable commitment to the settled portion of the
// trie. ExcludedHashes[i] is the digest of the i-th node on the prefix
// path with the on-path child omitted; equality of these lists across
// two hubs proves message-set equality up to the snapshot boundary.
type TrieSnapshot struct {
	Prefix         []byte
	NumMessages    int
	ExcludedHashes []string
}

// MerkleTrie owns the root node. It is safe for concurrent use; reads
// never fail, writes are infallible once the SyncId is well-formed.
type MerkleTrie struct {
	mu   sync.RWMutex
	root *node
}

// New constructs an empty trie. It is populated by replaying the
// storage engine at initialization and mutated only through Insert and
// Delete afterwards; there is no persisted form.
func New() *MerkleTrie {
	return &MerkleTrie{
		root: newNode(),
	}
}

// Insert adds a SyncId, reporting whether it was new.
func (t *MerkleTrie) Insert(id farcaster.SyncId) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.root.insert(id.Bytes(), 0)
}

// Delete removes a SyncId, reporting whether it was present.
func (t *MerkleTrie) Delete(id farcaster.SyncId) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.root.delete(id.Bytes(), 0)
}

// Has reports whether a SyncId is present.
func (t *MerkleTrie) Has(id farcaster.SyncId) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.root.exists(id.Bytes(), 0)
}

// RootHash returns the digest over the complete set of SyncIds.
func (t *MerkleTrie) RootHash() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.root.hash
}

// Items returns the number of SyncIds held.
func (t *MerkleTrie) Items() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.root.items
}

// NodeMetadata returns the projection of the node at prefix. The second
// return value is false when the prefix is unknown.
func (t *MerkleTrie) NodeMetadata(prefix []byte) (NodeMetadata, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.root.getNode(prefix)
	if n == nil {
		return NodeMetadata{}, false
	}
	return n.metadata(prefix), true
}

// Values returns every SyncId under prefix in ascending order.
func (t *MerkleTrie) Values(prefix []byte) []farcaster.SyncId {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := t.root.getNode(prefix)
	if n == nil {
		return nil
	}
	var ids []farcaster.SyncId
	for _, v := range n.values(nil) {
		ids = append(ids, farcaster.SyncIdFromBytes(v))
	}
	return ids
}

// Snapshot walks the root along each byte of timestampPrefix, recording
// at every step the digest of the current node's siblings (the node's
// hash with the on-path child excluded). Path positions beyond the
// known trie contribute the digest of the empty byte string.
func (t *MerkleTrie) Snapshot(timestampPrefix []byte) TrieSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	excluded := make([]string, 0, len(timestampPrefix))
	current := t.root
	for i := 0; i < len(timestampPrefix); i++ {
		if current == nil {
			excluded = append(excluded, digest(nil))
			continue
		}
		excluded = append(excluded, current.excludedHash(timestampPrefix[i]))
		current = current.children[timestampPrefix[i]]
	}

	numMessages := 0
	if current != nil {
		numMessages = current.items
	}

	return TrieSnapshot{
		Prefix:         append([]byte(nil), timestampPrefix...),
		NumMessages:    numMessages,
		ExcludedHashes: excluded,
	}
}

// DivergencePrefix compares our snapshot at ourPrefix against a peer's
// excluded hashes and returns the longest prefix under which the two
// hubs still agree. An empty result means the sets diverge at the root;
// the full prefix means the peer is ahead only in the final segment.
func (t *MerkleTrie) DivergencePrefix(ourPrefix []byte, theirExcludedHashes []string) []byte {
	ours := t.Snapshot(ourPrefix).ExcludedHashes

	n := len(ours)
	if len(theirExcludedHashes) < n {
		n = len(theirExcludedHashes)
	}
	k := 0
	for k < n && ours[k] == theirExcludedHashes[k] {
		k++
	}
	return append([]byte(nil), ourPrefix[:k]...)
}
