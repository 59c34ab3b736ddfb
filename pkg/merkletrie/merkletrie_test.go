// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package merkletrie_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/merkletrie"
)

func syncId(t *testing.T, timestamp, hash string) farcaster.SyncId {
	t.Helper()

	if len(timestamp) != farcaster.TimestampLength {
		t.Fatalf("bad timestamp length %d", len(timestamp))
	}
	return farcaster.SyncIdFromBytes(append([]byte(timestamp), hash...))
}

func TestSingleInsert(t *testing.T) {
	trie := merkletrie.New()

	id := syncId(t, "0000001000", "ab")

	if !trie.Insert(id) {
		t.Fatal("insert reported id as already present")
	}
	if got := trie.Items(); got != 1 {
		t.Fatalf("got %d items, want 1", got)
	}
	if !trie.Has(id) {
		t.Fatal("inserted id not found")
	}

	h1 := trie.RootHash()
	if h1 == "" {
		t.Fatal("empty root hash")
	}
	if got := trie.RootHash(); got != h1 {
		t.Fatalf("root hash not stable: %s != %s", got, h1)
	}

	// repeated insert must not change anything
	if trie.Insert(id) {
		t.Fatal("duplicate insert reported id as new")
	}
	if got := trie.Items(); got != 1 {
		t.Fatalf("got %d items after duplicate insert, want 1", got)
	}
	if got := trie.RootHash(); got != h1 {
		t.Fatal("root hash changed on duplicate insert")
	}
}

func TestInsertOrderIndependence(t *testing.T) {
	ids := []farcaster.SyncId{
		syncId(t, "0000001000", "ab"),
		syncId(t, "0000001000", "cd"),
		syncId(t, "0000001001", "ef"),
	}

	first := merkletrie.New()
	for _, id := range ids {
		first.Insert(id)
	}

	second := merkletrie.New()
	for i := len(ids) - 1; i >= 0; i-- {
		second.Insert(ids[i])
	}

	if first.RootHash() != second.RootHash() {
		t.Fatalf("root hashes differ: %s != %s", first.RootHash(), second.RootHash())
	}
}

func TestInsertOrderIndependenceRandom(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	var ids []farcaster.SyncId
	for i := 0; i < 100; i++ {
		hash := make([]byte, 20)
		rnd.Read(hash)
		ids = append(ids, farcaster.SyncIdFromBytes(append([]byte(farcaster.FormatTimestamp(uint32(1000+i/3))), hash...)))
	}

	first := merkletrie.New()
	for _, id := range ids {
		first.Insert(id)
	}

	rnd.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	second := merkletrie.New()
	for _, id := range ids {
		second.Insert(id)
	}

	if first.RootHash() != second.RootHash() {
		t.Fatal("root hashes differ after shuffled insertion")
	}
	if first.Items() != second.Items() {
		t.Fatal("item counts differ after shuffled insertion")
	}
}

func TestInsertDeleteRestoresState(t *testing.T) {
	trie := merkletrie.New()

	trie.Insert(syncId(t, "0000001000", "ab"))
	trie.Insert(syncId(t, "0000001001", "cd"))

	h := trie.RootHash()
	items := trie.Items()

	extra := syncId(t, "0000002000", "ef")
	if !trie.Insert(extra) {
		t.Fatal("insert reported id as already present")
	}
	if !trie.Delete(extra) {
		t.Fatal("delete reported id as absent")
	}

	if got := trie.RootHash(); got != h {
		t.Fatalf("root hash not restored: %s != %s", got, h)
	}
	if got := trie.Items(); got != items {
		t.Fatalf("items not restored: %d != %d", got, items)
	}
	if trie.Has(extra) {
		t.Fatal("deleted id still present")
	}

	// deleting again must be a no-op
	if trie.Delete(extra) {
		t.Fatal("duplicate delete reported id as present")
	}
}

func TestNodeMetadataCounts(t *testing.T) {
	trie := merkletrie.New()

	ids := []farcaster.SyncId{
		syncId(t, "0000001000", "ab"),
		syncId(t, "0000001000", "cd"),
		syncId(t, "0000001001", "ef"),
		syncId(t, "0000002000", "gh"),
	}
	for _, id := range ids {
		trie.Insert(id)
	}

	for _, tc := range []struct {
		prefix string
		count  int
	}{
		{prefix: "", count: 4},
		{prefix: "0000001", count: 3},
		{prefix: "0000001000", count: 2},
		{prefix: "0000001001", count: 1},
		{prefix: "0000002", count: 1},
	} {
		md, ok := trie.NodeMetadata([]byte(tc.prefix))
		if !ok {
			t.Fatalf("prefix %q not found", tc.prefix)
		}
		if md.NumMessages != tc.count {
			t.Fatalf("prefix %q: got %d messages, want %d", tc.prefix, md.NumMessages, tc.count)
		}
	}

	if _, ok := trie.NodeMetadata([]byte("0000003")); ok {
		t.Fatal("unknown prefix reported as found")
	}
}

func TestNodeMetadataChildren(t *testing.T) {
	trie := merkletrie.New()

	trie.Insert(syncId(t, "0000001000", "ab"))
	trie.Insert(syncId(t, "0000001001", "cd"))

	md, ok := trie.NodeMetadata([]byte("000000100"))
	if !ok {
		t.Fatal("prefix not found")
	}
	if len(md.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(md.Children))
	}
	for _, b := range []byte{'0', '1'} {
		child, ok := md.Children[b]
		if !ok {
			t.Fatalf("missing child %q", b)
		}
		if child.NumMessages != 1 {
			t.Fatalf("child %q: got %d messages, want 1", b, child.NumMessages)
		}
		if child.Hash == "" {
			t.Fatalf("child %q: empty hash", b)
		}
	}
}

func TestValuesOrdered(t *testing.T) {
	trie := merkletrie.New()

	ids := []string{
		"0000001001" + "zz",
		"0000001000" + "cd",
		"0000001000" + "ab",
		"0000000999" + "xy",
	}
	for _, id := range ids {
		trie.Insert(farcaster.SyncIdFromBytes([]byte(id)))
	}

	var got []string
	for _, v := range trie.Values(nil) {
		got = append(got, v.ByteString())
	}

	want := append([]string(nil), ids...)
	sort.Strings(want)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	// restricted to a prefix
	got = nil
	for _, v := range trie.Values([]byte("0000001000")) {
		got = append(got, v.ByteString())
	}
	want = []string{"0000001000" + "ab", "0000001000" + "cd"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("prefix values mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotAgreement(t *testing.T) {
	ids := []farcaster.SyncId{
		syncId(t, "0000001000", "ab"),
		syncId(t, "0000001001", "cd"),
		syncId(t, "0000001002", "ef"),
	}

	first := merkletrie.New()
	second := merkletrie.New()
	for _, id := range ids {
		first.Insert(id)
	}
	for i := len(ids) - 1; i >= 0; i-- {
		second.Insert(ids[i])
	}

	prefix := []byte("000000100")
	a := first.Snapshot(prefix)
	b := second.Snapshot(prefix)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("snapshots differ (-first +second):\n%s", diff)
	}
	if len(a.ExcludedHashes) != len(prefix) {
		t.Fatalf("got %d excluded hashes, want %d", len(a.ExcludedHashes), len(prefix))
	}
	if a.NumMessages != 3 {
		t.Fatalf("got %d messages in snapshot, want 3", a.NumMessages)
	}
}

func TestDivergencePrefixEmpty(t *testing.T) {
	// the peer holds a subtree under a root child off the snapshot
	// path, so already the first excluded hashes disagree
	a := merkletrie.New()
	a.Insert(syncId(t, "0000001000", "ab"))
	a.Insert(syncId(t, "1000000000", "cd"))

	b := merkletrie.New()
	b.Insert(syncId(t, "0000001000", "ab"))

	prefix := []byte("000000100")
	theirs := a.Snapshot(prefix).ExcludedHashes

	got := b.DivergencePrefix(prefix, theirs)
	if len(got) != 0 {
		t.Fatalf("got divergence prefix %q, want empty", got)
	}
}

func TestDivergencePrefixSharedZeros(t *testing.T) {
	// zero-padded timestamps differing in their seventh digit agree on
	// the six all-zero levels above it
	a := merkletrie.New()
	a.Insert(syncId(t, "0000001000", "ab"))

	b := merkletrie.New()
	b.Insert(syncId(t, "0000002000", "cd"))

	prefix := []byte("000000100")
	theirs := a.Snapshot(prefix).ExcludedHashes

	got := b.DivergencePrefix(prefix, theirs)
	if string(got) != "000000" {
		t.Fatalf("got divergence prefix %q, want %q", got, "000000")
	}
}

func TestDivergencePrefixFull(t *testing.T) {
	a := merkletrie.New()
	b := merkletrie.New()
	for _, trie := range []*merkletrie.MerkleTrie{a, b} {
		trie.Insert(syncId(t, "0000001000", "ab"))
		trie.Insert(syncId(t, "0000001001", "cd"))
	}
	// the peer is ahead only in the final segment
	a.Insert(syncId(t, "0000001009", "ef"))

	prefix := []byte("000000100")
	theirs := a.Snapshot(prefix).ExcludedHashes

	got := b.DivergencePrefix(prefix, theirs)
	if string(got) != string(prefix) {
		t.Fatalf("got divergence prefix %q, want %q", got, prefix)
	}
}

func TestDivergencePrefixPartial(t *testing.T) {
	a := merkletrie.New()
	b := merkletrie.New()
	for _, trie := range []*merkletrie.MerkleTrie{a, b} {
		trie.Insert(syncId(t, "0000001000", "ab"))
	}
	// sets differ in ids sharing the 7-byte prefix "0000001"
	a.Insert(syncId(t, "0000001900", "ef"))

	prefix := []byte("000000100")
	theirs := a.Snapshot(prefix).ExcludedHashes

	got := b.DivergencePrefix(prefix, theirs)
	if string(got) != "0000001" {
		t.Fatalf("got divergence prefix %q, want %q", got, "0000001")
	}
}

func TestDivergencePrefixTruncates(t *testing.T) {
	a := merkletrie.New()
	b := merkletrie.New()
	for _, trie := range []*merkletrie.MerkleTrie{a, b} {
		trie.Insert(syncId(t, "0000001000", "ab"))
	}

	prefix := []byte("000000100")
	theirs := a.Snapshot(prefix[:4]).ExcludedHashes

	got := b.DivergencePrefix(prefix, theirs)
	if string(got) != string(prefix[:4]) {
		t.Fatalf("got divergence prefix %q, want %q", got, prefix[:4])
	}
}

func TestSnapshotUnknownPath(t *testing.T) {
	trie := merkletrie.New()

	s := trie.Snapshot([]byte("000000100"))
	if s.NumMessages != 0 {
		t.Fatalf("got %d messages, want 0", s.NumMessages)
	}
	if len(s.ExcludedHashes) != 9 {
		t.Fatalf("got %d excluded hashes, want 9", len(s.ExcludedHashes))
	}
	// every level digests the empty sibling set identically
	for i := 1; i < len(s.ExcludedHashes); i++ {
		if s.ExcludedHashes[i] != s.ExcludedHashes[0] {
			t.Fatal("expected identical excluded hashes on an empty path")
		}
	}
}
