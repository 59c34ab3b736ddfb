// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syncer_test

import (
	"context"
	"errors"
	"io/ioutil"
	"testing"
	"time"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	"github.com/farcasterhub/hub/pkg/storage"
	storagemock "github.com/farcasterhub/hub/pkg/storage/mock"
	"github.com/farcasterhub/hub/pkg/syncer"
	"github.com/farcasterhub/hub/pkg/syncer/mock"
)

func newTestLogger() logging.Logger {
	return logging.New(ioutil.Discard, 0)
}

func newMessage(fid farcaster.FID, t farcaster.MessageType, timestamp uint32, hash string) *farcaster.Message {
	return &farcaster.Message{
		Fid:       fid,
		Type:      t,
		Timestamp: timestamp,
		Hash:      farcaster.NewHash([]byte(hash)),
		Signer:    []byte("signer-key"),
		Body:      []byte("body"),
	}
}

func mustSyncId(t *testing.T, m *farcaster.Message) farcaster.SyncId {
	t.Helper()

	id, err := farcaster.NewSyncId(m)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

// registeredStorer returns a mock store that accepts messages of fid 1
// signed by "signer-key".
func registeredStorer(opts ...storagemock.Option) *storagemock.Storer {
	opts = append(opts, storagemock.WithCustodyEvents(&farcaster.IdRegistryEvent{
		Fid:            1,
		Type:           farcaster.IdRegistryEventTypeRegister,
		CustodyAddress: []byte("custody"),
	}))
	s := storagemock.NewStorer(opts...)
	_ = s.MergeMessage(context.Background(), &farcaster.Message{
		Fid:       1,
		Type:      farcaster.MessageTypeSignerAdd,
		Timestamp: 1,
		Hash:      farcaster.NewHash([]byte("signer-add")),
		Body:      []byte("signer-key"),
	}, "test")
	return s
}

func waitItems(t *testing.T, e *syncer.Engine, want int) {
	t.Helper()

	deadline := time.Now().Add(time.Second)
	for e.Items() != want {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d items, have %d", want, e.Items())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestInitialize(t *testing.T) {
	store := registeredStorer()
	for i, hash := range []string{"aa", "bb", "cc"} {
		err := store.MergeMessage(context.Background(), newMessage(1, farcaster.MessageTypeCastAdd, uint32(1000+i), hash), "test")
		if err != nil {
			t.Fatal(err)
		}
	}

	trie := merkletrie.New()
	e := syncer.New(trie, store, newTestLogger())
	defer e.Close()

	if err := e.Initialize(context.Background()); err != nil {
		t.Fatal(err)
	}

	// the signer add message is indexed as well
	if got := e.Items(); got != 4 {
		t.Fatalf("got %d items, want 4", got)
	}

	if err := e.Initialize(context.Background()); !errors.Is(err, syncer.ErrAlreadyInitialized) {
		t.Fatalf("got error %v, want %v", err, syncer.ErrAlreadyInitialized)
	}
}

func TestEventHooks(t *testing.T) {
	store := registeredStorer()
	trie := merkletrie.New()
	e := syncer.New(trie, store, newTestLogger())
	defer e.Close()

	m := newMessage(1, farcaster.MessageTypeCastAdd, 1000, "aa")
	if err := store.MergeMessage(context.Background(), m, "test"); err != nil {
		t.Fatal(err)
	}
	waitItems(t, e, 1)

	if !trie.Has(mustSyncId(t, m)) {
		t.Fatal("merged message not indexed")
	}

	store.Delete(m.Hash)
	waitItems(t, e, 0)

	if trie.Has(mustSyncId(t, m)) {
		t.Fatal("deleted message still indexed")
	}
}

func TestEventHooksIdempotent(t *testing.T) {
	store := storagemock.NewStorer()
	trie := merkletrie.New()
	e := syncer.New(trie, store, newTestLogger())
	defer e.Close()

	m := newMessage(1, farcaster.MessageTypeCastAdd, 1000, "aa")
	ev := storage.Event{Kind: storage.EventMessageMerged, Message: m}

	h := trie.RootHash()
	syncer.HandleEvent(e, ev)
	afterInsert := trie.RootHash()
	syncer.HandleEvent(e, ev)

	if got := trie.RootHash(); got != afterInsert {
		t.Fatal("repeated merge event changed the trie")
	}
	if e.Items() != 1 {
		t.Fatalf("got %d items, want 1", e.Items())
	}

	del := storage.Event{Kind: storage.EventMessageDeleted, Message: m}
	syncer.HandleEvent(e, del)
	syncer.HandleEvent(e, del)

	if got := trie.RootHash(); got != h {
		t.Fatal("insert and delete did not restore the trie")
	}
	if e.Items() != 0 {
		t.Fatalf("got %d items, want 0", e.Items())
	}
}

func TestSnapshotTimestampAligned(t *testing.T) {
	store := storagemock.NewStorer()
	e := syncer.New(merkletrie.New(), store, newTestLogger())
	defer e.Close()

	ts := e.SnapshotTimestamp()
	if ts%syncer.SyncThresholdSeconds != 0 {
		t.Fatalf("snapshot timestamp %d not aligned to %d seconds", ts, syncer.SyncThresholdSeconds)
	}

	s := e.Snapshot()
	if len(s.Prefix) != farcaster.TimestampLength-1 {
		t.Fatalf("got prefix length %d, want %d", len(s.Prefix), farcaster.TimestampLength-1)
	}
	want := farcaster.FormatTimestamp(ts)[:farcaster.TimestampLength-1]
	if string(s.Prefix) != want {
		t.Fatalf("got prefix %q, want %q", s.Prefix, want)
	}
}

func TestShouldSync(t *testing.T) {
	store := storagemock.NewStorer()
	e := syncer.New(merkletrie.New(), store, newTestLogger())
	defer e.Close()

	ours := e.Snapshot().ExcludedHashes

	if e.ShouldSync(ours) {
		t.Fatal("identical excluded hashes should not trigger sync")
	}

	theirs := append([]string(nil), ours...)
	theirs[0] = "0000000000000000000000000000000000000000"
	if !e.ShouldSync(theirs) {
		t.Fatal("differing excluded hashes should trigger sync")
	}
}

// TestShouldSyncWhileSyncing asserts that ShouldSync is false for the
// whole duration of a running reconciliation.
func TestShouldSyncWhileSyncing(t *testing.T) {
	store := storagemock.NewStorer()
	e := syncer.New(merkletrie.New(), store, newTestLogger())
	defer e.Close()

	release := make(chan struct{})
	entered := make(chan struct{})
	peer := mock.NewPeerClient(
		mock.WithGetSyncMetadataByPrefix(func(ctx context.Context, prefix []byte) (merkletrie.NodeMetadata, error) {
			close(entered)
			<-release
			return merkletrie.NodeMetadata{}, errors.New("aborted")
		}),
	)

	theirs := append([]string(nil), e.Snapshot().ExcludedHashes...)
	theirs[0] = "0000000000000000000000000000000000000000"

	done := make(chan struct{})
	go func() {
		defer close(done)
		e.PerformSync(context.Background(), theirs, peer)
	}()

	<-entered
	if e.ShouldSync(theirs) {
		t.Fatal("should not sync while a sync is running")
	}
	close(release)
	<-done

	if !e.ShouldSync(theirs) {
		t.Fatal("should sync again after the round finished")
	}
}

// TestFetchShallow asserts that a small remote subtree is fetched with
// a single ids request (scenario: peer advertises 3 messages under a
// prefix the local trie does not have).
func TestFetchShallow(t *testing.T) {
	store := storagemock.NewStorer()
	e := syncer.New(merkletrie.New(), store, newTestLogger())
	defer e.Close()

	prefix := []byte("00000010")
	ids := []farcaster.SyncId{
		farcaster.SyncIdFromBytes([]byte("0000001000" + "aa")),
		farcaster.SyncIdFromBytes([]byte("0000001001" + "bb")),
		farcaster.SyncIdFromBytes([]byte("0000001002" + "cc")),
	}

	peer := mock.NewPeerClient(
		mock.WithGetSyncMetadataByPrefix(func(ctx context.Context, p []byte) (merkletrie.NodeMetadata, error) {
			return merkletrie.NodeMetadata{Prefix: p, NumMessages: 3, Hash: "deadbeef"}, nil
		}),
		mock.WithGetSyncIdsByPrefix(func(ctx context.Context, p []byte) ([]farcaster.SyncId, error) {
			return ids, nil
		}),
	)

	got := syncer.FetchMissingSyncIdsByPrefix(e, context.Background(), prefix, peer)

	if len(got) != 3 {
		t.Fatalf("got %d ids, want 3", len(got))
	}
	if len(peer.IdsCalls) != 1 {
		t.Fatalf("got %d ids requests, want 1", len(peer.IdsCalls))
	}
	if string(peer.IdsCalls[0]) != string(prefix) {
		t.Fatalf("ids requested for prefix %q, want %q", peer.IdsCalls[0], prefix)
	}
}

// TestFetchRecursive asserts that the walk descends only into children
// whose hashes disagree (scenario: local matches child '0' exactly but
// lacks child '9').
func TestFetchRecursive(t *testing.T) {
	trie := merkletrie.New()
	// the local trie holds the exact subtree the peer advertises
	// under child '0'
	local := farcaster.SyncIdFromBytes([]byte("0000001000" + "aa"))
	trie.Insert(local)

	store := storagemock.NewStorer()
	e := syncer.New(trie, store, newTestLogger())
	defer e.Close()

	localChild, ok := trie.NodeMetadata([]byte("000000100"))
	if !ok {
		t.Fatal("local child not found")
	}

	prefix := []byte("00000010")
	missing := []farcaster.SyncId{
		farcaster.SyncIdFromBytes([]byte("0000001099" + "bb")),
	}

	peer := mock.NewPeerClient(
		mock.WithGetSyncMetadataByPrefix(func(ctx context.Context, p []byte) (merkletrie.NodeMetadata, error) {
			switch string(p) {
			case string(prefix):
				return merkletrie.NodeMetadata{
					Prefix:      p,
					NumMessages: 120,
					Hash:        "top",
					Children: map[byte]merkletrie.NodeMetadata{
						'0': {Prefix: []byte("000000100"), NumMessages: 1, Hash: localChild.Hash},
						'9': {Prefix: []byte("000000109"), NumMessages: 1, Hash: "different"},
					},
				}, nil
			case "000000109":
				return merkletrie.NodeMetadata{Prefix: p, NumMessages: 1, Hash: "different"}, nil
			}
			return merkletrie.NodeMetadata{}, errors.New("unexpected prefix")
		}),
		mock.WithGetSyncIdsByPrefix(func(ctx context.Context, p []byte) ([]farcaster.SyncId, error) {
			if string(p) != "000000109" {
				return nil, errors.New("unexpected ids prefix")
			}
			return missing, nil
		}),
	)

	got := syncer.FetchMissingSyncIdsByPrefix(e, context.Background(), prefix, peer)

	if len(got) != 1 {
		t.Fatalf("got %d ids, want 1", len(got))
	}
	if got[0].ByteString() != missing[0].ByteString() {
		t.Fatalf("got id %q, want %q", got[0], missing[0])
	}
	// no requests for the agreeing child
	for _, p := range peer.IdsCalls {
		if string(p) == "000000100" {
			t.Fatal("ids requested for a subtree already in agreement")
		}
	}
	for _, p := range peer.MetadataCalls {
		if string(p) == "000000100" {
			t.Fatal("metadata requested for a subtree already in agreement")
		}
	}
}

// TestUnknownUserRecovery exercises the dependency chain: a cast of an
// unknown user fails with 412, the engine merges the custody event and
// signer set from the peer, then retries the cast.
func TestUnknownUserRecovery(t *testing.T) {
	store := storagemock.NewStorer()
	trie := merkletrie.New()
	e := syncer.New(trie, store, newTestLogger())
	defer e.Close()

	cast := newMessage(1, farcaster.MessageTypeCastAdd, 2000, "cast-hash-0000000000")
	signerAdd := &farcaster.Message{
		Fid:       1,
		Type:      farcaster.MessageTypeSignerAdd,
		Timestamp: 1000,
		Hash:      farcaster.NewHash([]byte("signer-hash-00000000")),
		Body:      []byte("signer-key"),
	}
	custody := &farcaster.IdRegistryEvent{
		Fid:            1,
		Type:           farcaster.IdRegistryEventTypeRegister,
		CustodyAddress: []byte("custody"),
	}

	peer := mock.NewPeerClient(
		mock.WithGetMessagesByHashes(func(ctx context.Context, hashes []farcaster.Hash) ([]*farcaster.Message, error) {
			return []*farcaster.Message{cast}, nil
		}),
		mock.WithGetCustodyEventByFid(func(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error) {
			return custody, nil
		}),
		mock.WithGetAllSignerMessagesByFid(func(ctx context.Context, fid farcaster.FID) ([]*farcaster.Message, error) {
			return []*farcaster.Message{signerAdd}, nil
		}),
	)

	merged := syncer.FetchAndMergeMessages(e, context.Background(), []farcaster.SyncId{mustSyncId(t, cast)}, peer)
	if !merged {
		t.Fatal("no message merged")
	}

	if len(peer.CustodyCalls) != 1 || peer.CustodyCalls[0] != 1 {
		t.Fatalf("custody calls: %v", peer.CustodyCalls)
	}
	if len(peer.SignersCalls) != 1 || peer.SignersCalls[0] != 1 {
		t.Fatalf("signers calls: %v", peer.SignersCalls)
	}
	if !store.Has(cast.Hash) {
		t.Fatal("cast not merged into storage")
	}
	if !store.Has(signerAdd.Hash) {
		t.Fatal("signer message not merged into storage")
	}

	// the merge events propagate into the trie
	waitItems(t, e, 2)
	if !trie.Has(mustSyncId(t, cast)) {
		t.Fatal("cast sync id not indexed")
	}
}

func TestSyncUserRecoveryNetworkFailure(t *testing.T) {
	store := storagemock.NewStorer()
	e := syncer.New(merkletrie.New(), store, newTestLogger())
	defer e.Close()

	cast := newMessage(1, farcaster.MessageTypeCastAdd, 2000, "cast-hash-0000000000")

	peer := mock.NewPeerClient(
		mock.WithGetCustodyEventByFid(func(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error) {
			return nil, errors.New("connection reset")
		}),
	)

	err := syncer.SyncUserAndRetryMessage(e, context.Background(), cast, peer)
	if !errors.Is(err, syncer.ErrNetworkFailure) {
		t.Fatalf("got error %v, want %v", err, syncer.ErrNetworkFailure)
	}
}

func TestSyncUserRecoveryStorageFailure(t *testing.T) {
	// every signer merge fails, so the recovery must report a storage
	// failure instead of retrying the original message
	store := storagemock.NewStorer(storagemock.WithMergeHook(func(m *farcaster.Message) error {
		if m.Type.IsSignerMessage() {
			return storage.ErrInvalidMessage
		}
		return nil
	}))
	e := syncer.New(merkletrie.New(), store, newTestLogger())
	defer e.Close()

	cast := newMessage(1, farcaster.MessageTypeCastAdd, 2000, "cast-hash-0000000000")
	signerAdd := &farcaster.Message{
		Fid:       1,
		Type:      farcaster.MessageTypeSignerAdd,
		Timestamp: 1000,
		Hash:      farcaster.NewHash([]byte("signer-hash-00000000")),
		Body:      []byte("signer-key"),
	}

	peer := mock.NewPeerClient(
		mock.WithGetCustodyEventByFid(func(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error) {
			return &farcaster.IdRegistryEvent{Fid: fid}, nil
		}),
		mock.WithGetAllSignerMessagesByFid(func(ctx context.Context, fid farcaster.FID) ([]*farcaster.Message, error) {
			return []*farcaster.Message{signerAdd}, nil
		}),
	)

	err := syncer.SyncUserAndRetryMessage(e, context.Background(), cast, peer)
	if !errors.Is(err, syncer.ErrStorageFailure) {
		t.Fatalf("got error %v, want %v", err, syncer.ErrStorageFailure)
	}
}

// TestPerformSyncIdempotent runs two reconciliation rounds against a
// static peer and asserts the second leaves local state untouched.
func TestPerformSyncIdempotent(t *testing.T) {
	store := registeredStorer()
	trie := merkletrie.New()
	e := syncer.New(trie, store, newTestLogger())
	defer e.Close()

	m := newMessage(1, farcaster.MessageTypeCastAdd, 1000, "aa")
	id := mustSyncId(t, m)

	peer := mock.NewPeerClient(
		mock.WithGetSyncMetadataByPrefix(func(ctx context.Context, p []byte) (merkletrie.NodeMetadata, error) {
			return merkletrie.NodeMetadata{Prefix: p, NumMessages: 1, Hash: "peer"}, nil
		}),
		mock.WithGetSyncIdsByPrefix(func(ctx context.Context, p []byte) ([]farcaster.SyncId, error) {
			return []farcaster.SyncId{id}, nil
		}),
		mock.WithGetMessagesByHashes(func(ctx context.Context, hashes []farcaster.Hash) ([]*farcaster.Message, error) {
			return []*farcaster.Message{m}, nil
		}),
	)

	theirs := []string{"differs"}

	e.PerformSync(context.Background(), theirs, peer)
	waitItems(t, e, 1)

	h := trie.RootHash()
	mergeCalls := store.MergeCalls()

	e.PerformSync(context.Background(), theirs, peer)

	// the duplicate merge is rejected idempotently and emits no event
	if got := store.MergeCalls(); got <= mergeCalls {
		t.Fatal("second round did not attempt merges")
	}
	time.Sleep(50 * time.Millisecond)
	if got := trie.RootHash(); got != h {
		t.Fatal("second sync round changed the trie")
	}
	if got := e.Items(); got != 1 {
		t.Fatalf("got %d items, want 1", got)
	}
}
