// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peersync_test

import (
	"context"
	"io/ioutil"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	"github.com/farcasterhub/hub/pkg/p2p/streamtest"
	"github.com/farcasterhub/hub/pkg/peersync"
	storagemock "github.com/farcasterhub/hub/pkg/storage/mock"
)

var serverAddr = farcaster.NewPeerID([]byte("server-peer"))

func newTestLogger() logging.Logger {
	return logging.New(ioutil.Discard, 0)
}

// newServices builds a server service over the given trie and storage,
// and a client service whose streams are routed to it in-process.
func newServices(t *testing.T, trie *merkletrie.MerkleTrie, store *storagemock.Storer) (client *peersync.Service, recorder *streamtest.Recorder) {
	t.Helper()

	server := peersync.New(peersync.Options{
		Trie:    trie,
		Storage: store,
		Logger:  newTestLogger(),
	})
	recorder = streamtest.New(
		streamtest.WithProtocols(server.Protocol()),
		streamtest.WithBaseAddr(serverAddr),
	)
	client = peersync.New(peersync.Options{
		Streamer: recorder,
		Trie:     merkletrie.New(),
		Storage:  storagemock.NewStorer(),
		Logger:   newTestLogger(),
	})
	return client, recorder
}

func TestGetSyncMetadataByPrefix(t *testing.T) {
	trie := merkletrie.New()
	trie.Insert(farcaster.SyncIdFromBytes([]byte("0000001000" + "ab")))
	trie.Insert(farcaster.SyncIdFromBytes([]byte("0000001001" + "cd")))

	client, _ := newServices(t, trie, storagemock.NewStorer())

	got, err := client.GetSyncMetadataByPrefix(context.Background(), serverAddr, []byte("000000100"))
	if err != nil {
		t.Fatal(err)
	}

	want, ok := trie.NodeMetadata([]byte("000000100"))
	if !ok {
		t.Fatal("local metadata not found")
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
}

func TestGetSyncMetadataByPrefixUnknown(t *testing.T) {
	client, _ := newServices(t, merkletrie.New(), storagemock.NewStorer())

	got, err := client.GetSyncMetadataByPrefix(context.Background(), serverAddr, []byte("000000999"))
	if err != nil {
		t.Fatal(err)
	}

	if got.NumMessages != 0 {
		t.Fatalf("got %d messages for unknown prefix, want 0", got.NumMessages)
	}
	if string(got.Prefix) != "000000999" {
		t.Fatalf("got prefix %q", got.Prefix)
	}
}

func TestGetSyncIdsByPrefix(t *testing.T) {
	trie := merkletrie.New()
	ids := []string{
		"0000001000" + "ab",
		"0000001001" + "cd",
		"0000002000" + "ef",
	}
	for _, id := range ids {
		trie.Insert(farcaster.SyncIdFromBytes([]byte(id)))
	}

	client, _ := newServices(t, trie, storagemock.NewStorer())

	got, err := client.GetSyncIdsByPrefix(context.Background(), serverAddr, []byte("0000001"))
	if err != nil {
		t.Fatal(err)
	}

	var gotStrings []string
	for _, id := range got {
		gotStrings = append(gotStrings, id.ByteString())
	}
	want := []string{ids[0], ids[1]}
	if diff := cmp.Diff(want, gotStrings); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestGetMessagesByHashes(t *testing.T) {
	m := &farcaster.Message{
		Fid:       1,
		Type:      farcaster.MessageTypeCastAdd,
		Timestamp: 1000,
		Hash:      farcaster.NewHash([]byte("cast-hash-0000000000")),
		Signer:    []byte("signer"),
		Body:      []byte("hello"),
		Signature: []byte("sig"),
	}
	store := storagemock.NewStorer(storagemock.WithMessages(m))

	client, _ := newServices(t, merkletrie.New(), store)

	got, err := client.GetMessagesByHashes(context.Background(), serverAddr, []farcaster.Hash{
		m.Hash,
		farcaster.NewHash([]byte("unknown-hash-0000000")), // silently absent
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 {
		t.Fatalf("got %d messages, want 1", len(got))
	}
	if diff := cmp.Diff(m, got[0]); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCustodyEventByFid(t *testing.T) {
	e := &farcaster.IdRegistryEvent{
		Fid:             7,
		Type:            farcaster.IdRegistryEventTypeRegister,
		CustodyAddress:  []byte("custody"),
		BlockNumber:     42,
		TransactionHash: []byte("tx"),
	}
	store := storagemock.NewStorer(storagemock.WithCustodyEvents(e))

	client, _ := newServices(t, merkletrie.New(), store)

	got, err := client.GetCustodyEventByFid(context.Background(), serverAddr, 7)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(e, got); diff != "" {
		t.Fatalf("custody event mismatch (-want +got):\n%s", diff)
	}
}

func TestGetCustodyEventByFidUnknown(t *testing.T) {
	client, _ := newServices(t, merkletrie.New(), storagemock.NewStorer())

	if _, err := client.GetCustodyEventByFid(context.Background(), serverAddr, 7); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestGetAllSignerMessagesByFid(t *testing.T) {
	add := &farcaster.Message{
		Fid:       7,
		Type:      farcaster.MessageTypeSignerAdd,
		Timestamp: 1000,
		Hash:      farcaster.NewHash([]byte("signer-add-hash-0000")),
		Body:      []byte("key"),
	}
	remove := &farcaster.Message{
		Fid:       7,
		Type:      farcaster.MessageTypeSignerRemove,
		Timestamp: 1001,
		Hash:      farcaster.NewHash([]byte("signer-rem-hash-0000")),
		Body:      []byte("old-key"),
	}
	cast := &farcaster.Message{
		Fid:       7,
		Type:      farcaster.MessageTypeCastAdd,
		Timestamp: 1002,
		Hash:      farcaster.NewHash([]byte("cast-hash-0000000000")),
	}
	store := storagemock.NewStorer(storagemock.WithMessages(add, remove, cast))

	client, _ := newServices(t, merkletrie.New(), store)

	got, err := client.GetAllSignerMessagesByFid(context.Background(), serverAddr, 7)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 2 {
		t.Fatalf("got %d messages, want 2", len(got))
	}
	for _, m := range got {
		if !m.Type.IsSignerMessage() {
			t.Fatalf("got non-signer message type %s", m.Type)
		}
	}
}

func TestClientBinding(t *testing.T) {
	trie := merkletrie.New()
	trie.Insert(farcaster.SyncIdFromBytes([]byte("0000001000" + "ab")))

	client, _ := newServices(t, trie, storagemock.NewStorer())

	bound := client.Client(serverAddr)
	md, err := bound.GetSyncMetadataByPrefix(context.Background(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if md.NumMessages != 1 {
		t.Fatalf("got %d messages, want 1", md.NumMessages)
	}
}
