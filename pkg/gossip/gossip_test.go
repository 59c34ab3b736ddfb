// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gossip_test

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"testing"
	"time"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/gossip"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	"github.com/farcasterhub/hub/pkg/p2p"
	"github.com/farcasterhub/hub/pkg/p2p/streamtest"
	storagemock "github.com/farcasterhub/hub/pkg/storage/mock"
	"github.com/farcasterhub/hub/pkg/syncer"
)

var (
	selfAddr = farcaster.NewPeerID([]byte("self-peer"))
	peerAddr = farcaster.NewPeerID([]byte("remote-peer"))
)

func newTestLogger() logging.Logger {
	return logging.New(ioutil.Discard, 0)
}

// engineStub implements gossip.SyncEngine with recorded calls.
type engineStub struct {
	shouldSync bool
	syncedC    chan []string
	snapshot   merkletrie.TrieSnapshot
}

func (e *engineStub) ShouldSync(theirs []string) bool { return e.shouldSync }

func (e *engineStub) PerformSync(ctx context.Context, theirs []string, peer syncer.PeerClient) {
	e.syncedC <- theirs
}

func (e *engineStub) Snapshot() merkletrie.TrieSnapshot { return e.snapshot }

func (e *engineStub) Items() int { return e.snapshot.NumMessages }

type clientsStub struct{}

func (clientsStub) Client(peer farcaster.PeerID) syncer.PeerClient { return nil }

type peersStub []p2p.Peer

func (p peersStub) Peers() []p2p.Peer { return p }

func newService(streamer p2p.Streamer, peers gossip.PeerLister, engine gossip.SyncEngine, store *storagemock.Storer) *gossip.Service {
	return gossip.New(gossip.Options{
		Streamer: streamer,
		Peers:    peers,
		Engine:   engine,
		Clients:  clientsStub{},
		Storage:  store,
		Self:     selfAddr,
		RPCAddress: &gossip.Addr{
			Host: "127.0.0.1",
			Port: 2280,
		},
		Logger: newTestLogger(),
	})
}

func TestBroadcastContact(t *testing.T) {
	engine := &engineStub{
		snapshot: merkletrie.TrieSnapshot{
			Prefix:         []byte("000000100"),
			NumMessages:    3,
			ExcludedHashes: []string{"aa", "bb"},
		},
	}

	recorder := streamtest.New(
		streamtest.WithProtocols(newService(nil, nil, engine, storagemock.NewStorer()).Protocol()),
		streamtest.WithBaseAddr(peerAddr),
	)

	s := newService(recorder, peersStub{{Address: peerAddr}}, engine, storagemock.NewStorer())
	gossip.BroadcastContact(s, context.Background())

	records, err := recorder.Records(peerAddr, "gossip", "1.0.0", "envelope")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}

	var env gossip.Envelope
	if err := json.Unmarshal(records[0].In(), &env); err != nil {
		t.Fatal(err)
	}
	if len(env.Topics) != 1 || env.Topics[0] != gossip.TopicContact {
		t.Fatalf("got topics %v", env.Topics)
	}

	var ci gossip.ContactInfo
	if err := json.Unmarshal(env.Content, &ci); err != nil {
		t.Fatal(err)
	}
	if ci.Version != gossip.ProtocolVersion {
		t.Fatalf("got version %q", ci.Version)
	}
	if ci.PeerID != selfAddr.String() {
		t.Fatalf("got peer id %q, want %q", ci.PeerID, selfAddr.String())
	}
	if ci.Count != 3 {
		t.Fatalf("got count %d, want 3", ci.Count)
	}
	if len(ci.ExcludedHashes) != 2 || ci.ExcludedHashes[0] != "aa" {
		t.Fatalf("got excluded hashes %v", ci.ExcludedHashes)
	}
	if ci.RPCAddress == nil || ci.RPCAddress.Port != 2280 {
		t.Fatalf("got rpc address %v", ci.RPCAddress)
	}
}

func TestContactTriggersSync(t *testing.T) {
	engine := &engineStub{
		shouldSync: true,
		syncedC:    make(chan []string, 1),
	}
	s := newService(nil, nil, engine, storagemock.NewStorer())

	content, err := json.Marshal(gossip.ContactInfo{
		Version:        gossip.ProtocolVersion,
		PeerID:         peerAddr.String(),
		ExcludedHashes: []string{"xx", "yy"},
		Count:          7,
	})
	if err != nil {
		t.Fatal(err)
	}

	err = gossip.HandleEnvelope(s, context.Background(), peerAddr, gossip.Envelope{
		Content: content,
		Topics:  []string{gossip.TopicContact},
	})
	if err != nil {
		t.Fatal(err)
	}

	select {
	case theirs := <-engine.syncedC:
		if len(theirs) != 2 || theirs[0] != "xx" {
			t.Fatalf("sync started with excluded hashes %v", theirs)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for sync round")
	}
}

func TestContactNoSyncWhenAgreeing(t *testing.T) {
	engine := &engineStub{
		shouldSync: false,
		syncedC:    make(chan []string, 1),
	}
	s := newService(nil, nil, engine, storagemock.NewStorer())

	content, err := json.Marshal(gossip.ContactInfo{
		Version: gossip.ProtocolVersion,
		PeerID:  peerAddr.String(),
	})
	if err != nil {
		t.Fatal(err)
	}

	err = gossip.HandleEnvelope(s, context.Background(), peerAddr, gossip.Envelope{
		Content: content,
		Topics:  []string{gossip.TopicContact},
	})
	if err != nil {
		t.Fatal(err)
	}

	select {
	case <-engine.syncedC:
		t.Fatal("sync started although snapshots agree")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestContactBadVersion(t *testing.T) {
	engine := &engineStub{shouldSync: true, syncedC: make(chan []string, 1)}
	s := newService(nil, nil, engine, storagemock.NewStorer())

	content, err := json.Marshal(gossip.ContactInfo{
		Version: "V0",
		PeerID:  peerAddr.String(),
	})
	if err != nil {
		t.Fatal(err)
	}

	err = gossip.HandleEnvelope(s, context.Background(), peerAddr, gossip.Envelope{
		Content: content,
		Topics:  []string{gossip.TopicContact},
	})
	if err == nil {
		t.Fatal("expected version error")
	}
}

func TestPrimaryTopicMerge(t *testing.T) {
	store := storagemock.NewStorer(storagemock.WithCustodyEvents(&farcaster.IdRegistryEvent{
		Fid: 1,
	}))
	engine := &engineStub{}
	receiver := newService(nil, nil, engine, store)

	recorder := streamtest.New(
		streamtest.WithProtocols(receiver.Protocol()),
		streamtest.WithBaseAddr(peerAddr),
	)
	sender := newService(recorder, peersStub{{Address: peerAddr}}, engine, storagemock.NewStorer())

	signerAdd := &farcaster.Message{
		Fid:       1,
		Type:      farcaster.MessageTypeSignerAdd,
		Timestamp: 1000,
		Hash:      farcaster.NewHash([]byte("signer-add-hash-0000")),
		Body:      []byte("key"),
	}
	if err := sender.BroadcastMessage(context.Background(), signerAdd); err != nil {
		t.Fatal(err)
	}

	recorder.WaitRecords(t, peerAddr, "gossip", "1.0.0", "envelope", 1, 2)

	deadline := time.Now().Add(time.Second)
	for !store.Has(signerAdd.Hash) {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for gossiped message merge")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestBroadcastIdRegistryEvent(t *testing.T) {
	store := storagemock.NewStorer()
	engine := &engineStub{}
	receiver := newService(nil, nil, engine, store)

	recorder := streamtest.New(
		streamtest.WithProtocols(receiver.Protocol()),
		streamtest.WithBaseAddr(peerAddr),
	)
	sender := newService(recorder, peersStub{{Address: peerAddr}}, engine, storagemock.NewStorer())

	custody := &farcaster.IdRegistryEvent{
		Fid:            9,
		Type:           farcaster.IdRegistryEventTypeRegister,
		CustodyAddress: []byte("custody"),
	}
	if err := sender.BroadcastIdRegistryEvent(context.Background(), custody); err != nil {
		t.Fatal(err)
	}

	recorder.WaitRecords(t, peerAddr, "gossip", "1.0.0", "envelope", 1, 2)

	deadline := time.Now().Add(time.Second)
	for {
		if _, err := store.GetCustodyEventByFid(context.Background(), 9); err == nil {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for gossiped custody event merge")
		}
		time.Sleep(5 * time.Millisecond)
	}
}
