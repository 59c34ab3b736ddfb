// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package leveldbstore_test

import (
	"context"
	"errors"
	"io/ioutil"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/storage"
	"github.com/farcasterhub/hub/pkg/storage/leveldbstore"
)

func newStore(t *testing.T) *leveldbstore.Store {
	t.Helper()

	s, err := leveldbstore.NewInMemory(logging.New(ioutil.Discard, 0))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Fatal(err)
		}
	})
	return s
}

func registerUser(t *testing.T, s *leveldbstore.Store, fid farcaster.FID, signer []byte) {
	t.Helper()

	ctx := context.Background()
	err := s.MergeIdRegistryEvent(ctx, &farcaster.IdRegistryEvent{
		Fid:            fid,
		Type:           farcaster.IdRegistryEventTypeRegister,
		CustodyAddress: []byte("custody"),
	}, "test")
	if err != nil {
		t.Fatal(err)
	}

	err = s.MergeMessage(ctx, &farcaster.Message{
		Fid:       fid,
		Type:      farcaster.MessageTypeSignerAdd,
		Timestamp: 1,
		Hash:      farcaster.HashData(append(append([]byte("signer-add"), byte(fid)), signer...)),
		Body:      signer,
	}, "test")
	if err != nil {
		t.Fatal(err)
	}
}

func cast(fid farcaster.FID, timestamp uint32, signer []byte, body string) *farcaster.Message {
	return &farcaster.Message{
		Fid:       fid,
		Type:      farcaster.MessageTypeCastAdd,
		Timestamp: timestamp,
		Hash:      farcaster.HashData([]byte(body)),
		Signer:    signer,
		Body:      []byte(body),
		Signature: []byte("sig"),
	}
}

func TestMergeUnknownUser(t *testing.T) {
	s := newStore(t)

	err := s.MergeMessage(context.Background(), cast(1, 1000, []byte("key"), "hello"), "test")
	if !errors.Is(err, storage.ErrUnknownUser) {
		t.Fatalf("got error %v, want %v", err, storage.ErrUnknownUser)
	}
	if got := storage.Status(err); got != storage.StatusUnknownUser {
		t.Fatalf("got status %d, want %d", got, storage.StatusUnknownUser)
	}
}

func TestMergeUnknownSigner(t *testing.T) {
	s := newStore(t)
	registerUser(t, s, 1, []byte("key"))

	err := s.MergeMessage(context.Background(), cast(1, 1000, []byte("other-key"), "hello"), "test")
	if !errors.Is(err, storage.ErrUnknownUser) {
		t.Fatalf("got error %v, want %v", err, storage.ErrUnknownUser)
	}
}

func TestMergeRoundTrip(t *testing.T) {
	s := newStore(t)
	registerUser(t, s, 1, []byte("key"))

	m := cast(1, 1000, []byte("key"), "hello")
	if err := s.MergeMessage(context.Background(), m, "test"); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetMessageByHash(context.Background(), m.Hash)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(m, got); diff != "" {
		t.Fatalf("message mismatch (-want +got):\n%s", diff)
	}

	if _, err := s.GetMessageByHash(context.Background(), farcaster.HashData([]byte("unknown"))); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("got error %v, want %v", err, storage.ErrNotFound)
	}
}

func TestMergeIdempotent(t *testing.T) {
	s := newStore(t)
	registerUser(t, s, 1, []byte("key"))

	c, unsubscribe := s.SubscribeEvents()
	defer unsubscribe()

	m := cast(1, 1000, []byte("key"), "hello")
	for i := 0; i < 3; i++ {
		if err := s.MergeMessage(context.Background(), m, "test"); err != nil {
			t.Fatal(err)
		}
	}

	// exactly one merged event leaves the store
	ev := <-c
	if ev.Kind != storage.EventMessageMerged {
		t.Fatalf("got event %s", ev.Kind)
	}
	select {
	case ev := <-c:
		t.Fatalf("unexpected second event %s", ev)
	default:
	}
}

func TestMergeMessagesResults(t *testing.T) {
	s := newStore(t)
	registerUser(t, s, 1, []byte("key"))

	msgs := []*farcaster.Message{
		cast(1, 1000, []byte("key"), "first"),
		cast(2, 1000, []byte("key"), "unknown user"),
		cast(1, 1001, []byte("key"), "second"),
	}

	errs := s.MergeMessages(context.Background(), msgs, "test")
	if len(errs) != 3 {
		t.Fatalf("got %d results, want 3", len(errs))
	}
	if errs[0] != nil || errs[2] != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if !errors.Is(errs[1], storage.ErrUnknownUser) {
		t.Fatalf("got error %v, want %v", errs[1], storage.ErrUnknownUser)
	}
}

func TestForEachMessage(t *testing.T) {
	s := newStore(t)
	registerUser(t, s, 1, []byte("key"))

	for _, body := range []string{"a", "b", "c"} {
		if err := s.MergeMessage(context.Background(), cast(1, 1000, []byte("key"), body), "test"); err != nil {
			t.Fatal(err)
		}
	}

	count := 0
	err := s.ForEachMessage(context.Background(), func(m *farcaster.Message) error {
		count++
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	// three casts and the signer add
	if count != 4 {
		t.Fatalf("got %d messages, want 4", count)
	}
}

func TestGetMessagesByFid(t *testing.T) {
	s := newStore(t)
	registerUser(t, s, 1, []byte("key"))
	registerUser(t, s, 2, []byte("key"))

	if err := s.MergeMessage(context.Background(), cast(1, 1000, []byte("key"), "mine"), "test"); err != nil {
		t.Fatal(err)
	}
	if err := s.MergeMessage(context.Background(), cast(2, 1000, []byte("key"), "theirs"), "test"); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetMessagesByFid(context.Background(), 1, farcaster.MessageTypeCastAdd)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d messages, want 1", len(got))
	}
	if string(got[0].Body) != "mine" {
		t.Fatalf("got body %q", got[0].Body)
	}
}

func TestGetCustodyEventByFid(t *testing.T) {
	s := newStore(t)

	if _, err := s.GetCustodyEventByFid(context.Background(), 1); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("got error %v, want %v", err, storage.ErrNotFound)
	}

	e := &farcaster.IdRegistryEvent{
		Fid:             1,
		Type:            farcaster.IdRegistryEventTypeTransfer,
		CustodyAddress:  []byte("custody"),
		BlockNumber:     99,
		TransactionHash: []byte("tx"),
	}
	if err := s.MergeIdRegistryEvent(context.Background(), e, "test"); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetCustodyEventByFid(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(e, got); diff != "" {
		t.Fatalf("custody event mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteMessage(t *testing.T) {
	s := newStore(t)
	registerUser(t, s, 1, []byte("key"))

	m := cast(1, 1000, []byte("key"), "hello")
	if err := s.MergeMessage(context.Background(), m, "test"); err != nil {
		t.Fatal(err)
	}

	c, unsubscribe := s.SubscribeEvents()
	defer unsubscribe()

	if err := s.DeleteMessage(context.Background(), m.Hash); err != nil {
		t.Fatal(err)
	}

	ev := <-c
	if ev.Kind != storage.EventMessageDeleted {
		t.Fatalf("got event %s", ev.Kind)
	}
	if !ev.Message.Hash.Equal(m.Hash) {
		t.Fatalf("got deleted hash %s", ev.Message.Hash)
	}

	if _, err := s.GetMessageByHash(context.Background(), m.Hash); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("got error %v, want %v", err, storage.ErrNotFound)
	}

	// deleting an unknown message is a no-op
	if err := s.DeleteMessage(context.Background(), m.Hash); err != nil {
		t.Fatal(err)
	}
}
