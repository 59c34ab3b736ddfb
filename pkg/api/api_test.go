// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api_test

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/farcasterhub/hub/pkg/api"
	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	storagemock "github.com/farcasterhub/hub/pkg/storage/mock"
)

func newTestServer(t *testing.T, store *storagemock.Storer, trie *merkletrie.MerkleTrie) *httptest.Server {
	t.Helper()

	s := api.New(api.Options{
		Storage: store,
		Trie:    trie,
		Logger:  logging.New(ioutil.Discard, 0),
	})
	ts := httptest.NewServer(s)
	t.Cleanup(ts.Close)
	return ts
}

func getJSON(t *testing.T, url string, wantCode int, v interface{}) {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantCode {
		t.Fatalf("got status %d, want %d", resp.StatusCode, wantCode)
	}
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatal(err)
		}
	}
}

func TestCastsByFid(t *testing.T) {
	store := storagemock.NewStorer(storagemock.WithMessages(
		&farcaster.Message{
			Fid:       1,
			Type:      farcaster.MessageTypeCastAdd,
			Timestamp: 1000,
			Hash:      farcaster.NewHash([]byte("cast-hash-0000000000")),
			Body:      []byte("hello"),
		},
		&farcaster.Message{
			Fid:       1,
			Type:      farcaster.MessageTypeReactionAdd,
			Timestamp: 1001,
			Hash:      farcaster.NewHash([]byte("react-hash-000000000")),
		},
	))
	ts := newTestServer(t, store, merkletrie.New())

	var resp struct {
		Messages []struct {
			Fid  uint64 `json:"fid"`
			Type int32  `json:"type"`
			Hash string `json:"hash"`
		} `json:"messages"`
	}
	getJSON(t, ts.URL+"/v1/castsByFid/1", http.StatusOK, &resp)

	if len(resp.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(resp.Messages))
	}
	if resp.Messages[0].Type != int32(farcaster.MessageTypeCastAdd) {
		t.Fatalf("got type %d", resp.Messages[0].Type)
	}
}

func TestCastsByFidBadInput(t *testing.T) {
	ts := newTestServer(t, storagemock.NewStorer(), merkletrie.New())

	getJSON(t, ts.URL+"/v1/castsByFid/not-a-number", http.StatusBadRequest, nil)
}

func TestCustodyEventByFid(t *testing.T) {
	store := storagemock.NewStorer(storagemock.WithCustodyEvents(&farcaster.IdRegistryEvent{
		Fid:            7,
		Type:           farcaster.IdRegistryEventTypeRegister,
		CustodyAddress: []byte("custody"),
	}))
	ts := newTestServer(t, store, merkletrie.New())

	var resp struct {
		Fid uint64 `json:"fid"`
	}
	getJSON(t, ts.URL+"/v1/custodyEventByFid/7", http.StatusOK, &resp)
	if resp.Fid != 7 {
		t.Fatalf("got fid %d, want 7", resp.Fid)
	}

	getJSON(t, ts.URL+"/v1/custodyEventByFid/8", http.StatusNotFound, nil)
}

func TestSyncMetadataByPrefix(t *testing.T) {
	trie := merkletrie.New()
	trie.Insert(farcaster.SyncIdFromBytes([]byte("0000001000" + "ab")))
	trie.Insert(farcaster.SyncIdFromBytes([]byte("0000001001" + "cd")))
	ts := newTestServer(t, storagemock.NewStorer(), trie)

	var resp struct {
		Prefix      string `json:"prefix"`
		NumMessages int    `json:"numMessages"`
		Hash        string `json:"hash"`
		Children    []struct {
			Prefix string `json:"prefix"`
		} `json:"children"`
	}
	getJSON(t, ts.URL+"/v1/syncMetadataByPrefix/000000100", http.StatusOK, &resp)

	if resp.NumMessages != 2 {
		t.Fatalf("got %d messages, want 2", resp.NumMessages)
	}
	if resp.Prefix != "000000100" {
		t.Fatalf("got prefix %q", resp.Prefix)
	}
	if len(resp.Children) != 2 {
		t.Fatalf("got %d children, want 2", len(resp.Children))
	}

	getJSON(t, ts.URL+"/v1/syncMetadataByPrefix/999", http.StatusNotFound, nil)
}

func TestSyncIdsByPrefix(t *testing.T) {
	trie := merkletrie.New()
	trie.Insert(farcaster.SyncIdFromBytes([]byte("0000001000" + "ab")))
	ts := newTestServer(t, storagemock.NewStorer(), trie)

	var resp struct {
		Ids []string `json:"ids"`
	}
	getJSON(t, ts.URL+"/v1/syncIdsByPrefix/0000001", http.StatusOK, &resp)

	if len(resp.Ids) != 1 {
		t.Fatalf("got %d ids, want 1", len(resp.Ids))
	}
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, storagemock.NewStorer(), merkletrie.New())

	getJSON(t, ts.URL+"/health", http.StatusOK, nil)
}
