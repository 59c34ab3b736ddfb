// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mock provides an in-memory storage engine implementation for
// use in testing.
package mock

import (
	"context"
	"sync"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/storage"
)

var _ storage.Storer = (*Storer)(nil)

const eventBufferSize = 128

// Storer is an in-memory storage engine. Merge semantics mirror the
// reference store: messages of users without a custody event, or signed
// by an undelegated signer, are rejected with storage.ErrUnknownUser.
type Storer struct {
	mu        sync.Mutex
	messages  map[string]*farcaster.Message      // keyed by hash byte string
	byFid     map[farcaster.FID][]farcaster.Hash // insertion order per user
	custody   map[farcaster.FID]*farcaster.IdRegistryEvent
	signers   map[farcaster.FID]map[string]struct{}
	subs      []chan storage.Event
	mergeHook func(*farcaster.Message) error
	mergeCnt  int
}

type Option interface {
	apply(*Storer)
}

type optionFunc func(*Storer)

func (f optionFunc) apply(s *Storer) { f(s) }

// WithMergeHook installs a hook invoked before every message merge.
// A non-nil return is surfaced as the merge result.
func WithMergeHook(fn func(*farcaster.Message) error) Option {
	return optionFunc(func(s *Storer) {
		s.mergeHook = fn
	})
}

// WithMessages pre-populates the store, bypassing validation and
// emitting no events.
func WithMessages(ms ...*farcaster.Message) Option {
	return optionFunc(func(s *Storer) {
		for _, m := range ms {
			s.put(m)
		}
	})
}

// WithCustodyEvents pre-populates custody events.
func WithCustodyEvents(es ...*farcaster.IdRegistryEvent) Option {
	return optionFunc(func(s *Storer) {
		for _, e := range es {
			s.custody[e.Fid] = e
		}
	})
}

func NewStorer(opts ...Option) *Storer {
	s := &Storer{
		messages: make(map[string]*farcaster.Message),
		byFid:    make(map[farcaster.FID][]farcaster.Hash),
		custody:  make(map[farcaster.FID]*farcaster.IdRegistryEvent),
		signers:  make(map[farcaster.FID]map[string]struct{}),
	}
	for _, o := range opts {
		o.apply(s)
	}
	return s
}

func (s *Storer) ForEachMessage(ctx context.Context, fn storage.MessageIterFunc) error {
	s.mu.Lock()
	ms := make([]*farcaster.Message, 0, len(s.messages))
	for _, m := range s.messages {
		ms = append(ms, m)
	}
	s.mu.Unlock()

	for _, m := range ms {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(m); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storer) MergeMessage(ctx context.Context, m *farcaster.Message, source string) error {
	s.mu.Lock()
	s.mergeCnt++
	if s.mergeHook != nil {
		if err := s.mergeHook(m); err != nil {
			s.mu.Unlock()
			return err
		}
	}

	if m.Hash.IsZero() || m.Timestamp == 0 {
		s.mu.Unlock()
		return storage.ErrInvalidMessage
	}
	if _, ok := s.messages[m.Hash.ByteString()]; ok {
		s.mu.Unlock()
		return nil // duplicate, idempotent
	}
	if _, ok := s.custody[m.Fid]; !ok {
		s.mu.Unlock()
		return storage.ErrUnknownUser
	}
	if !m.Type.IsSignerMessage() {
		if _, ok := s.signers[m.Fid][string(m.Signer)]; !ok {
			s.mu.Unlock()
			return storage.ErrUnknownUser
		}
	}

	s.put(m)
	s.mu.Unlock()

	s.emit(storage.Event{Kind: storage.EventMessageMerged, Message: m})
	return nil
}

func (s *Storer) MergeMessages(ctx context.Context, ms []*farcaster.Message, source string) []error {
	errs := make([]error, len(ms))
	for i, m := range ms {
		errs[i] = s.MergeMessage(ctx, m, source)
	}
	return errs
}

func (s *Storer) MergeIdRegistryEvent(ctx context.Context, e *farcaster.IdRegistryEvent, source string) error {
	s.mu.Lock()
	s.custody[e.Fid] = e
	s.mu.Unlock()
	return nil
}

func (s *Storer) GetMessageByHash(ctx context.Context, hash farcaster.Hash) (*farcaster.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.messages[hash.ByteString()]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return m, nil
}

func (s *Storer) GetMessagesByFid(ctx context.Context, fid farcaster.FID, t farcaster.MessageType) ([]*farcaster.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var ms []*farcaster.Message
	for _, h := range s.byFid[fid] {
		m := s.messages[h.ByteString()]
		if m != nil && m.Type == t {
			ms = append(ms, m)
		}
	}
	return ms, nil
}

func (s *Storer) GetCustodyEventByFid(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.custody[fid]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return e, nil
}

func (s *Storer) SubscribeEvents() (<-chan storage.Event, func()) {
	c := make(chan storage.Event, eventBufferSize)

	s.mu.Lock()
	s.subs = append(s.subs, c)
	s.mu.Unlock()

	return c, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub == c {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				close(c)
				return
			}
		}
	}
}

// Delete removes a message and emits an advisory deleted event. It
// exists so tests can exercise the delete hook of trie maintenance.
func (s *Storer) Delete(hash farcaster.Hash) {
	s.mu.Lock()
	m, ok := s.messages[hash.ByteString()]
	if ok {
		delete(s.messages, hash.ByteString())
	}
	s.mu.Unlock()

	if ok {
		s.emit(storage.Event{Kind: storage.EventMessageDeleted, Message: m})
	}
}

// MergeCalls returns the number of MergeMessage invocations.
func (s *Storer) MergeCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mergeCnt
}

// Has reports whether a message with the given hash is stored.
func (s *Storer) Has(hash farcaster.Hash) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.messages[hash.ByteString()]
	return ok
}

// put stores m and updates indexes. Callers hold the lock.
func (s *Storer) put(m *farcaster.Message) {
	s.messages[m.Hash.ByteString()] = m
	s.byFid[m.Fid] = append(s.byFid[m.Fid], m.Hash)
	if m.Type == farcaster.MessageTypeSignerAdd {
		if s.signers[m.Fid] == nil {
			s.signers[m.Fid] = make(map[string]struct{})
		}
		s.signers[m.Fid][string(m.Body)] = struct{}{}
	}
}

func (s *Storer) emit(e storage.Event) {
	s.mu.Lock()
	subs := append([]chan storage.Event(nil), s.subs...)
	s.mu.Unlock()

	for _, c := range subs {
		c <- e
	}
}
