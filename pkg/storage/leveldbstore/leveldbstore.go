// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package leveldbstore provides the reference storage engine backed by
// LevelDB. It persists messages and custody events, keeps per-user
// indexes, and emits mutation events in commit order. Validation is the
// minimum the sync core depends on: custody must be known and, for
// non-signer messages, the signer must have been delegated.
package leveldbstore

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldberr "github.com/syndtr/goleveldb/leveldb/errors"
	ldbs "github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/logging"
	"github.com/farcasterhub/hub/pkg/storage"
)

var _ storage.Storer = (*Store)(nil)

const eventBufferSize = 128

const (
	messageKeyPrefix = "m/"
	fidIndexPrefix   = "f/"
	custodyKeyPrefix = "c/"
	signerKeyPrefix  = "s/"
)

// Store uses LevelDB to persist the message set.
type Store struct {
	db     *leveldb.DB
	logger logging.Logger

	mu   sync.Mutex // serializes merges and event emission
	subs []chan storage.Event
}

// New creates a persistent store at path.
func New(path string, logger logging.Logger) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		if !ldberr.IsCorrupted(err) {
			return nil, err
		}

		logger.Warningf("message store open failed, attempting recovery: %v", err)
		db, err = leveldb.RecoverFile(path, nil)
		if err != nil {
			return nil, fmt.Errorf("message store recovery: %w", err)
		}
		logger.Warning("message store recovery done")
	}

	return &Store{
		db:     db,
		logger: logger,
	}, nil
}

// NewInMemory creates a store backed by in-memory LevelDB storage.
func NewInMemory(logger logging.Logger) (*Store, error) {
	db, err := leveldb.Open(ldbs.NewMemStorage(), nil)
	if err != nil {
		return nil, err
	}
	return &Store{
		db:     db,
		logger: logger,
	}, nil
}

// storedMessage is the LevelDB value encoding of a message.
type storedMessage struct {
	Fid       uint64 `msgpack:"fid"`
	Type      int32  `msgpack:"type"`
	Timestamp uint32 `msgpack:"ts"`
	Hash      []byte `msgpack:"hash"`
	Signer    []byte `msgpack:"signer"`
	Body      []byte `msgpack:"body"`
	Signature []byte `msgpack:"sig"`
}

func encodeMessage(m *farcaster.Message) ([]byte, error) {
	return msgpack.Marshal(&storedMessage{
		Fid:       uint64(m.Fid),
		Type:      int32(m.Type),
		Timestamp: m.Timestamp,
		Hash:      m.Hash.Bytes(),
		Signer:    m.Signer,
		Body:      m.Body,
		Signature: m.Signature,
	})
}

func decodeMessage(data []byte) (*farcaster.Message, error) {
	var sm storedMessage
	if err := msgpack.Unmarshal(data, &sm); err != nil {
		return nil, err
	}
	return &farcaster.Message{
		Fid:       farcaster.FID(sm.Fid),
		Type:      farcaster.MessageType(sm.Type),
		Timestamp: sm.Timestamp,
		Hash:      farcaster.NewHash(sm.Hash),
		Signer:    sm.Signer,
		Body:      sm.Body,
		Signature: sm.Signature,
	}, nil
}

// storedEvent is the LevelDB value encoding of a custody event.
type storedEvent struct {
	Fid             uint64 `msgpack:"fid"`
	Type            int32  `msgpack:"type"`
	CustodyAddress  []byte `msgpack:"custody"`
	BlockNumber     uint64 `msgpack:"block"`
	TransactionHash []byte `msgpack:"tx"`
}

func fidKey(prefix string, fid farcaster.FID) []byte {
	k := make([]byte, len(prefix)+8)
	copy(k, prefix)
	binary.BigEndian.PutUint64(k[len(prefix):], uint64(fid))
	return k
}

func messageKey(hash farcaster.Hash) []byte {
	return append([]byte(messageKeyPrefix), hash.Bytes()...)
}

func fidIndexKey(fid farcaster.FID, t farcaster.MessageType, hash farcaster.Hash) []byte {
	k := fidKey(fidIndexPrefix, fid)
	k = append(k, byte(t))
	return append(k, hash.Bytes()...)
}

func signerKey(fid farcaster.FID, signer []byte) []byte {
	return append(fidKey(signerKeyPrefix, fid), signer...)
}

func (s *Store) ForEachMessage(ctx context.Context, fn storage.MessageIterFunc) error {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(messageKeyPrefix)), nil)
	defer iter.Release()

	for iter.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		m, err := decodeMessage(iter.Value())
		if err != nil {
			return fmt.Errorf("decode message: %w", err)
		}
		if err := fn(m); err != nil {
			return err
		}
	}
	return iter.Error()
}

func (s *Store) MergeMessage(ctx context.Context, m *farcaster.Message, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged, err := s.mergeLocked(m)
	if err != nil {
		return err
	}
	if merged {
		s.emitLocked(storage.Event{Kind: storage.EventMessageMerged, Message: m})
	}
	return nil
}

func (s *Store) MergeMessages(ctx context.Context, ms []*farcaster.Message, source string) []error {
	errs := make([]error, len(ms))
	for i, m := range ms {
		errs[i] = s.MergeMessage(ctx, m, source)
	}
	return errs
}

func (s *Store) MergeIdRegistryEvent(ctx context.Context, e *farcaster.IdRegistryEvent, source string) error {
	data, err := msgpack.Marshal(&storedEvent{
		Fid:             uint64(e.Fid),
		Type:            int32(e.Type),
		CustodyAddress:  e.CustodyAddress,
		BlockNumber:     e.BlockNumber,
		TransactionHash: e.TransactionHash,
	})
	if err != nil {
		return err
	}
	return s.db.Put(fidKey(custodyKeyPrefix, e.Fid), data, nil)
}

func (s *Store) GetMessageByHash(ctx context.Context, hash farcaster.Hash) (*farcaster.Message, error) {
	data, err := s.db.Get(messageKey(hash), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	return decodeMessage(data)
}

func (s *Store) GetMessagesByFid(ctx context.Context, fid farcaster.FID, t farcaster.MessageType) ([]*farcaster.Message, error) {
	prefix := fidKey(fidIndexPrefix, fid)
	prefix = append(prefix, byte(t))

	iter := s.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	var ms []*farcaster.Message
	for iter.Next() {
		hash := farcaster.NewHash(append([]byte(nil), iter.Key()[len(prefix):]...))
		m, err := s.GetMessageByHash(ctx, hash)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, iter.Error()
}

func (s *Store) GetCustodyEventByFid(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error) {
	data, err := s.db.Get(fidKey(custodyKeyPrefix, fid), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, err
	}
	var se storedEvent
	if err := msgpack.Unmarshal(data, &se); err != nil {
		return nil, err
	}
	return &farcaster.IdRegistryEvent{
		Fid:             farcaster.FID(se.Fid),
		Type:            farcaster.IdRegistryEventType(se.Type),
		CustodyAddress:  se.CustodyAddress,
		BlockNumber:     se.BlockNumber,
		TransactionHash: se.TransactionHash,
	}, nil
}

func (s *Store) SubscribeEvents() (<-chan storage.Event, func()) {
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

// DeleteMessage removes a message and its indexes, emitting an advisory
// deleted event when the message existed.
func (s *Store) DeleteMessage(ctx context.Context, hash farcaster.Hash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, err := s.GetMessageByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return err
	}

	batch := new(leveldb.Batch)
	batch.Delete(messageKey(hash))
	batch.Delete(fidIndexKey(m.Fid, m.Type, hash))
	if err := s.db.Write(batch, nil); err != nil {
		return err
	}

	s.emitLocked(storage.Event{Kind: storage.EventMessageDeleted, Message: m})
	return nil
}

// Close releases the resources used by the store.
func (s *Store) Close() error {
	return s.db.Close()
}

// mergeLocked validates and persists m, reporting whether it was new.
// Callers hold the lock.
func (s *Store) mergeLocked(m *farcaster.Message) (bool, error) {
	if m == nil || m.Hash.IsZero() || m.Timestamp == 0 {
		return false, storage.ErrInvalidMessage
	}

	has, err := s.db.Has(messageKey(m.Hash), nil)
	if err != nil {
		return false, err
	}
	if has {
		return false, nil // duplicate, idempotent
	}

	custodyKnown, err := s.db.Has(fidKey(custodyKeyPrefix, m.Fid), nil)
	if err != nil {
		return false, err
	}
	if !custodyKnown {
		return false, storage.ErrUnknownUser
	}
	if !m.Type.IsSignerMessage() {
		signerKnown, err := s.db.Has(signerKey(m.Fid, m.Signer), nil)
		if err != nil {
			return false, err
		}
		if !signerKnown {
			return false, storage.ErrUnknownUser
		}
	}

	data, err := encodeMessage(m)
	if err != nil {
		return false, err
	}

	batch := new(leveldb.Batch)
	batch.Put(messageKey(m.Hash), data)
	batch.Put(fidIndexKey(m.Fid, m.Type, m.Hash), nil)
	if m.Type == farcaster.MessageTypeSignerAdd {
		batch.Put(signerKey(m.Fid, m.Body), nil)
	}
	if err := s.db.Write(batch, nil); err != nil {
		return false, err
	}
	return true, nil
}

// emitLocked delivers e to all subscribers. Callers hold the lock, so
// events leave in commit order.
func (s *Store) emitLocked(e storage.Event) {
	for _, c := range s.subs {
		c <- e
	}
}
