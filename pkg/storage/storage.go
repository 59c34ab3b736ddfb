// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storage provides the interfaces of the message storage engine
// consumed by the sync core. The engine validates, persists and indexes
// signed messages; the sync core only merges into it, iterates over it
// and observes its mutation events.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/farcasterhub/hub/pkg/farcaster"
)

var (
	// ErrNotFound is returned on reads of unknown messages or users.
	ErrNotFound = errors.New("storage: not found")

	// ErrUnknownUser is returned by merges of messages whose user has no
	// custody event, or whose signer has not been delegated. Callers
	// recover by syncing the user's custody event and signer set.
	ErrUnknownUser = errors.New("storage: unknown user")

	// ErrInvalidMessage is returned by merges of malformed messages.
	ErrInvalidMessage = errors.New("storage: invalid message")
)

const (
	StatusUnknownUser = 412
	StatusNotFound    = 404
)

// Status maps a merge error to its wire status code, or 0 for errors
// with no assigned code.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnknownUser):
		return StatusUnknownUser
	case errors.Is(err, ErrNotFound):
		return StatusNotFound
	}
	return 0
}

// EventKind discriminates storage mutation events.
type EventKind int

const (
	// EventMessageMerged signals that a message transaction committed.
	EventMessageMerged EventKind = iota + 1
	// EventMessageDeleted signals that a message was removed. Delivery
	// is advisory: the underlying transaction may still have failed and
	// observers re-converge on the next sync round.
	EventMessageDeleted
)

func (k EventKind) String() string {
	switch k {
	case EventMessageMerged:
		return "message-merged"
	case EventMessageDeleted:
		return "message-deleted"
	}
	return "unknown"
}

// Event is a single storage mutation record. Events are emitted in the
// order the underlying transactions committed.
type Event struct {
	Kind    EventKind
	Message *farcaster.Message
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Kind, e.Message.Hash)
}

// MessageIterFunc is a callback on every message found by iteration.
// Returning an error stops the iteration.
type MessageIterFunc func(*farcaster.Message) error

// Iterator iterates over all persisted messages in arbitrary order.
type Iterator interface {
	ForEachMessage(ctx context.Context, fn MessageIterFunc) error
}

// Merger merges messages and identity registry events. Merges are
// idempotent: a duplicate merge succeeds without emitting an event.
type Merger interface {
	MergeMessage(ctx context.Context, m *farcaster.Message, source string) error
	// MergeMessages merges a batch, returning one result per input in
	// order. Implementations may process the batch in parallel.
	MergeMessages(ctx context.Context, ms []*farcaster.Message, source string) []error
	MergeIdRegistryEvent(ctx context.Context, e *farcaster.IdRegistryEvent, source string) error
}

// Getter answers point and per-user queries used by the RPC surface.
type Getter interface {
	GetMessageByHash(ctx context.Context, hash farcaster.Hash) (*farcaster.Message, error)
	GetMessagesByFid(ctx context.Context, fid farcaster.FID, t farcaster.MessageType) ([]*farcaster.Message, error)
	GetCustodyEventByFid(ctx context.Context, fid farcaster.FID) (*farcaster.IdRegistryEvent, error)
}

// Subscriber exposes the storage mutation event stream. The returned
// channel receives events in commit order until unsubscribe is called.
type Subscriber interface {
	SubscribeEvents() (c <-chan Event, unsubscribe func())
}

// Storer is the complete storage engine surface the hub consumes.
type Storer interface {
	Iterator
	Merger
	Getter
	Subscriber
}
