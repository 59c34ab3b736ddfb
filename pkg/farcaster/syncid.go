// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package farcaster

import (
	"errors"
	"fmt"
)

// TimestampLength is the number of leading bytes of a SyncId occupied by
// the zero-padded decimal timestamp.
const TimestampLength = 10

var (
	ErrMissingTimestamp = errors.New("message has no timestamp")
	ErrMissingHash      = errors.New("message has no hash")
)

// SyncId is the key under which a message is indexed by the sync trie:
// the message timestamp rendered as a 10-byte zero-padded decimal ASCII
// string, followed by the raw message hash. SyncIds sort
// lexicographically in (timestamp, hash) order.
type SyncId struct {
	b []byte
}

// NewSyncId derives the SyncId of a message.
func NewSyncId(m *Message) (SyncId, error) {
	if m.Timestamp == 0 {
		return SyncId{}, ErrMissingTimestamp
	}
	if m.Hash.IsZero() {
		return SyncId{}, ErrMissingHash
	}
	b := make([]byte, 0, TimestampLength+len(m.Hash.Bytes()))
	b = append(b, FormatTimestamp(m.Timestamp)...)
	b = append(b, m.Hash.Bytes()...)
	return SyncId{b: b}, nil
}

// SyncIdFromBytes constructs SyncId from its raw byte representation.
func SyncIdFromBytes(b []byte) SyncId {
	return SyncId{b: b}
}

// FormatTimestamp renders a Farcaster timestamp as the 10-byte
// zero-padded decimal string used to prefix SyncIds.
func FormatTimestamp(ts uint32) string {
	return fmt.Sprintf("%0*d", TimestampLength, ts)
}

// Bytes returns bytes representation of the SyncId.
func (s SyncId) Bytes() []byte {
	return s.b
}

// ByteString returns raw SyncId string without encoding.
func (s SyncId) ByteString() string {
	return string(s.b)
}

// String returns a human-readable representation: the decimal timestamp
// followed by the hex-encoded message hash.
func (s SyncId) String() string {
	if len(s.b) <= TimestampLength {
		return string(s.b)
	}
	return string(s.b[:TimestampLength]) + "/" + NewHash(s.b[TimestampLength:]).String()
}

// IsZero returns true if the SyncId is not set to any value.
func (s SyncId) IsZero() bool {
	return len(s.b) == 0
}

// TimestampPrefix returns the first n bytes of the SyncId. It is used
// for snapshot prefixes and divergence walks.
func (s SyncId) TimestampPrefix(n int) []byte {
	if n > len(s.b) {
		n = len(s.b)
	}
	return s.b[:n]
}

// UnderlyingHash returns the message hash portion of the SyncId.
func (s SyncId) UnderlyingHash() Hash {
	if len(s.b) <= TimestampLength {
		return ZeroHash
	}
	return NewHash(s.b[TimestampLength:])
}
