// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package farcaster contains most basic and general Farcaster concepts.
package farcaster

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"lukechampine.com/blake3"
)

const (
	// HashSize is the size of a message hash in bytes.
	HashSize = 20

	// Epoch is the Farcaster epoch, seconds since the UNIX epoch.
	// Message timestamps count seconds from this instant.
	Epoch int64 = 1609459200
)

var (
	ErrInvalidMessage = errors.New("invalid message")
)

// FID is a Farcaster user identifier.
type FID uint64

// Hash represents the content address of a message.
type Hash struct {
	b []byte
}

// NewHash constructs Hash from a byte slice.
func NewHash(b []byte) Hash {
	return Hash{b: b}
}

// ParseHexHash returns a Hash from a hex-encoded string representation.
// A leading 0x prefix is accepted.
func ParseHexHash(s string) (h Hash, err error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return h, err
	}
	return NewHash(b), nil
}

// MustParseHexHash returns a Hash from a hex-encoded string
// representation, and panics if there is a parse error.
func MustParseHexHash(s string) Hash {
	h, err := ParseHexHash(s)
	if err != nil {
		panic(err)
	}
	return h
}

// HashData returns the Hash of arbitrary data.
func HashData(data []byte) Hash {
	d := blake3.Sum512(data)
	return NewHash(append([]byte(nil), d[:HashSize]...))
}

// String returns a hex-encoded representation of the Hash.
func (h Hash) String() string {
	return hex.EncodeToString(h.b)
}

// Equal returns true if two hashes are identical.
func (h Hash) Equal(o Hash) bool {
	return bytes.Equal(h.b, o.b)
}

// IsZero returns true if the Hash is not set to any value.
func (h Hash) IsZero() bool {
	return h.Equal(ZeroHash)
}

// Bytes returns bytes representation of the Hash.
func (h Hash) Bytes() []byte {
	return h.b
}

// ByteString returns raw Hash string without encoding.
func (h Hash) ByteString() string {
	return string(h.Bytes())
}

// UnmarshalJSON sets Hash to a value from JSON-encoded representation.
func (h *Hash) UnmarshalJSON(b []byte) (err error) {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*h, err = ParseHexHash(s)
	return err
}

// MarshalJSON returns JSON-encoded representation of Hash.
func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// ZeroHash is the hash that has no value.
var ZeroHash = NewHash(nil)

// MessageType enumerates the kinds of signed messages a hub stores.
type MessageType int32

const (
	MessageTypeCastAdd MessageType = iota + 1
	MessageTypeCastRemove
	MessageTypeReactionAdd
	MessageTypeReactionRemove
	MessageTypeAmpAdd
	MessageTypeAmpRemove
	MessageTypeVerificationAdd
	MessageTypeVerificationRemove
	MessageTypeSignerAdd
	MessageTypeSignerRemove
	MessageTypeUserDataAdd
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeCastAdd:
		return "cast-add"
	case MessageTypeCastRemove:
		return "cast-remove"
	case MessageTypeReactionAdd:
		return "reaction-add"
	case MessageTypeReactionRemove:
		return "reaction-remove"
	case MessageTypeAmpAdd:
		return "amp-add"
	case MessageTypeAmpRemove:
		return "amp-remove"
	case MessageTypeVerificationAdd:
		return "verification-add"
	case MessageTypeVerificationRemove:
		return "verification-remove"
	case MessageTypeSignerAdd:
		return "signer-add"
	case MessageTypeSignerRemove:
		return "signer-remove"
	case MessageTypeUserDataAdd:
		return "user-data-add"
	}
	return "unknown"
}

// IsSignerMessage reports whether messages of this type manage signer
// delegations. Signer messages are signed by the custody address and
// gate the validity of every other message type.
func (t MessageType) IsSignerMessage() bool {
	return t == MessageTypeSignerAdd || t == MessageTypeSignerRemove
}

// Message is a signed user message as stored by a hub. The hash is the
// content address of the body and the key under which peers exchange it.
type Message struct {
	Fid       FID         `json:"fid"`
	Type      MessageType `json:"type"`
	Timestamp uint32      `json:"timestamp"` // Farcaster seconds
	Hash      Hash        `json:"hash"`
	Signer    []byte      `json:"signer"`
	Body      []byte      `json:"body"`
	Signature []byte      `json:"signature"`
}

// IdRegistryEventType enumerates custody events from the identity registry.
type IdRegistryEventType int32

const (
	IdRegistryEventTypeRegister IdRegistryEventType = iota + 1
	IdRegistryEventTypeTransfer
)

// IdRegistryEvent records the custody address of a user as observed on
// the identity registry.
type IdRegistryEvent struct {
	Fid             FID                 `json:"fid"`
	Type            IdRegistryEventType `json:"type"`
	CustodyAddress  []byte              `json:"custodyAddress"`
	BlockNumber     uint64              `json:"blockNumber"`
	TransactionHash []byte              `json:"transactionHash"`
}

// Now returns the current time in Farcaster seconds.
func Now() uint32 {
	return ToFarcasterTime(time.Now())
}

// ToFarcasterTime converts a wall-clock time to Farcaster seconds.
// Times before the epoch clamp to zero.
func ToFarcasterTime(t time.Time) uint32 {
	s := t.Unix() - Epoch
	if s < 0 {
		return 0
	}
	return uint32(s)
}

// FromFarcasterTime converts Farcaster seconds back to wall-clock time.
func FromFarcasterTime(ts uint32) time.Time {
	return time.Unix(int64(ts)+Epoch, 0)
}

// PeerID identifies a hub on the peer-to-peer network. It wraps the raw
// bytes of the underlying transport identity.
type PeerID struct {
	b []byte
}

// NewPeerID constructs PeerID from a byte slice.
func NewPeerID(b []byte) PeerID {
	return PeerID{b: b}
}

// String returns a hex-encoded representation of the PeerID.
func (p PeerID) String() string {
	return hex.EncodeToString(p.b)
}

// Equal returns true if two peer ids are identical.
func (p PeerID) Equal(o PeerID) bool {
	return bytes.Equal(p.b, o.b)
}

// IsZero returns true if the PeerID is not set to any value.
func (p PeerID) IsZero() bool {
	return len(p.b) == 0
}

// Bytes returns bytes representation of the PeerID.
func (p PeerID) Bytes() []byte {
	return p.b
}

// ByteString returns raw PeerID string without encoding.
func (p PeerID) ByteString() string {
	return string(p.b)
}

// ZeroPeerID is the peer id that has no value.
var ZeroPeerID = NewPeerID(nil)
