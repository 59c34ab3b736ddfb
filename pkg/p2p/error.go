// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package p2p

import (
	"errors"
	"fmt"
)

// ErrPeerNotFound is returned when the requested peer is not connected.
var ErrPeerNotFound = errors.New("peer not found")

// DisconnectError is an error that is specifically handled inside p2p.
// If returned by a protocol handler it causes the peer to disconnect.
type DisconnectError struct {
	err error
}

// Disconnect wraps an error and creates a special error that is treated
// specially by p2p. It causes the peer to disconnect.
func Disconnect(err error) error {
	return &DisconnectError{
		err: err,
	}
}

// Unwrap returns an underlying error.
func (e *DisconnectError) Unwrap() error { return e.err }

// Error implements the standard go error interface.
func (e *DisconnectError) Error() string {
	return e.err.Error()
}

// IncompatibleStreamError is the error that can be returned when the
// remote peer does not speak the requested stream protocol.
type IncompatibleStreamError struct {
	err error
}

// NewIncompatibleStreamError wraps the error that is the cause of the
// stream incompatibility.
func NewIncompatibleStreamError(err error) *IncompatibleStreamError {
	return &IncompatibleStreamError{err: err}
}

// Unwrap returns an underlying error.
func (e *IncompatibleStreamError) Unwrap() error { return e.err }

// Error implements the standard go error interface.
func (e *IncompatibleStreamError) Error() string {
	return fmt.Sprintf("incompatible stream: %v", e.err)
}
