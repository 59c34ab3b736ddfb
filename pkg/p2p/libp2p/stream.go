// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package libp2p

import (
	"io"
	"time"

	"github.com/libp2p/go-libp2p-core/network"

	"github.com/farcasterhub/hub/pkg/p2p"
)

// closeDeadline is how long to wait for the remote side to acknowledge
// a full close before resetting the stream.
const closeDeadline = 5 * time.Second

type stream struct {
	network.Stream
}

func newStream(s network.Stream) p2p.Stream {
	return &stream{Stream: s}
}

func (s *stream) FullClose() error {
	if err := s.Close(); err != nil {
		_ = s.Stream.Reset()
		return err
	}

	if err := s.SetReadDeadline(time.Now().Add(closeDeadline)); err != nil {
		_ = s.Stream.Reset()
		return err
	}

	// wait for the remote EOF; anything else means the stream was not
	// closed cleanly
	buf := make([]byte, 1)
	if _, err := s.Read(buf); err != io.EOF {
		_ = s.Stream.Reset()
		if err == nil {
			return nil
		}
		return err
	}
	return nil
}
