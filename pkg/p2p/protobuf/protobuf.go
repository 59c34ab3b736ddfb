// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package protobuf provides delimited protobuf readers and writers over
// p2p streams.
package protobuf

import (
	"context"
	"io"

	ggio "github.com/gogo/protobuf/io"
	"github.com/gogo/protobuf/proto"

	"github.com/farcasterhub/hub/pkg/p2p"
)

const delimitedReaderMaxSize = 128 * 1024 // max message size

type Message = proto.Message

func NewWriterAndReader(s p2p.Stream) (Writer, Reader) {
	return NewWriter(s), NewReader(s)
}

func NewReader(r io.Reader) Reader {
	return newReader(ggio.NewDelimitedReader(r, delimitedReaderMaxSize))
}

func NewWriter(w io.Writer) Writer {
	return newWriter(ggio.NewDelimitedWriter(w))
}

func ReadMessages(r io.Reader, newMessage func() Message) (m []Message, err error) {
	pr := NewReader(r)
	for {
		msg := newMessage()
		if err := pr.ReadMsg(msg); err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		m = append(m, msg)
	}
	return m, nil
}

type Reader struct {
	ggio.Reader
}

func newReader(r ggio.Reader) Reader {
	return Reader{Reader: r}
}

func (r Reader) ReadMsgWithContext(ctx context.Context, msg proto.Message) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- r.ReadMsg(msg)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

type Writer struct {
	ggio.Writer
}

func newWriter(w ggio.Writer) Writer {
	return Writer{Writer: w}
}

func (w Writer) WriteMsgWithContext(ctx context.Context, msg proto.Message) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- w.WriteMsg(msg)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
