// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peersync

import (
	"encoding/hex"
	"errors"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/merkletrie"
	"github.com/farcasterhub/hub/pkg/peersync/pb"
)

// Hex strings carry a 0x prefix on the wire.

var errMissingHexPrefix = errors.New("missing 0x prefix")

func toWireHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

func fromWireHex(s string) ([]byte, error) {
	if len(s) < 2 || s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return nil, errMissingHexPrefix
	}
	return hex.DecodeString(s[2:])
}

func toWireMessage(m *farcaster.Message) *pb.Message {
	return &pb.Message{
		Fid:       uint64(m.Fid),
		Type:      int32(m.Type),
		Timestamp: m.Timestamp,
		Hash:      m.Hash.Bytes(),
		Signer:    m.Signer,
		Body:      m.Body,
		Signature: m.Signature,
	}
}

func fromWireMessage(wm *pb.Message) *farcaster.Message {
	return &farcaster.Message{
		Fid:       farcaster.FID(wm.Fid),
		Type:      farcaster.MessageType(wm.Type),
		Timestamp: wm.Timestamp,
		Hash:      farcaster.NewHash(wm.Hash),
		Signer:    wm.Signer,
		Body:      wm.Body,
		Signature: wm.Signature,
	}
}

func toWireMetadata(md merkletrie.NodeMetadata) *pb.Metadata {
	wm := &pb.Metadata{
		Prefix:      md.Prefix,
		NumMessages: uint64(md.NumMessages),
		Hash:        md.Hash,
	}
	for b, child := range md.Children {
		wm.Children = append(wm.Children, &pb.ChildMetadata{
			Byte:        uint32(b),
			Prefix:      child.Prefix,
			NumMessages: uint64(child.NumMessages),
			Hash:        child.Hash,
		})
	}
	return wm
}

func fromWireMetadata(wm *pb.Metadata) merkletrie.NodeMetadata {
	md := merkletrie.NodeMetadata{
		Prefix:      wm.Prefix,
		NumMessages: int(wm.NumMessages),
		Hash:        wm.Hash,
		Children:    make(map[byte]merkletrie.NodeMetadata),
	}
	for _, child := range wm.Children {
		md.Children[byte(child.Byte)] = merkletrie.NodeMetadata{
			Prefix:      child.Prefix,
			NumMessages: int(child.NumMessages),
			Hash:        child.Hash,
		}
	}
	return md
}

func toWireCustodyEvent(e *farcaster.IdRegistryEvent) *pb.CustodyEvent {
	return &pb.CustodyEvent{
		Fid:             uint64(e.Fid),
		Type:            int32(e.Type),
		CustodyAddress:  e.CustodyAddress,
		BlockNumber:     e.BlockNumber,
		TransactionHash: e.TransactionHash,
	}
}

func fromWireCustodyEvent(we *pb.CustodyEvent) *farcaster.IdRegistryEvent {
	return &farcaster.IdRegistryEvent{
		Fid:             farcaster.FID(we.Fid),
		Type:            farcaster.IdRegistryEventType(we.Type),
		CustodyAddress:  we.CustodyAddress,
		BlockNumber:     we.BlockNumber,
		TransactionHash: we.TransactionHash,
	}
}
