// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gossip

var (
	BroadcastContact = (*Service).broadcastContact
	HandleEnvelope   = (*Service).handleEnvelope
)
