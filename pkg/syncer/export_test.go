// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package syncer

var (
	FetchMissingSyncIdsByPrefix = (*Engine).fetchMissingSyncIdsByPrefix
	FetchAndMergeMessages       = (*Engine).fetchAndMergeMessages
	SyncUserAndRetryMessage     = (*Engine).syncUserAndRetryMessage
	HandleEvent                 = (*Engine).handleEvent
)
