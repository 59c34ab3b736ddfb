// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"
	"time"

	"github.com/farcasterhub/hub/pkg/ratelimit"
)

func TestAllow(t *testing.T) {
	l := ratelimit.New(time.Minute, 3)

	if !l.Allow("peer", 3) {
		t.Fatal("burst should be allowed")
	}
	if l.Allow("peer", 1) {
		t.Fatal("exhausted bucket should deny")
	}
	if !l.Allow("other", 1) {
		t.Fatal("keys must have independent buckets")
	}
}

func TestClear(t *testing.T) {
	l := ratelimit.New(time.Minute, 1)

	if !l.Allow("peer", 1) {
		t.Fatal("first request should be allowed")
	}
	if l.Allow("peer", 1) {
		t.Fatal("second request should be denied")
	}

	l.Clear("peer")

	if !l.Allow("peer", 1) {
		t.Fatal("cleared key should start with a full bucket")
	}
}
