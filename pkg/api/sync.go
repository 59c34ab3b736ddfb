// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/farcasterhub/hub/pkg/jsonhttp"
)

type childMetadataResponse struct {
	Prefix      string `json:"prefix"`
	NumMessages int    `json:"numMessages"`
	Hash        string `json:"hash"`
}

type metadataResponse struct {
	Prefix      string                  `json:"prefix"`
	NumMessages int                     `json:"numMessages"`
	Hash        string                  `json:"hash"`
	Children    []childMetadataResponse `json:"children"`
}

type syncIdsResponse struct {
	Ids []string `json:"ids"`
}

// Trie prefixes are ASCII decimal timestamp digits, so they travel
// directly in the URL path.

func (s *server) syncMetadataByPrefixHandler(w http.ResponseWriter, r *http.Request) {
	prefix := []byte(mux.Vars(r)["prefix"])

	md, ok := s.trie.NodeMetadata(prefix)
	if !ok {
		s.metrics.ErrorCount.Inc()
		jsonhttp.NotFound(w, nil)
		return
	}

	resp := metadataResponse{
		Prefix:      string(md.Prefix),
		NumMessages: md.NumMessages,
		Hash:        md.Hash,
	}
	for _, child := range md.Children {
		resp.Children = append(resp.Children, childMetadataResponse{
			Prefix:      string(child.Prefix),
			NumMessages: child.NumMessages,
			Hash:        child.Hash,
		})
	}

	jsonhttp.OK(w, resp)
}

func (s *server) syncIdsByPrefixHandler(w http.ResponseWriter, r *http.Request) {
	prefix := []byte(mux.Vars(r)["prefix"])

	resp := syncIdsResponse{}
	for _, id := range s.trie.Values(prefix) {
		resp.Ids = append(resp.Ids, id.String())
	}

	jsonhttp.OK(w, resp)
}
