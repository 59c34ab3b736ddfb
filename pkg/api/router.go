// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/farcasterhub/hub/pkg/jsonhttp"
)

func (s *server) setupRouting() {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(jsonhttp.NotFoundHandler)

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Farcaster hub")
	})

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		jsonhttp.OK(w, nil)
	})

	router.Handle("/v1/castsByFid/{fid}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.castsByFidHandler),
	})
	router.Handle("/v1/reactionsByFid/{fid}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.reactionsByFidHandler),
	})
	router.Handle("/v1/ampsByFid/{fid}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.ampsByFidHandler),
	})
	router.Handle("/v1/verificationsByFid/{fid}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.verificationsByFidHandler),
	})
	router.Handle("/v1/signersByFid/{fid}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.signersByFidHandler),
	})
	router.Handle("/v1/userDataByFid/{fid}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.userDataByFidHandler),
	})
	router.Handle("/v1/custodyEventByFid/{fid}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.custodyEventByFidHandler),
	})

	router.Handle("/v1/syncMetadataByPrefix/{prefix}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.syncMetadataByPrefixHandler),
	})
	router.Handle("/v1/syncIdsByPrefix/{prefix}", jsonhttp.MethodHandler{
		"GET": http.HandlerFunc(s.syncIdsByPrefixHandler),
	})

	s.Handler = handlers.RecoveryHandler()(s.countingMiddleware(router))
}

func (s *server) countingMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.metrics.RequestCount.Inc()
		h.ServeHTTP(w, r)
	})
}
