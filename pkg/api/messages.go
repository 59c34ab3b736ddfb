// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/farcasterhub/hub/pkg/farcaster"
	"github.com/farcasterhub/hub/pkg/jsonhttp"
	"github.com/farcasterhub/hub/pkg/storage"
)

type messagesResponse struct {
	Messages []*farcaster.Message `json:"messages"`
}

func (s *server) castsByFidHandler(w http.ResponseWriter, r *http.Request) {
	s.messagesByFid(w, r, farcaster.MessageTypeCastAdd, farcaster.MessageTypeCastRemove)
}

func (s *server) reactionsByFidHandler(w http.ResponseWriter, r *http.Request) {
	s.messagesByFid(w, r, farcaster.MessageTypeReactionAdd, farcaster.MessageTypeReactionRemove)
}

func (s *server) ampsByFidHandler(w http.ResponseWriter, r *http.Request) {
	s.messagesByFid(w, r, farcaster.MessageTypeAmpAdd, farcaster.MessageTypeAmpRemove)
}

func (s *server) verificationsByFidHandler(w http.ResponseWriter, r *http.Request) {
	s.messagesByFid(w, r, farcaster.MessageTypeVerificationAdd, farcaster.MessageTypeVerificationRemove)
}

func (s *server) signersByFidHandler(w http.ResponseWriter, r *http.Request) {
	s.messagesByFid(w, r, farcaster.MessageTypeSignerAdd, farcaster.MessageTypeSignerRemove)
}

func (s *server) userDataByFidHandler(w http.ResponseWriter, r *http.Request) {
	s.messagesByFid(w, r, farcaster.MessageTypeUserDataAdd)
}

func (s *server) messagesByFid(w http.ResponseWriter, r *http.Request, types ...farcaster.MessageType) {
	fid, err := parseFid(mux.Vars(r)["fid"])
	if err != nil {
		s.metrics.ErrorCount.Inc()
		jsonhttp.BadRequest(w, "bad fid")
		return
	}

	var msgs []*farcaster.Message
	for _, t := range types {
		ms, err := s.storage.GetMessagesByFid(r.Context(), fid, t)
		if err != nil {
			s.logger.Debugf("api: messages by fid %d type %s: %v", fid, t, err)
			s.metrics.ErrorCount.Inc()
			jsonhttp.InternalServerError(w, nil)
			return
		}
		msgs = append(msgs, ms...)
	}

	jsonhttp.OK(w, messagesResponse{Messages: msgs})
}

func (s *server) custodyEventByFidHandler(w http.ResponseWriter, r *http.Request) {
	fid, err := parseFid(mux.Vars(r)["fid"])
	if err != nil {
		s.metrics.ErrorCount.Inc()
		jsonhttp.BadRequest(w, "bad fid")
		return
	}

	e, err := s.storage.GetCustodyEventByFid(r.Context(), fid)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.metrics.ErrorCount.Inc()
			jsonhttp.NotFound(w, nil)
			return
		}
		s.logger.Debugf("api: custody event by fid %d: %v", fid, err)
		s.metrics.ErrorCount.Inc()
		jsonhttp.InternalServerError(w, nil)
		return
	}

	jsonhttp.OK(w, e)
}

func parseFid(v string) (farcaster.FID, error) {
	fid, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, err
	}
	return farcaster.FID(fid), nil
}
