// Copyright 2022 The Hub Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonhttp provides convenience methods for sending JSON
// responses over HTTP.
package jsonhttp

import (
	"encoding/json"
	"fmt"
	"net/http"
)

var (
	// DefaultContentTypeHeader is the value for the Content-Type header
	// on all JSON responses.
	DefaultContentTypeHeader = "application/json; charset=utf-8"

	// EscapeHTML specifies whether problematic HTML characters should
	// be escaped inside JSON quoted strings.
	EscapeHTML = false
)

// StatusResponse is a standardized error-or-status JSON body.
type StatusResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Respond writes response as JSON with the given status code. A nil
// response produces a StatusResponse from the status code's canonical
// text.
func Respond(w http.ResponseWriter, statusCode int, response interface{}) {
	if response == nil {
		response = &StatusResponse{
			Message: http.StatusText(statusCode),
			Code:    statusCode,
		}
	} else {
		switch message := response.(type) {
		case string:
			response = &StatusResponse{
				Message: message,
				Code:    statusCode,
			}
		case error:
			response = &StatusResponse{
				Message: message.Error(),
				Code:    statusCode,
			}
		}
	}

	var b []byte
	var err error
	if EscapeHTML {
		b, err = json.Marshal(response)
	} else {
		b, err = marshalNoEscape(response)
	}
	if err != nil {
		InternalServerError(w, nil)
		return
	}

	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", DefaultContentTypeHeader)
	}
	w.WriteHeader(statusCode)
	fmt.Fprintln(w, string(b))
}

func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf noNewlineBuffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.b, nil
}

// noNewlineBuffer strips the trailing newline json.Encoder emits.
type noNewlineBuffer struct {
	b []byte
}

func (w *noNewlineBuffer) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	if n := len(w.b); n > 0 && w.b[n-1] == '\n' {
		w.b = w.b[:n-1]
	}
	return len(p), nil
}

// OK writes response with 200 status code.
func OK(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusOK, response)
}

// BadRequest writes response with 400 status code.
func BadRequest(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusBadRequest, response)
}

// NotFound writes response with 404 status code.
func NotFound(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusNotFound, response)
}

// PreconditionFailed writes response with 412 status code.
func PreconditionFailed(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusPreconditionFailed, response)
}

// InternalServerError writes response with 500 status code.
func InternalServerError(w http.ResponseWriter, response interface{}) {
	Respond(w, http.StatusInternalServerError, response)
}
