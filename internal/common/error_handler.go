/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package common

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gridsuite/network-map-go/internal/common/model"
)

const (
	notFoundPrefix       = "404 Not Found: "
	badRequestPrefix     = "400 Bad Request: "
	internalServerPrefix = "500 Internal Server Error: "
)

// ErrorHandler is one message of an error response body.
type ErrorHandler struct {
	MessageType   string `json:"messageType"`
	Text          string `json:"text"`
	Code          string `json:"code,omitempty"`
	CorrelationId string `json:"correlationId,omitempty"`
	Timestamp     string `json:"timestamp,omitempty"`
}

// ErrorResult is the body of every error response.
type ErrorResult struct {
	Messages []ErrorHandler `json:"messages"`
}

// NewErrorHandler builds one message of an error body.
func NewErrorHandler(messageType string, text error, code string, correlationId string, timestamp string) *ErrorHandler {
	return &ErrorHandler{
		MessageType:   messageType,
		Text:          text.Error(),
		Code:          code,
		CorrelationId: correlationId,
		Timestamp:     timestamp,
	}
}

// NewErrorResponse builds the error response for err with the given status.
// componentName, operation and info end up in the correlation id so that a
// response can be matched to the log line that produced it.
func NewErrorResponse(err error, status int, componentName string, operation string, info string) model.ImplResponse {
	correlation := componentName + "-" + operation
	if info != "" {
		correlation += "-" + info
	}
	handler := NewErrorHandler("Error", err, strconv.Itoa(status), correlation, GetCurrentTimestamp())
	return model.Response(status, ErrorResult{Messages: []ErrorHandler{*handler}})
}

// StatusOf maps an error built by the helpers below to its HTTP status.
func StatusOf(err error) int {
	switch {
	case IsErrNotFound(err):
		return http.StatusNotFound
	case IsErrBadRequest(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// NewErrNotFound returns an error that maps to 404.
func NewErrNotFound(elementId string) error {
	return errors.New(notFoundPrefix + elementId)
}

// NewErrBadRequest returns an error that maps to 400.
func NewErrBadRequest(message string) error {
	return errors.New(badRequestPrefix + message)
}

// NewInternalServerError returns an error that maps to 500.
func NewInternalServerError(message string) error {
	return errors.New(internalServerPrefix + message)
}

// IsErrNotFound also matches wrapped errors.
func IsErrNotFound(err error) bool {
	return hasPrefixInChain(err, notFoundPrefix)
}

// IsErrBadRequest also matches wrapped errors.
func IsErrBadRequest(err error) bool {
	return hasPrefixInChain(err, badRequestPrefix)
}

// IsInternalServerError also matches wrapped errors.
func IsInternalServerError(err error) bool {
	return hasPrefixInChain(err, internalServerPrefix)
}

func hasPrefixInChain(err error, prefix string) bool {
	if err == nil {
		return false
	}
	if strings.HasPrefix(err.Error(), prefix) {
		return true
	}
	switch u := err.(type) {
	case interface{ Unwrap() error }:
		return hasPrefixInChain(u.Unwrap(), prefix)
	case interface{ Unwrap() []error }:
		for _, e := range u.Unwrap() {
			if hasPrefixInChain(e, prefix) {
				return true
			}
		}
	}
	return false
}
