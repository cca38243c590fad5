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

// Package errors provides centralized error definitions for the network map service.
package errors

import "github.com/gridsuite/network-map-go/internal/common"

// Lookup errors. Call sites wrap them with the offending id.
var (
	// ErrNetworkNotFound is returned when the network id does not resolve in the store.
	ErrNetworkNotFound = common.NewErrNotFound("Network not found")

	// ErrSubstationNotFound is returned when a scoped query names a substation absent from the network.
	ErrSubstationNotFound = common.NewErrNotFound("Substation not found")
)

// Request errors
var (
	// ErrInvalidNetworkUUID is returned when the network id path parameter is not a UUID.
	ErrInvalidNetworkUUID = common.NewErrBadRequest("networkUuid must be a UUID")
)

// Store errors
var (
	// ErrStoreUnavailable is returned when the backing store cannot serve a request.
	ErrStoreUnavailable = common.NewInternalServerError("Network store unavailable - see console for details")

	// ErrCorruptNetwork is returned when stored records cannot be decoded into a network.
	ErrCorruptNetwork = common.NewInternalServerError("Stored network could not be decoded - see console for details")
)
