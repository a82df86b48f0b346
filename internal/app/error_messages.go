// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// augment server handlers and by the client that talks to them.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies. The client matches on them to turn a transport error
// back into the sentinel error the server started from, so the wording must
// stay in one place.
package app

const (
	// MsgInvalidDocument is returned when the request body is not a YAML
	// mapping or JSON object.
	MsgInvalidDocument = "invalid configuration document"

	// MsgNoProxiesFound is returned when the document has neither proxies nor
	// proxy providers to augment.
	MsgNoProxiesFound = "no proxies found"

	// MsgUnknownPreset is returned when the requested preset is not
	// registered.
	MsgUnknownPreset = "unknown preset"

	// MsgInvalidMergeDirection is returned when the merge query parameter is
	// neither "append" nor "prepend".
	MsgInvalidMergeDirection = "invalid merge direction"

	// MsgUnsupportedFormat is returned when the requested document format is
	// neither YAML nor JSON.
	MsgUnsupportedFormat = "unsupported document format"

	// MsgBodyTooLarge is returned when the request body exceeds the configured
	// limit.
	MsgBodyTooLarge = "request body too large"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
