// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "errors"

// Errors returned by the library are wrapped around these kinds, test with errors.Is.
var (
	ErrInvalidRecipientType = errors.New("recipients must be a list of addresses")
	ErrNoRecipients         = errors.New("no recipients")

	ErrConnection          = errors.New("connection failed")
	ErrSecurityNegotiation = errors.New("secure channel negotiation failed")
	ErrAuthentication      = errors.New("authentication failed")
	ErrSessionState        = errors.New("invalid session state")

	ErrAttachmentRead  = errors.New("could not read attachment")
	ErrAttachmentWrite = errors.New("could not write attachment")
	ErrPartDecode      = errors.New("could not decode part")
)
