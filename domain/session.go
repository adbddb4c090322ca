// SPDX-License-Identifier: GPL-3.0-or-later
package domain

type SessionState int

const (
	Created = SessionState(iota)
	Connected
	Secured
	Authenticated
	Ready
	Closed
)

func (s SessionState) String() string {
	switch s {
	case Created:
		return "created"
	case Connected:
		return "connected"
	case Secured:
		return "secured"
	case Authenticated:
		return "authenticated"
	case Ready:
		return "ready"
	case Closed:
		return "closed"
	}

	return "unknown"
}
