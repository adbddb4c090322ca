// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/smtp.go -package=mocks . SubmissionSession

// SubmissionSession is an SMTP session. Connect, Secure and Authenticate have
// to be called in that order before Transmit. Close may be called in any state
// and more than once.
type SubmissionSession interface {
	State() SessionState

	Connect() error
	Secure() error
	Authenticate() error
	Transmit(from string, recipients []string, payload []byte) error

	Close() error
}
