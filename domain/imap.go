// SPDX-License-Identifier: GPL-3.0-or-later
package domain

//go:generate mockgen -destination=mocks/imap.go -package=mocks . RetrievalSession
type RawImapMail struct {
	SeqNum  uint32
	Uid     uint32
	RawMail []byte
}

// RetrievalSession is an IMAP session. Connect, Secure and Authenticate have
// to be called in that order before Select, Select before FetchRaw, Delete and
// Move. Close may be called in any state and more than once.
type RetrievalSession interface {
	State() SessionState

	Connect() error
	Secure() error
	Authenticate() error
	Select(mailbox string) (uint32, error)
	FetchRaw(seqNum uint32) (*RawImapMail, error)

	DeleteReady() (error, error)
	Delete(uids []uint32) error
	MoveReady() (error, error)
	Move(uids []uint32, folder string) error

	Close() error
}
