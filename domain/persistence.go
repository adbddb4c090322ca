// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

//go:generate mockgen -destination=mocks/persistence.go -package=mocks . Journal
type JournalEntry struct {
	Id              int64
	Mailbox         string
	SeqNum          uint32
	Uid             uint32
	MailIdHash      string
	From            string
	Subject         string
	HasBody         bool
	AttachmentPaths []string
	FetchedAt       time.Time
}

// Journal records fetched messages.
type Journal interface {
	SaveFetched(mailbox string, mails []*IncomingMessage) error
	Fetched(mailbox string) ([]*JournalEntry, error)
	Close() error
}
