// SPDX-License-Identifier: GPL-3.0-or-later
package domain

import "time"

type Credentials struct {
	Address string
	Secret  string
	Host    string
	// Port 0 selects the protocol default.
	Port int
}

type Recipients struct {
	To  []string
	Cc  []string
	Bcc []string
}

// All returns to, cc and bcc in that order, the envelope recipients of a
// submission.
func (r Recipients) All() []string {
	all := make([]string, 0, len(r.To)+len(r.Cc)+len(r.Bcc))
	all = append(all, r.To...)
	all = append(all, r.Cc...)
	all = append(all, r.Bcc...)
	return all
}

type OutgoingMessage struct {
	From       string
	Recipients Recipients

	Subject        *string
	PlainText      *string
	HTML           *string
	AttachmentPath *string

	// Date is omitted from the header when zero.
	Date time.Time
}

type IncomingMessage struct {
	SeqNum     uint32
	Uid        uint32
	MailIdHash string

	From    string
	Subject string
	Body    *string

	// AttachmentPath is the last attachment written for this message,
	// AttachmentPaths all of them in the order they were encountered.
	AttachmentPath  string
	AttachmentPaths []string
}
