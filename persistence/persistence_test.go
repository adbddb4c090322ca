// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/CrawX/go-mail-agent/domain"

	"github.com/stretchr/testify/assert"
)

var fetchTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestPersistence(t *testing.T, datasource string) *Persistence {
	p, err := NewPersistence(datasource)
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	p.now = func() time.Time { return fetchTime }
	return p
}

func TestPersistence_SaveFetched(t *testing.T) {
	p := newTestPersistence(t, ":memory:")
	defer p.Close()

	body := "Hallo Welt"
	err := p.SaveFetched("INBOX", []*domain.IncomingMessage{
		{
			SeqNum:          12,
			Uid:             112,
			MailIdHash:      "abc",
			From:            "sender@example.com",
			Subject:         "Q1 Report!",
			Body:            &body,
			AttachmentPath:  "out/Q1_Report_/b.pdf",
			AttachmentPaths: []string{"out/Q1_Report_/a.pdf", "out/Q1_Report_/b.pdf"},
		},
		{
			SeqNum: 11,
			Uid:    111,
		},
	})
	assert.NoError(t, err)

	err = p.SaveFetched("ARCHIVE", []*domain.IncomingMessage{{SeqNum: 1, Uid: 1}})
	assert.NoError(t, err)

	entries, err := p.Fetched("INBOX")
	assert.NoError(t, err)
	assert.Equal(t, []*domain.JournalEntry{
		{
			Id:              1,
			Mailbox:         "INBOX",
			SeqNum:          12,
			Uid:             112,
			MailIdHash:      "abc",
			From:            "sender@example.com",
			Subject:         "Q1 Report!",
			HasBody:         true,
			AttachmentPaths: []string{"out/Q1_Report_/a.pdf", "out/Q1_Report_/b.pdf"},
			FetchedAt:       time.Unix(fetchTime.Unix(), 0),
		},
		{
			Id:        2,
			Mailbox:   "INBOX",
			SeqNum:    11,
			Uid:       111,
			FetchedAt: time.Unix(fetchTime.Unix(), 0),
		},
	}, entries)
}

func TestPersistence_FetchedEmpty(t *testing.T) {
	p := newTestPersistence(t, ":memory:")
	defer p.Close()

	entries, err := p.Fetched("INBOX")
	assert.NoError(t, err)
	assert.Equal(t, []*domain.JournalEntry{}, entries)
}

func TestPersistence_Reopen(t *testing.T) {
	datasource := filepath.Join(t.TempDir(), "journal.db")

	p := newTestPersistence(t, datasource)
	assert.NoError(t, p.SaveFetched("INBOX", []*domain.IncomingMessage{{SeqNum: 3, Uid: 30, Subject: "kept"}}))
	assert.NoError(t, p.Close())

	// migrations are not applied twice
	p = newTestPersistence(t, datasource)
	defer p.Close()

	entries, err := p.Fetched("INBOX")
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "kept", entries[0].Subject)
	}
}

func TestPersistence_SaveFetchedClosed(t *testing.T) {
	p := newTestPersistence(t, ":memory:")
	assert.NoError(t, p.Close())

	err := p.SaveFetched("INBOX", []*domain.IncomingMessage{{SeqNum: 1}})
	assert.EqualError(t, err, "could not start transaction: sql: database is closed")
}
