// SPDX-License-Identifier: GPL-3.0-or-later
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/CrawX/go-mail-agent/domain"
	"github.com/CrawX/go-mail-agent/log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_fetched",
			Up: []string{
				`CREATE TABLE fetched (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					mailbox TEXT NOT NULL,
					seqnum INTEGER NOT NULL,
					uid INTEGER NOT NULL,
					mailidhash TEXT NOT NULL,
					sender TEXT NOT NULL,
					subject TEXT NOT NULL,
					hasbody INTEGER NOT NULL,
					fetchedat INTEGER NOT NULL
				)`,
				`CREATE INDEX fetched_mailbox ON fetched (mailbox)`,
			},
			Down: []string{`DROP TABLE fetched`},
		},
		{
			Id: "2_attachments",
			Up: []string{
				`CREATE TABLE attachments (
					fetchedid INTEGER NOT NULL REFERENCES fetched (id) ON DELETE CASCADE,
					position INTEGER NOT NULL,
					path TEXT NOT NULL,
					PRIMARY KEY (fetchedid, position)
				)`,
			},
			Down: []string{`DROP TABLE attachments`},
		},
	},
}

// Persistence is the sqlite backed fetch journal.
type Persistence struct {
	db  *sqlx.DB
	now func() time.Time
	l   *logrus.Logger
}

func NewPersistence(datasource string) (*Persistence, error) {
	db, err := sqlx.Connect("sqlite3", datasource)
	if err != nil {
		return nil, fmt.Errorf("could not open db: %w", err)
	}
	db.SetMaxOpenConns(1)

	l := log.Logger(log.LOG_PERSISTENCE)
	l.WithField("file", datasource).Info("Connected")

	_, err = db.Exec(`PRAGMA journal_mode=WAL`)
	if err != nil {
		return nil, fmt.Errorf("could not set journal mode: %w", err)
	}
	_, err = db.Exec(`PRAGMA synchronous=normal`)
	if err != nil {
		return nil, fmt.Errorf("could not set synchronous mode: %w", err)
	}

	appliedMigrations, err := migrate.Exec(db.DB, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return nil, fmt.Errorf("could not migrate to newest version: %w", err)
	}

	l.WithField("migrations", appliedMigrations).Debug("Executed migrations")

	return &Persistence{
		db:  db,
		now: time.Now,
		l:   l,
	}, nil
}

func (p *Persistence) Close() error {
	err := p.db.Close()
	if err != nil {
		return fmt.Errorf("could not close db: %w", err)
	}
	p.l.Info("Disconnected")
	return nil
}

// SaveFetched records mails as fetched from mailbox in one transaction.
func (p *Persistence) SaveFetched(mailbox string, mails []*domain.IncomingMessage) error {
	tx, err := p.db.BeginTxx(context.TODO(), nil)
	if err != nil {
		return fmt.Errorf("could not start transaction: %w", err)
	}

	fetchedStmt, err := tx.Prepare(
		"INSERT INTO fetched(mailbox, seqnum, uid, mailidhash, sender, subject, hasbody, fetchedat) VALUES(?, ?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
	}
	defer fetchedStmt.Close()

	attachmentStmt, err := tx.Prepare(
		"INSERT INTO attachments(fetchedid, position, path) VALUES(?, ?, ?)",
	)
	if err != nil {
		return txEnd(tx, fmt.Errorf("could not prepare statement: %w", err))
	}
	defer attachmentStmt.Close()

	fetchedAt := p.now().Unix()
	for _, mail := range mails {
		result, err := fetchedStmt.Exec(
			mailbox, mail.SeqNum, mail.Uid, mail.MailIdHash, mail.From, mail.Subject, mail.Body != nil, fetchedAt,
		)
		if err != nil {
			return txEnd(tx, fmt.Errorf("could not save mail: %w", err))
		}

		id, err := result.LastInsertId()
		if err != nil {
			return txEnd(tx, fmt.Errorf("could not get id of saved mail: %w", err))
		}

		for position, path := range mail.AttachmentPaths {
			_, err = attachmentStmt.Exec(id, position, path)
			if err != nil {
				return txEnd(tx, fmt.Errorf("could not save attachment path: %w", err))
			}
		}
	}

	err = txEnd(tx, nil)
	if err != nil {
		return err
	}

	p.l.WithFields(logrus.Fields{"mailbox": mailbox, "mails": len(mails)}).Debug("Persisted fetched mails")
	return nil
}

// Fetched lists the journal of mailbox, oldest entry first.
func (p *Persistence) Fetched(mailbox string) ([]*domain.JournalEntry, error) {
	dbEntries := []struct {
		Id         int64
		Mailbox    string
		SeqNum     uint32
		Uid        uint32
		MailIdHash string
		Sender     string
		Subject    string
		HasBody    bool
		FetchedAt  int64
	}{}

	err := p.db.Select(
		&dbEntries,
		`SELECT id, mailbox, seqnum, uid, mailidhash, sender, subject, hasbody, fetchedat FROM fetched WHERE mailbox = ? ORDER BY id`,
		mailbox,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	entries := []*domain.JournalEntry{}
	if len(dbEntries) == 0 {
		return entries, nil
	}

	ids := make([]int64, 0, len(dbEntries))
	for _, e := range dbEntries {
		ids = append(ids, e.Id)
	}
	paths, err := p.attachmentPaths(ids)
	if err != nil {
		return nil, err
	}

	for _, e := range dbEntries {
		entries = append(
			entries,
			&domain.JournalEntry{
				Id:              e.Id,
				Mailbox:         e.Mailbox,
				SeqNum:          e.SeqNum,
				Uid:             e.Uid,
				MailIdHash:      e.MailIdHash,
				From:            e.Sender,
				Subject:         e.Subject,
				HasBody:         e.HasBody,
				AttachmentPaths: paths[e.Id],
				FetchedAt:       time.Unix(e.FetchedAt, 0),
			},
		)
	}

	p.l.WithFields(logrus.Fields{"mailbox": mailbox, "count": len(entries)}).Debug("Found fetched mails")
	return entries, nil
}

func (p *Persistence) attachmentPaths(ids []int64) (map[int64][]string, error) {
	qry, args, err := sqlx.In(
		"SELECT fetchedid, path FROM attachments WHERE fetchedid IN (?) ORDER BY fetchedid, position",
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("could not replace IN in query: %w", err)
	}

	dbAttachments := []struct {
		FetchedId int64
		Path      string
	}{}
	err = p.db.Select(&dbAttachments, qry, args...)
	if err != nil {
		return nil, fmt.Errorf("could not query db: %w", err)
	}

	paths := map[int64][]string{}
	for _, a := range dbAttachments {
		paths[a.FetchedId] = append(paths[a.FetchedId], a.Path)
	}
	return paths, nil
}

func txEnd(tx *sqlx.Tx, err error) error {
	if err == nil {
		err = tx.Commit()
		if err != nil {
			return fmt.Errorf("could not commit tx: %w", err)
		}
	} else {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			errStr := err.Error()
			return fmt.Errorf("%s, could not rollback tx: %w", errStr, rollbackErr)
		} else {
			return err
		}
	}

	return nil
}
