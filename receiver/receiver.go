// SPDX-License-Identifier: GPL-3.0-or-later
package receiver

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/CrawX/go-mail-agent/domain"
	"github.com/CrawX/go-mail-agent/imapconnection"
	"github.com/CrawX/go-mail-agent/log"
	"github.com/CrawX/go-mail-agent/mail"

	"github.com/sirupsen/logrus"
)

const (
	DefaultCount = 3

	untitledDirectory = "untitled"
)

type Receiver struct {
	credentials   domain.Credentials
	configuration *configuration

	newSession func() domain.RetrievalSession
	store      attachmentStore
	headers    *mail.HeaderDecoder

	l *logrus.Logger
}

func New(credentials domain.Credentials, configFunc ...ConfigFunc) (*Receiver, error) {
	config := &configuration{}
	for _, f := range configFunc {
		err := f(config)
		if err != nil {
			return nil, fmt.Errorf("error applying configuration: %w", err)
		}
	}

	return &Receiver{
		credentials:   credentials,
		configuration: config,
		newSession: func() domain.RetrievalSession {
			return imapconnection.NewImapConnection(credentials, config.StartTLS)
		},
		store:   fileStore{},
		headers: mail.NewHeaderDecoder(),
		l:       log.Logger(log.LOG_RECEIVER),
	}, nil
}

// Fetch retrieves the newest count messages of mailbox, newest first, and
// writes their attachments below destinationRoot. count <= 0 fetches
// DefaultCount messages. Every fetched message yields one record, whatever
// could be decoded of it. An attachment that cannot be written, even under
// its fallback name, fails the whole fetch with domain.ErrAttachmentWrite.
func (r *Receiver) Fetch(mailbox string, count int, destinationRoot string) ([]*domain.IncomingMessage, error) {
	if count <= 0 {
		count = DefaultCount
	}

	session := r.newSession()
	defer func() {
		err := session.Close()
		if err != nil {
			r.l.WithField("error", err).Warn("Could not close retrieval session")
		}
	}()

	err := session.Connect()
	if err != nil {
		return nil, err
	}
	err = session.Secure()
	if err != nil {
		return nil, err
	}
	err = session.Authenticate()
	if err != nil {
		return nil, err
	}

	total, err := session.Select(mailbox)
	if err != nil {
		return nil, fmt.Errorf("could not select mailbox %s: %w", mailbox, err)
	}

	dispose, err := r.dispositionReady(session, mailbox)
	if err != nil {
		return nil, err
	}

	n := uint32(count)
	if n > total {
		n = total
	}
	r.l.WithFields(logrus.Fields{"mailbox": mailbox, "messages": total, "fetching": n}).Info("Fetching mails")

	messages := make([]*domain.IncomingMessage, 0, n)
	for i := uint32(0); i < n; i++ {
		seqNum := total - i
		raw, err := session.FetchRaw(seqNum)
		if err != nil {
			return nil, fmt.Errorf("could not fetch mail %d: %w", seqNum, err)
		}

		msg, err := r.process(raw, destinationRoot)
		if err != nil {
			return nil, fmt.Errorf("could not process mail %d: %w", seqNum, err)
		}
		r.l.WithFields(logrus.Fields{
			"seq":         msg.SeqNum,
			"subject":     mail.ShortSubject(msg.Subject),
			"body":        msg.Body != nil,
			"attachments": len(msg.AttachmentPaths),
		}).Debug("Processed mail")
		messages = append(messages, msg)
	}

	if r.configuration.Journal != nil && len(messages) > 0 {
		err = r.configuration.Journal.SaveFetched(strings.ToUpper(mailbox), messages)
		if err != nil {
			return nil, fmt.Errorf("could not record fetched mails: %w", err)
		}
	}

	if dispose && len(messages) > 0 {
		err = r.dispose(session, messages)
		if err != nil {
			return nil, err
		}
	}

	return messages, nil
}

// dispositionReady reports whether the configured move or delete can run.
// A mailbox that is not ready is logged and left alone.
func (r *Receiver) dispositionReady(session domain.RetrievalSession, mailbox string) (bool, error) {
	if r.configuration.DeleteFetched {
		notDeleteReadyReason, err := session.DeleteReady()
		if err != nil {
			return false, fmt.Errorf("could not check for delete readiness: %w", err)
		}

		if notDeleteReadyReason != nil {
			r.l.WithFields(logrus.Fields{"mailbox": mailbox, "error": notDeleteReadyReason}).Warn("Mailbox is not ready for mail deletion, not deleting")
			return false, nil
		}
		return true, nil
	}

	if r.configuration.MoveFetched {
		notMoveReadyReason, err := session.MoveReady()
		if err != nil {
			return false, fmt.Errorf("could not check for move readiness: %w", err)
		}

		if notMoveReadyReason != nil {
			r.l.WithFields(logrus.Fields{"mailbox": mailbox, "error": notMoveReadyReason}).Warn("Mailbox is not ready for mail moving, not moving")
			return false, nil
		}
		return true, nil
	}

	return false, nil
}

func (r *Receiver) dispose(session domain.RetrievalSession, messages []*domain.IncomingMessage) error {
	uids := make([]uint32, 0, len(messages))
	for _, m := range messages {
		uids = append(uids, m.Uid)
	}

	if r.configuration.MoveFetched {
		r.l.WithFields(logrus.Fields{"mails": len(uids), "destination": r.configuration.MoveFolder}).Info("Moving fetched mails")
		err := session.Move(uids, r.configuration.MoveFolder)
		if err != nil {
			return fmt.Errorf("could not move fetched mails: %w", err)
		}
		return nil
	}

	r.l.WithFields(logrus.Fields{"mails": len(uids)}).Info("Deleting fetched mails")
	err := session.Delete(uids)
	if err != nil {
		return fmt.Errorf("could not delete fetched mails: %w", err)
	}
	return nil
}

// process turns a raw mail into its record. Only attachment write failures
// are returned; parse and part decode errors leave the record incomplete.
func (r *Receiver) process(raw *domain.RawImapMail, destinationRoot string) (*domain.IncomingMessage, error) {
	msg := &domain.IncomingMessage{
		SeqNum: raw.SeqNum,
		Uid:    raw.Uid,
	}

	parsed, err := mail.Decode(raw.RawMail)
	if err != nil {
		r.l.WithFields(logrus.Fields{"seq": raw.SeqNum, "error": err}).Warn("Could not parse mail, keeping an empty record")
		return msg, nil
	}

	msg.MailIdHash = parsed.MailIdHash
	msg.From = r.headers.Decode(parsed.From)
	msg.Subject = r.headers.Decode(parsed.Subject)

	if !parsed.IsMultipart {
		if text, ok := parsed.BodyText(); ok {
			msg.Body = &text
		}
		return msg, nil
	}

	directory := ""
	for _, part := range parsed.Parts {
		if part.IsContainer {
			continue
		}

		if part.IsAttachment() {
			if len(part.Filename) == 0 {
				continue
			}

			if len(directory) == 0 {
				directory = attachmentDirectory(destinationRoot, msg.Subject)
				err = r.store.MkdirAll(directory)
				if err != nil {
					return nil, fmt.Errorf("%w %s: %w", domain.ErrAttachmentWrite, directory, err)
				}
			}

			path, err := r.writeAttachment(directory, part)
			if err != nil {
				return nil, err
			}

			msg.AttachmentPath = path
			msg.AttachmentPaths = append(msg.AttachmentPaths, path)
			continue
		}

		if part.ContentType != "text/plain" {
			continue
		}

		text, err := part.Text()
		if err != nil {
			r.l.WithFields(logrus.Fields{"seq": raw.SeqNum, "error": err}).Debug("Skipping undecodable text part")
			continue
		}
		msg.Body = &text
	}

	return msg, nil
}

// writeAttachment writes the part below directory. Names that are not a plain
// file name, or that the filesystem rejects as a name, are decoded once more
// with the fallback decoder and written a second time.
func (r *Receiver) writeAttachment(directory string, part *mail.MimePart) (string, error) {
	if isPlainFilename(part.Filename) {
		path := filepath.Join(directory, part.Filename)
		err := r.store.WriteFile(path, part.Payload)
		if err == nil {
			return path, nil
		}

		if !isNamingError(err) {
			return "", fmt.Errorf("%w %s: %w", domain.ErrAttachmentWrite, path, err)
		}
		r.l.WithFields(logrus.Fields{"filename": part.Filename, "error": err}).Debug("Write failed, retrying with fallback filename")
	}

	path := filepath.Join(directory, r.headers.DecodeFilename(part.Filename))
	err := r.store.WriteFile(path, part.Payload)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", domain.ErrAttachmentWrite, path, err)
	}
	return path, nil
}

// isNamingError reports whether the filesystem refused the file name itself,
// as opposed to permissions or space.
func isNamingError(err error) bool {
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		return false
	}
	return errors.Is(pathErr.Err, syscall.EILSEQ) ||
		errors.Is(pathErr.Err, syscall.EINVAL) ||
		errors.Is(pathErr.Err, syscall.ENAMETOOLONG)
}

func isPlainFilename(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	// Encoded words that could not be decoded
	if strings.Contains(name, "=?") {
		return false
	}
	return !strings.ContainsAny(name, "/\\\x00")
}

func attachmentDirectory(destinationRoot, subject string) string {
	name := mail.Sanitize(subject)
	if len(name) == 0 {
		name = untitledDirectory
	}
	return filepath.Join(destinationRoot, name)
}
