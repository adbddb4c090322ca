// SPDX-License-Identifier: GPL-3.0-or-later
package sender

import (
	"fmt"
	"time"

	"github.com/CrawX/go-mail-agent/domain"
	"github.com/CrawX/go-mail-agent/log"
	"github.com/CrawX/go-mail-agent/mail"
	"github.com/CrawX/go-mail-agent/smtpconnection"

	"github.com/sirupsen/logrus"
)

type Sender struct {
	credentials domain.Credentials

	newSession func() domain.SubmissionSession
	now        func() time.Time

	l *logrus.Logger
}

// New creates a sender submitting as credentials.Address.
func New(credentials domain.Credentials) *Sender {
	return &Sender{
		credentials: credentials,
		newSession: func() domain.SubmissionSession {
			return smtpconnection.NewSmtpConnection(credentials)
		},
		now: time.Now,
		l:   log.Logger(log.LOG_SENDER),
	}
}

// Send composes a message to the recipients in to plus the options and
// transmits it once. to accepts the same shapes as Cc and Bcc. Invalid
// recipients and unreadable attachments fail before any connection is made.
func (s *Sender) Send(to interface{}, opts ...MessageFunc) error {
	toList, err := recipientList("to", to)
	if err != nil {
		return err
	}

	msg := &domain.OutgoingMessage{
		From:       s.credentials.Address,
		Recipients: domain.Recipients{To: toList},
	}
	for _, f := range opts {
		err = f(msg)
		if err != nil {
			return fmt.Errorf("invalid message: %w", err)
		}
	}

	envelope := msg.Recipients.All()
	if len(envelope) == 0 {
		return domain.ErrNoRecipients
	}

	msg.Date = s.now()
	payload, err := mail.Encode(msg)
	if err != nil {
		return fmt.Errorf("could not encode mail: %w", err)
	}

	session := s.newSession()
	defer func() {
		err := session.Close()
		if err != nil {
			s.l.WithField("error", err).Warn("Could not close submission session")
		}
	}()

	err = session.Connect()
	if err != nil {
		return err
	}
	err = session.Secure()
	if err != nil {
		return err
	}
	err = session.Authenticate()
	if err != nil {
		return err
	}

	err = session.Transmit(msg.From, envelope, payload)
	if err != nil {
		return err
	}

	subject := ""
	if msg.Subject != nil {
		subject = *msg.Subject
	}
	s.l.WithFields(logrus.Fields{"subject": mail.ShortSubject(subject), "recipients": len(envelope)}).Info("Sent mail")
	return nil
}
