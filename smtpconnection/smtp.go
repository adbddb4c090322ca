// SPDX-License-Identifier: GPL-3.0-or-later
package smtpconnection

//go:generate mockgen -destination=smtp_mocks_test.go -package=smtpconnection -source smtp.go
import (
	"bytes"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/CrawX/go-mail-agent/domain"
	"github.com/CrawX/go-mail-agent/log"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
	"github.com/sirupsen/logrus"
)

const (
	DefaultPort = 587
	localName   = "localhost"
)

// smtpClient is the part of *smtp.Client the session needs.
type smtpClient interface {
	Hello(localName string) error
	Extension(ext string) (bool, string)
	StartTLS(config *tls.Config) error
	Auth(a sasl.Client) error
	SendMail(from string, to []string, r io.Reader) error
	Quit() error
	Close() error
}

type dialFunc func(addr string) (smtpClient, error)

func dialSmtp(addr string) (smtpClient, error) {
	return smtp.Dial(addr)
}

// SmtpConnection is a submission session:
// Created -> Connected -> Secured -> Ready -> Closed.
type SmtpConnection struct {
	credentials domain.Credentials
	tlsConfig   *tls.Config
	dial        dialFunc

	client smtpClient
	state  domain.SessionState

	l *logrus.Entry
}

func NewSmtpConnection(credentials domain.Credentials) *SmtpConnection {
	if credentials.Port == 0 {
		credentials.Port = DefaultPort
	}

	return &SmtpConnection{
		credentials: credentials,
		tlsConfig:   &tls.Config{ServerName: credentials.Host},
		dial:        dialSmtp,
		state:       domain.Created,
		l:           log.Logger(log.LOG_SMTP).WithFields(logrus.Fields{"server": credentials.Host, "port": credentials.Port}),
	}
}

func (sc *SmtpConnection) State() domain.SessionState {
	return sc.state
}

func (sc *SmtpConnection) addr() string {
	return net.JoinHostPort(sc.credentials.Host, strconv.Itoa(sc.credentials.Port))
}

func (sc *SmtpConnection) expectState(operation string, expected domain.SessionState) error {
	if sc.state != expected {
		return fmt.Errorf("%w: cannot %s in state %s, expected %s", domain.ErrSessionState, operation, sc.state, expected)
	}
	return nil
}

func (sc *SmtpConnection) Connect() error {
	if err := sc.expectState("connect", domain.Created); err != nil {
		return err
	}

	client, err := sc.dial(sc.addr())
	if err != nil {
		return fmt.Errorf("%w: could not dial to smtp %s: %w", domain.ErrConnection, sc.addr(), err)
	}
	sc.client = client

	err = client.Hello(localName)
	if err != nil {
		// The connection is open, Close has to tear it down.
		sc.state = domain.Connected
		return fmt.Errorf("%w: EHLO rejected by %s: %w", domain.ErrConnection, sc.addr(), err)
	}

	sc.state = domain.Connected
	sc.l.Debug("Connected to server")
	return nil
}

func (sc *SmtpConnection) Secure() error {
	if err := sc.expectState("negotiate STARTTLS", domain.Connected); err != nil {
		return err
	}

	err := sc.client.StartTLS(sc.tlsConfig)
	if err != nil {
		return fmt.Errorf("%w: STARTTLS failed: %w", domain.ErrSecurityNegotiation, err)
	}

	sc.state = domain.Secured
	sc.l.Debug("Negotiated STARTTLS")
	return nil
}

func (sc *SmtpConnection) Authenticate() error {
	if err := sc.expectState("authenticate", domain.Secured); err != nil {
		return err
	}

	err := sc.client.Auth(sc.saslClient())
	if err != nil {
		return fmt.Errorf("%w: could not login to smtp as %s: %w", domain.ErrAuthentication, sc.credentials.Address, err)
	}

	// Submission has no mailbox to select.
	sc.state = domain.Ready
	sc.l.WithField("user", sc.credentials.Address).Debug("Logged in to server")
	return nil
}

// saslClient picks PLAIN unless the server only advertises LOGIN.
func (sc *SmtpConnection) saslClient() sasl.Client {
	ok, mechanisms := sc.client.Extension("AUTH")
	if ok {
		advertised := strings.Fields(strings.ToUpper(mechanisms))
		if !contains(advertised, sasl.Plain) && contains(advertised, sasl.Login) {
			return sasl.NewLoginClient(sc.credentials.Address, sc.credentials.Secret)
		}
	}

	return sasl.NewPlainClient("", sc.credentials.Address, sc.credentials.Secret)
}

func (sc *SmtpConnection) Transmit(from string, recipients []string, payload []byte) error {
	if err := sc.expectState("transmit", domain.Ready); err != nil {
		return err
	}

	err := sc.client.SendMail(from, recipients, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not transmit mail: %w", err)
	}

	sc.l.WithFields(logrus.Fields{"recipients": len(recipients), "size": len(payload)}).Info("Transmitted mail")
	return nil
}

// Close ends the session with QUIT when connected. It is safe to call in any
// state and more than once.
func (sc *SmtpConnection) Close() error {
	if sc.state == domain.Closed {
		return nil
	}
	defer func() {
		sc.state = domain.Closed
	}()

	if sc.client == nil {
		return nil
	}

	err := sc.client.Quit()
	if err != nil {
		closeErr := sc.client.Close()
		if closeErr != nil {
			sc.l.WithField("error", closeErr).Debug("Could not close connection after failed QUIT")
		}
		return fmt.Errorf("could not quit smtp session: %w", err)
	}

	sc.l.Debug("Disconnected")
	return nil
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
