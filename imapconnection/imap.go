// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

//go:generate mockgen -destination=imap_mocks_test.go -package=imapconnection -source imap.go
import (
	"crypto/tls"
	"fmt"
	"io/ioutil"
	"net"
	"strconv"
	"strings"

	"github.com/CrawX/go-mail-agent/domain"
	"github.com/CrawX/go-mail-agent/log"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

const DefaultPort = 993

// imapClient is the part of *client.Client the session needs.
type imapClient interface {
	StartTLS(tlsConfig *tls.Config) error
	Login(username, password string) error
	Select(name string, readOnly bool) (*imap.MailboxStatus, error)
	Fetch(seqset *imap.SeqSet, items []imap.FetchItem, ch chan *imap.Message) error
	UidSearch(criteria *imap.SearchCriteria) ([]uint32, error)
	UidStore(seqset *imap.SeqSet, item imap.StoreItem, value interface{}, ch chan *imap.Message) error
	UidCopy(seqset *imap.SeqSet, dest string) error
	Expunge(ch chan uint32) error
	Logout() error
}

type dialFunc func(addr string, tlsConfig *tls.Config) (imapClient, error)

func dialTLS(addr string, tlsConfig *tls.Config) (imapClient, error) {
	return client.DialTLS(addr, tlsConfig)
}

func dialPlain(addr string, _ *tls.Config) (imapClient, error) {
	return client.Dial(addr)
}

// ImapConnection is a retrieval session:
// Created -> Connected (-> Secured with STARTTLS) -> Authenticated -> Ready -> Closed.
type ImapConnection struct {
	credentials domain.Credentials
	tlsConfig   *tls.Config
	startTLS    bool
	dial        dialFunc
	disposers   func() (deleter, mover, error)

	connection imapClient
	state      domain.SessionState

	selectedFolder string
	mailDeleter    deleter
	mailMover      mover

	l *logrus.Entry
}

// NewImapConnection creates a session using implicit TLS, or STARTTLS on a
// plain connection if startTLS is set.
func NewImapConnection(credentials domain.Credentials, startTLS bool) *ImapConnection {
	if credentials.Port == 0 {
		credentials.Port = DefaultPort
	}

	conn := &ImapConnection{
		credentials: credentials,
		tlsConfig:   &tls.Config{ServerName: credentials.Host},
		startTLS:    startTLS,
		dial:        dialTLS,
		state:       domain.Created,
		l:           log.Logger(log.LOG_IMAP).WithFields(logrus.Fields{"server": credentials.Host, "port": credentials.Port}),
	}
	if startTLS {
		conn.dial = dialPlain
	}
	conn.disposers = conn.discoverDisposers

	return conn
}

func (ic *ImapConnection) State() domain.SessionState {
	return ic.state
}

func (ic *ImapConnection) addr() string {
	return net.JoinHostPort(ic.credentials.Host, strconv.Itoa(ic.credentials.Port))
}

func (ic *ImapConnection) expectState(operation string, expected ...domain.SessionState) error {
	for _, s := range expected {
		if ic.state == s {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot %s in state %s", domain.ErrSessionState, operation, ic.state)
}

func (ic *ImapConnection) Connect() error {
	if err := ic.expectState("connect", domain.Created); err != nil {
		return err
	}

	imapClient, err := ic.dial(ic.addr(), ic.tlsConfig)
	if err != nil {
		return fmt.Errorf("%w: could not dial to imap %s: %w", domain.ErrConnection, ic.addr(), err)
	}

	ic.connection = imapClient
	ic.state = domain.Connected
	ic.l.WithField("starttls", ic.startTLS).Debug("Connected to server")
	return nil
}

// Secure negotiates STARTTLS. Implicit TLS connections are secure already and
// stay in the connected state.
func (ic *ImapConnection) Secure() error {
	if err := ic.expectState("negotiate STARTTLS", domain.Connected); err != nil {
		return err
	}

	if !ic.startTLS {
		return nil
	}

	err := ic.connection.StartTLS(ic.tlsConfig)
	if err != nil {
		return fmt.Errorf("%w: STARTTLS failed: %w", domain.ErrSecurityNegotiation, err)
	}

	ic.state = domain.Secured
	ic.l.Debug("Negotiated STARTTLS")
	return nil
}

func (ic *ImapConnection) Authenticate() error {
	allowed := domain.Connected
	if ic.startTLS {
		allowed = domain.Secured
	}
	if err := ic.expectState("authenticate", allowed); err != nil {
		return err
	}

	err := ic.connection.Login(ic.credentials.Address, ic.credentials.Secret)
	if err != nil {
		return fmt.Errorf("%w: could not login to imap as %s: %w", domain.ErrAuthentication, ic.credentials.Address, err)
	}

	ic.state = domain.Authenticated
	ic.l.WithField("user", ic.credentials.Address).Debug("Logged in to server")
	return nil
}

// Select selects the upper-cased mailbox and returns its message count.
func (ic *ImapConnection) Select(mailbox string) (uint32, error) {
	if err := ic.expectState("select", domain.Authenticated, domain.Ready); err != nil {
		return 0, err
	}

	folder := strings.ToUpper(mailbox)
	m, err := ic.connection.Select(folder, false)
	if err != nil {
		return 0, fmt.Errorf("could not select folder %s: %w", folder, err)
	}

	ic.selectedFolder = folder
	ic.state = domain.Ready
	ic.l.WithFields(logrus.Fields{"folder": folder, "messages": m.Messages}).Debug("Selected folder")
	return m.Messages, nil
}

// FetchRaw fetches the complete message with the given sequence number
// without setting the \Seen flag.
func (ic *ImapConnection) FetchRaw(seqNum uint32) (*domain.RawImapMail, error) {
	if err := ic.expectState("fetch", domain.Ready); err != nil {
		return nil, err
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(seqNum)

	fullBodySection := &imap.BodySectionName{
		Peek: true,
	}
	fetchItems := []imap.FetchItem{fullBodySection.FetchItem(), imap.FetchUid}

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- ic.connection.Fetch(seqset, fetchItems, messages)
	}()

	// Drain the channel even after a failure, Fetch blocks otherwise.
	var mail *domain.RawImapMail
	var readErr error
	for msg := range messages {
		if mail != nil || readErr != nil {
			continue
		}

		r := msg.GetBody(fullBodySection)
		if r == nil {
			readErr = fmt.Errorf("server returned no body for message %d", seqNum)
			continue
		}
		rawMail, err := ioutil.ReadAll(r)
		if err != nil {
			readErr = fmt.Errorf("could not read mail body: %w", err)
			continue
		}

		mail = &domain.RawImapMail{
			SeqNum:  seqNum,
			Uid:     msg.Uid,
			RawMail: rawMail,
		}
	}

	err := <-done
	if err != nil {
		return nil, fmt.Errorf("could not fetch mail %d: %w", seqNum, err)
	}
	if readErr != nil {
		return nil, readErr
	}
	if mail == nil {
		return nil, fmt.Errorf("message %d not found in %s", seqNum, ic.selectedFolder)
	}

	return mail, nil
}

func (ic *ImapConnection) setupDisposition() error {
	if ic.mailDeleter != nil && ic.mailMover != nil {
		return nil
	}

	d, m, err := ic.disposers()
	if err != nil {
		return err
	}
	ic.mailDeleter, ic.mailMover = d, m
	return nil
}

func (ic *ImapConnection) DeleteReady() (error, error) {
	if err := ic.expectState("delete", domain.Ready); err != nil {
		return nil, err
	}
	if err := ic.setupDisposition(); err != nil {
		return nil, err
	}
	return ic.mailDeleter.deleteReady()
}

func (ic *ImapConnection) Delete(uids []uint32) error {
	if err := ic.expectState("delete", domain.Ready); err != nil {
		return err
	}
	if err := ic.setupDisposition(); err != nil {
		return err
	}
	return ic.mailDeleter.delete(uids)
}

func (ic *ImapConnection) MoveReady() (error, error) {
	if err := ic.expectState("move", domain.Ready); err != nil {
		return nil, err
	}
	if err := ic.setupDisposition(); err != nil {
		return nil, err
	}
	return ic.mailMover.moveReady()
}

func (ic *ImapConnection) Move(uids []uint32, folder string) error {
	if err := ic.expectState("move", domain.Ready); err != nil {
		return err
	}
	if err := ic.setupDisposition(); err != nil {
		return err
	}
	return ic.mailMover.move(uids, folder)
}

// Close logs out. It is safe to call in any state and more than once.
func (ic *ImapConnection) Close() error {
	if ic.state == domain.Closed {
		return nil
	}
	defer func() {
		ic.state = domain.Closed
	}()

	if ic.connection == nil {
		return nil
	}

	err := ic.connection.Logout()
	if err != nil {
		return fmt.Errorf("could not logout from imap: %w", err)
	}

	ic.l.Debug("Logged out")
	return nil
}
