// SPDX-License-Identifier: GPL-3.0-or-later
package imapconnection

//go:generate mockgen -destination=disposition_mocks_test.go -package=imapconnection -source disposition.go
import (
	"errors"
	"fmt"

	"github.com/emersion/go-imap"
	move "github.com/emersion/go-imap-move"
	uidplus "github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
	"github.com/sirupsen/logrus"
)

// All disposition interfaces live in one file. mockgen's source mode cannot
// resolve unexported interfaces spread over several files.

type deleter interface {
	delete(uids []uint32) error
	deleteReady() (error, error)
}

type mover interface {
	move(uids []uint32, folder string) error
	moveReady() (error, error)
}

type uidExpunger interface {
	UidExpunge(seqSet *imap.SeqSet, ch chan uint32) error
}

type uidMover interface {
	UidMove(seqset *imap.SeqSet, dest string) error
}

var ErrFlaggedForDeletion = errors.New("folder has previous items with delete flag set")

// discoverDisposers picks UIDPLUS and MOVE implementations when the server
// supports them and falls back to flag+EXPUNGE and COPY+delete otherwise.
func (ic *ImapConnection) discoverDisposers() (deleter, mover, error) {
	compatDeleter := &compatibilityDeleter{client: ic.connection}

	c, ok := ic.connection.(*client.Client)
	if !ok {
		return compatDeleter, &compatibilityMover{client: ic.connection, deleter: compatDeleter}, nil
	}

	var d deleter = compatDeleter
	uidPlusClient := uidplus.NewClient(c)
	uidPlusSupported, err := uidPlusClient.SupportUidPlus()
	if err != nil {
		return nil, nil, fmt.Errorf("could not check for UIDPLUS support: %w", err)
	}
	if uidPlusSupported {
		d = &uidPlusDeleter{client: ic.connection, expunger: uidPlusClient}
	}

	var m mover = &compatibilityMover{client: ic.connection, deleter: d}
	moveClient := move.NewClient(c)
	moveSupported, err := moveClient.SupportMove()
	if err != nil {
		return nil, nil, fmt.Errorf("could not check for MOVE support: %w", err)
	}
	if moveSupported {
		m = &moveMover{client: moveClient}
	}

	ic.l.WithFields(logrus.Fields{"uidplus": uidPlusSupported, "move": moveSupported}).Debug("Checked server capabilities")
	return d, m, nil
}

func flagDeleted(c imapClient, uids []uint32) (*imap.SeqSet, error) {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err := c.UidStore(seqset, imap.FormatFlagsOp(imap.AddFlags, true), []interface{}{imap.DeletedFlag}, nil)
	if err != nil {
		return nil, fmt.Errorf("could not set delete flag: %w", err)
	}

	return seqset, nil
}

// collectExpunged runs expunge and checks that one message per uid went away.
func collectExpunged(expected int, expunge func(ch chan uint32) error) error {
	out := make(chan uint32)
	done := make(chan error, 1)
	go func() {
		done <- expunge(out)
	}()

	expunged := 0
	for range out {
		expunged++
	}

	err := <-done
	if err != nil {
		return fmt.Errorf("could not expunge mails: %w", err)
	}

	if expunged != expected {
		return fmt.Errorf("unexpected number of expunges, expected %d got %d", expected, expunged)
	}

	return nil
}

type uidPlusDeleter struct {
	client   imapClient
	expunger uidExpunger
}

func (u *uidPlusDeleter) delete(uids []uint32) error {
	seqset, err := flagDeleted(u.client, uids)
	if err != nil {
		return err
	}

	return collectExpunged(len(uids), func(ch chan uint32) error {
		return u.expunger.UidExpunge(seqset, ch)
	})
}

// UID EXPUNGE only removes the given uids, nothing else can interfere.
func (u *uidPlusDeleter) deleteReady() (error, error) {
	return nil, nil
}

type compatibilityDeleter struct {
	client imapClient
}

func (c *compatibilityDeleter) delete(uids []uint32) error {
	notDeleteReadyReason, err := c.deleteReady()
	if err != nil {
		return fmt.Errorf("could not check for delete readiness: %w", err)
	}

	if notDeleteReadyReason != nil {
		return fmt.Errorf("folder is not ready for delete: %w", notDeleteReadyReason)
	}

	_, err = flagDeleted(c.client, uids)
	if err != nil {
		return err
	}

	return collectExpunged(len(uids), c.client.Expunge)
}

// A plain EXPUNGE removes every message flagged \Deleted, so the folder must
// not hold any before we flag ours.
func (c *compatibilityDeleter) deleteReady() (error, error) {
	criteria := imap.NewSearchCriteria()
	criteria.WithFlags = []string{imap.DeletedFlag}
	ids, err := c.client.UidSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("could not search for deleted in folder: %w", err)
	}

	if len(ids) > 0 {
		return ErrFlaggedForDeletion, nil
	}
	return nil, nil
}

type moveMover struct {
	client uidMover
}

func (m *moveMover) move(uids []uint32, folder string) error {
	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err := m.client.UidMove(seqset, folder)
	if err != nil {
		return fmt.Errorf("could not move mails to %s: %w", folder, err)
	}
	return nil
}

func (m *moveMover) moveReady() (error, error) {
	return nil, nil
}

type compatibilityMover struct {
	client  imapClient
	deleter deleter
}

func (c *compatibilityMover) move(uids []uint32, folder string) error {
	notMoveReadyReason, err := c.moveReady()
	if err != nil {
		return fmt.Errorf("could not check for delete readiness to move: %w", err)
	}

	if notMoveReadyReason != nil {
		return fmt.Errorf("folder is not ready for delete, cannot move (copy&delete): %w", notMoveReadyReason)
	}

	seqset := &imap.SeqSet{}
	seqset.AddNum(uids...)
	err = c.client.UidCopy(seqset, folder)
	if err != nil {
		return fmt.Errorf("could not copy mails: %w", err)
	}

	err = c.deleter.delete(uids)
	if err != nil {
		return fmt.Errorf("could not delete copied mails: %w", err)
	}

	return nil
}

func (c *compatibilityMover) moveReady() (error, error) {
	return c.deleter.deleteReady()
}
