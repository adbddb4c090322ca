// SPDX-License-Identifier: GPL-3.0-or-later
package receiver

import (
	"fmt"

	"github.com/CrawX/go-mail-agent/domain"
)

type ConfigFunc func(c *configuration) error

// WithJournal records every fetch in journal.
func WithJournal(journal domain.Journal) ConfigFunc {
	return func(c *configuration) error {
		if journal == nil {
			return fmt.Errorf("Journal cannot be null")
		}

		c.Journal = journal
		return nil
	}
}

// MoveFetched moves fetched messages to folder once all of them were processed.
func MoveFetched(folder string) ConfigFunc {
	return func(c *configuration) error {
		if len(folder) == 0 {
			return fmt.Errorf("MoveFolder cannot be null")
		}

		if c.DeleteFetched {
			return fmt.Errorf("MoveFetched and DeleteFetched cannot be used at the same time")
		}

		c.MoveFetched = true
		c.MoveFolder = folder
		return nil
	}
}

// DeleteFetched deletes fetched messages once all of them were processed.
func DeleteFetched() ConfigFunc {
	return func(c *configuration) error {
		if c.MoveFetched {
			return fmt.Errorf("MoveFetched and DeleteFetched cannot be used at the same time")
		}

		c.DeleteFetched = true
		return nil
	}
}

// StartTLS connects in plain text and upgrades with STARTTLS instead of using
// implicit TLS.
func StartTLS() ConfigFunc {
	return func(c *configuration) error {
		c.StartTLS = true
		return nil
	}
}

type configuration struct {
	Journal domain.Journal

	MoveFetched   bool
	DeleteFetched bool
	MoveFolder    string

	StartTLS bool
}
