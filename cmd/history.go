// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/CrawX/go-mail-agent/domain"
	"github.com/CrawX/go-mail-agent/mail"
	"github.com/CrawX/go-mail-agent/persistence"

	"github.com/spf13/cobra"
)

var historyMailbox string

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the mails fetched so far",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().StringVarP(&historyMailbox, "mailbox", "m", "", "mailbox to list, defaults to Mailbox of the config")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	if len(conf.Database) == 0 {
		return errors.New("Database must be set to keep a history")
	}

	p, err := persistence.NewPersistence(conf.Database)
	if err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}
	defer p.Close()

	mailbox := strings.ToUpper(firstNonEmpty(historyMailbox, conf.Mailbox))
	entries, err := p.Fetched(mailbox)
	if err != nil {
		return err
	}

	return writeHistory(cmd.OutOrStdout(), entries)
}

func writeHistory(out io.Writer, entries []*domain.JournalEntry) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FETCHED\tUID\tFROM\tSUBJECT\tATTACHMENTS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%d\n", e.FetchedAt.Format("2006-01-02 15:04"), e.Uid, e.From, mail.ShortSubject(e.Subject), len(e.AttachmentPaths))
	}
	return w.Flush()
}
