// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/CrawX/go-mail-agent/config"
	"github.com/CrawX/go-mail-agent/domain"
	"github.com/CrawX/go-mail-agent/log"
	"github.com/CrawX/go-mail-agent/mail"
	"github.com/CrawX/go-mail-agent/persistence"
	"github.com/CrawX/go-mail-agent/receiver"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var fetch struct {
	mailbox     string
	count       int
	destination string
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch the newest mails of a mailbox and save their attachments",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fetch.mailbox, "mailbox", "m", "", "mailbox to fetch from, defaults to Mailbox of the config")
	fetchCmd.Flags().IntVarP(&fetch.count, "count", "n", 0, "number of mails to fetch, defaults to Count of the config")
	fetchCmd.Flags().StringVarP(&fetch.destination, "dest", "d", "", "attachment root directory, defaults to DestinationRoot of the config")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if len(conf.ImapHost) == 0 {
		return errors.New("ImapHost must be set to fetch mails")
	}

	mailbox := firstNonEmpty(fetch.mailbox, conf.Mailbox)
	destination := firstNonEmpty(fetch.destination, conf.DestinationRoot)
	count := conf.Count
	if fetch.count > 0 {
		count = fetch.count
	}

	var journal domain.Journal
	if len(conf.Database) > 0 {
		p, err := persistence.NewPersistence(conf.Database)
		if err != nil {
			return fmt.Errorf("could not connect to database: %w", err)
		}
		defer p.Close()
		journal = p
	}

	r, err := receiver.New(conf.ImapCredentials(), receiverOptions(conf, journal)...)
	if err != nil {
		return err
	}

	logger := log.Logger(log.LOG_MAIN)
	logger.WithFields(logrus.Fields{"mailbox": mailbox, "count": count, "destination": destination, "server": conf.ImapHost}).Info("Fetching mails")

	messages, err := r.Fetch(mailbox, count, destination)
	if err != nil {
		return err
	}

	return writeMessages(cmd.OutOrStdout(), messages)
}

func receiverOptions(conf *config.Config, journal domain.Journal) []receiver.ConfigFunc {
	opts := []receiver.ConfigFunc{}
	if journal != nil {
		opts = append(opts, receiver.WithJournal(journal))
	}
	if conf.ImapStartTLS {
		opts = append(opts, receiver.StartTLS())
	}
	if len(conf.MoveFetchedTo) > 0 {
		opts = append(opts, receiver.MoveFetched(conf.MoveFetchedTo))
	}
	if conf.DeleteFetched {
		opts = append(opts, receiver.DeleteFetched())
	}
	return opts
}

func writeMessages(out io.Writer, messages []*domain.IncomingMessage) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SEQ\tFROM\tSUBJECT\tBODY\tATTACHMENTS")
	for _, m := range messages {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", m.SeqNum, m.From, mail.ShortSubject(m.Subject), yesNo(m.Body != nil), strings.Join(m.AttachmentPaths, ", "))
	}
	return w.Flush()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return ""
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
