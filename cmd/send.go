// SPDX-License-Identifier: GPL-3.0-or-later
package cmd

import (
	"errors"

	"github.com/CrawX/go-mail-agent/log"
	"github.com/CrawX/go-mail-agent/sender"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type sendFlags struct {
	to, cc, bcc []string

	subject, text, html, attach string
}

var send sendFlags

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send one mail to the given recipients",
	RunE:  runSend,
}

func init() {
	sendCmd.Flags().StringSliceVar(&send.to, "to", nil, "recipient, may be repeated or comma separated")
	sendCmd.Flags().StringSliceVar(&send.cc, "cc", nil, "carbon copy recipient")
	sendCmd.Flags().StringSliceVar(&send.bcc, "bcc", nil, "blind carbon copy recipient")
	sendCmd.Flags().StringVarP(&send.subject, "subject", "s", "", "subject")
	sendCmd.Flags().StringVar(&send.text, "text", "", "plain text body")
	sendCmd.Flags().StringVar(&send.html, "html", "", "html body")
	sendCmd.Flags().StringVarP(&send.attach, "attach", "a", "", "file to attach")

	rootCmd.AddCommand(sendCmd)
}

func runSend(cmd *cobra.Command, args []string) error {
	if len(conf.SmtpHost) == 0 {
		return errors.New("SmtpHost must be set to send mails")
	}

	logger := log.Logger(log.LOG_MAIN)
	logger.WithFields(logrus.Fields{"to": send.to, "cc": send.cc, "bcc": send.bcc, "server": conf.SmtpHost}).Info("Sending mail")

	return sender.New(conf.SmtpCredentials()).Send(send.to, send.messageOptions()...)
}

// messageOptions only sets what was given on the command line.
func (f sendFlags) messageOptions() []sender.MessageFunc {
	opts := []sender.MessageFunc{}
	if len(f.cc) > 0 {
		opts = append(opts, sender.Cc(f.cc))
	}
	if len(f.bcc) > 0 {
		opts = append(opts, sender.Bcc(f.bcc))
	}
	if len(f.subject) > 0 {
		opts = append(opts, sender.Subject(f.subject))
	}
	if len(f.text) > 0 {
		opts = append(opts, sender.PlainText(f.text))
	}
	if len(f.html) > 0 {
		opts = append(opts, sender.HTML(f.html))
	}
	if len(f.attach) > 0 {
		opts = append(opts, sender.Attach(f.attach))
	}
	return opts
}
