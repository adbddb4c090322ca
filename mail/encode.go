// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/CrawX/go-mail-agent/domain"

	"github.com/emersion/go-message"
	gomail "github.com/emersion/go-message/mail"
)

const boundaryPrefix = "mailagent-"

// Encode serializes msg into a multipart/mixed message. The output only
// depends on msg and the attachment's content.
func Encode(msg *domain.OutgoingMessage) ([]byte, error) {
	var attachmentName string
	var attachment []byte
	if msg.AttachmentPath != nil {
		var err error
		attachment, err = ioutil.ReadFile(*msg.AttachmentPath)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", domain.ErrAttachmentRead, *msg.AttachmentPath, err)
		}
		attachmentName = filepath.Base(*msg.AttachmentPath)
	}

	boundary, err := deriveBoundary(msg, attachmentName, attachment)
	if err != nil {
		return nil, err
	}

	var h gomail.Header
	h.Set("MIME-Version", "1.0")
	h.Set("From", msg.From)
	h.Set("To", strings.Join(msg.Recipients.To, ", "))
	if msg.Subject != nil {
		h.SetSubject(*msg.Subject)
	}
	if len(msg.Recipients.Cc) > 0 {
		h.Set("Cc", strings.Join(msg.Recipients.Cc, ", "))
	}
	if len(msg.Recipients.Bcc) > 0 {
		h.Set("Bcc", strings.Join(msg.Recipients.Bcc, ", "))
	}
	if !msg.Date.IsZero() {
		h.SetDate(msg.Date)
	}
	h.SetContentType("multipart/mixed", map[string]string{"boundary": boundary})

	buf := &bytes.Buffer{}
	mw, err := message.CreateWriter(buf, h.Header)
	if err != nil {
		return nil, fmt.Errorf("could not create message writer: %w", err)
	}

	if msg.PlainText != nil {
		err = writeTextPart(mw, "text/plain", *msg.PlainText)
		if err != nil {
			return nil, err
		}
	}

	if msg.HTML != nil {
		err = writeTextPart(mw, "text/html", *msg.HTML)
		if err != nil {
			return nil, err
		}
	}

	if msg.AttachmentPath != nil {
		var ah gomail.AttachmentHeader
		ah.Set("Content-Type", "application/octet-stream")
		ah.Set("Content-Transfer-Encoding", "base64")
		ah.SetFilename(attachmentName)

		err = writePart(mw, ah.Header, attachment)
		if err != nil {
			return nil, fmt.Errorf("could not write attachment %s: %w", attachmentName, err)
		}
	}

	err = mw.Close()
	if err != nil {
		return nil, fmt.Errorf("could not finish message: %w", err)
	}

	return buf.Bytes(), nil
}

func writeTextPart(mw *message.Writer, mediaType, text string) error {
	var h message.Header
	h.SetContentType(mediaType, map[string]string{"charset": "utf-8"})
	h.Set("Content-Transfer-Encoding", "quoted-printable")

	err := writePart(mw, h, []byte(text))
	if err != nil {
		return fmt.Errorf("could not write %s part: %w", mediaType, err)
	}
	return nil
}

func writePart(mw *message.Writer, h message.Header, payload []byte) error {
	pw, err := mw.CreatePart(h)
	if err != nil {
		return err
	}

	_, err = pw.Write(payload)
	if err != nil {
		pw.Close()
		return err
	}

	return pw.Close()
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// deriveBoundary derives the multipart boundary from the message content.
func deriveBoundary(msg *domain.OutgoingMessage, attachmentName string, attachment []byte) (string, error) {
	digest, err := hash([][]string{
		{msg.From},
		msg.Recipients.To,
		msg.Recipients.Cc,
		msg.Recipients.Bcc,
		{
			optional(msg.Subject),
			optional(msg.PlainText),
			optional(msg.HTML),
			attachmentName,
			string(attachment),
		},
	})
	if err != nil {
		return "", fmt.Errorf("could not derive boundary: %w", err)
	}

	return boundaryPrefix + digest[:32], nil
}
