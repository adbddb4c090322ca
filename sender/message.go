// SPDX-License-Identifier: GPL-3.0-or-later
package sender

import (
	"fmt"

	"github.com/CrawX/go-mail-agent/domain"
)

// MessageFunc sets an optional field of the message to send.
type MessageFunc func(m *domain.OutgoingMessage) error

func Cc(recipients interface{}) MessageFunc {
	return func(m *domain.OutgoingMessage) error {
		cc, err := recipientList("cc", recipients)
		if err != nil {
			return err
		}

		m.Recipients.Cc = cc
		return nil
	}
}

func Bcc(recipients interface{}) MessageFunc {
	return func(m *domain.OutgoingMessage) error {
		bcc, err := recipientList("bcc", recipients)
		if err != nil {
			return err
		}

		m.Recipients.Bcc = bcc
		return nil
	}
}

func Subject(subject string) MessageFunc {
	return func(m *domain.OutgoingMessage) error {
		m.Subject = &subject
		return nil
	}
}

func PlainText(text string) MessageFunc {
	return func(m *domain.OutgoingMessage) error {
		m.PlainText = &text
		return nil
	}
}

func HTML(html string) MessageFunc {
	return func(m *domain.OutgoingMessage) error {
		m.HTML = &html
		return nil
	}
}

// Attach attaches the file at path. It is read when the message is encoded.
func Attach(path string) MessageFunc {
	return func(m *domain.OutgoingMessage) error {
		if len(path) == 0 {
			return fmt.Errorf("AttachmentPath cannot be null")
		}

		m.AttachmentPath = &path
		return nil
	}
}

// recipientList accepts []string and []interface{} holding only strings, the
// shapes addresses arrive in from code and from decoded config files.
func recipientList(field string, recipients interface{}) ([]string, error) {
	switch r := recipients.(type) {
	case []string:
		return r, nil
	case []interface{}:
		addresses := make([]string, 0, len(r))
		for i, v := range r {
			address, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s[%d] is %T", domain.ErrInvalidRecipientType, field, i, v)
			}
			addresses = append(addresses, address)
		}
		return addresses, nil
	default:
		return nil, fmt.Errorf("%w: %s is %T", domain.ErrInvalidRecipientType, field, recipients)
	}
}
