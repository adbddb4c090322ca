// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"unicode/utf8"

	"github.com/CrawX/go-mail-agent/domain"

	"github.com/emersion/go-message"
	gomail "github.com/emersion/go-message/mail"
)

const defaultContentType = "text/plain"

// MimePart is one node of a parsed multipart message. Containers
// (multipart/*) carry no payload, their children follow them in Parts.
type MimePart struct {
	ContentType string
	Disposition string
	Filename    string
	Payload     []byte
	IsContainer bool

	// DecodeErr is set when the transfer encoding or charset of the part could
	// not be decoded, Payload then holds whatever could be read.
	DecodeErr error
}

// IsAttachment reports whether the part carries an attachment disposition.
func (p *MimePart) IsAttachment() bool {
	return strings.Contains(strings.ToLower(p.Disposition), "attachment")
}

// Text returns the payload as text, failing with domain.ErrPartDecode for
// payloads that are not valid UTF-8 or could not be decoded.
func (p *MimePart) Text() (string, error) {
	return payloadText(p.Payload, p.DecodeErr)
}

type ParsedMessage struct {
	// From and Subject are the raw header values, still encoded.
	From    string
	Subject string

	MailIdHash string

	IsMultipart bool
	ContentType string

	// Body is the payload of a non-multipart message.
	Body      []byte
	BodyError error

	// Parts lists all parts of a multipart message in encounter order,
	// the top level container first.
	Parts []*MimePart
}

// BodyText returns the body of a non-multipart message. Only text/plain and
// text/html count as body.
func (pm *ParsedMessage) BodyText() (string, bool) {
	if pm.IsMultipart {
		return "", false
	}
	if pm.ContentType != "text/plain" && pm.ContentType != "text/html" {
		return "", false
	}

	text, err := payloadText(pm.Body, pm.BodyError)
	if err != nil {
		return "", false
	}
	return text, true
}

// Decode parses a raw message. Only a message whose header cannot be read
// fails, problems within the body are recorded on the result.
func Decode(raw []byte) (*ParsedMessage, error) {
	entity, readErr := message.Read(bytes.NewReader(raw))
	if readErr != nil && !isRecoverable(readErr) {
		return nil, fmt.Errorf("could not parse mail: %w", readErr)
	}

	mailIdHash, err := hash([][]string{
		entity.Header.Values("Message-Id"),
		entity.Header.Values("Received"),
	})
	if err != nil {
		return nil, fmt.Errorf("could not hash headers: %w", err)
	}
	if len(entity.Header.Values("Message-Id")) == 0 && len(entity.Header.Values("Received")) == 0 {
		mailIdHash = ""
	}

	parsed := &ParsedMessage{
		From:        entity.Header.Get("From"),
		Subject:     entity.Header.Get("Subject"),
		MailIdHash:  mailIdHash,
		ContentType: contentType(entity.Header),
	}

	if !strings.HasPrefix(parsed.ContentType, "multipart/") {
		parsed.Body, parsed.BodyError = readBody(entity, readErr)
		return parsed, nil
	}

	parsed.IsMultipart = true
	walk(entity, &parsed.Parts)
	return parsed, nil
}

// walk appends e and all of its descendants to parts, depth first.
func walk(e *message.Entity, parts *[]*MimePart) {
	part := &MimePart{
		ContentType: contentType(e.Header),
		Disposition: e.Header.Get("Content-Disposition"),
	}
	*parts = append(*parts, part)

	mr := e.MultipartReader()
	if mr == nil {
		part.Filename = filename(e.Header)
		part.Payload, part.DecodeErr = readBody(e, nil)
		return
	}

	part.IsContainer = true
	for {
		child, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil && !isRecoverable(err) {
			// The rest of the container is unreadable, keep what we have.
			*parts = append(*parts, &MimePart{DecodeErr: fmt.Errorf("%w: %v", domain.ErrPartDecode, err)})
			return
		}
		if err != nil && child.MultipartReader() == nil {
			leaf := &MimePart{
				ContentType: contentType(child.Header),
				Disposition: child.Header.Get("Content-Disposition"),
				Filename:    filename(child.Header),
			}
			leaf.Payload, leaf.DecodeErr = readBody(child, err)
			*parts = append(*parts, leaf)
			continue
		}

		walk(child, parts)
	}
}

func readBody(e *message.Entity, entityErr error) ([]byte, error) {
	payload, err := ioutil.ReadAll(e.Body)
	if err != nil {
		return payload, fmt.Errorf("%w: %v", domain.ErrPartDecode, err)
	}
	if entityErr != nil {
		return payload, fmt.Errorf("%w: %v", domain.ErrPartDecode, entityErr)
	}
	return payload, nil
}

func payloadText(payload []byte, decodeErr error) (string, error) {
	if decodeErr != nil {
		return "", decodeErr
	}
	if !utf8.Valid(payload) {
		return "", fmt.Errorf("%w: payload is not valid utf-8", domain.ErrPartDecode)
	}
	return string(payload), nil
}

func isRecoverable(err error) bool {
	return message.IsUnknownCharset(err) || message.IsUnknownEncoding(err)
}

func contentType(h message.Header) string {
	if len(strings.TrimSpace(h.Get("Content-Type"))) == 0 {
		return defaultContentType
	}

	mediaType, _, err := h.ContentType()
	if err != nil {
		// Take whatever precedes the parameters
		mediaType = strings.TrimSpace(strings.SplitN(h.Get("Content-Type"), ";", 2)[0])
	}
	return strings.ToLower(mediaType)
}

func filename(h message.Header) string {
	ah := gomail.AttachmentHeader{Header: h}
	name, err := ah.Filename()
	if err == nil && len(name) > 0 {
		return name
	}

	// Undecodable encoded words, keep the raw parameter
	_, params, perr := h.ContentDisposition()
	if perr == nil && len(params["filename"]) > 0 {
		return params["filename"]
	}
	_, params, perr = h.ContentType()
	if perr == nil {
		return params["name"]
	}
	return ""
}
