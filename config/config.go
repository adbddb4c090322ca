// SPDX-License-Identifier: GPL-3.0-or-later
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/CrawX/go-mail-agent/domain"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Config struct {
	User     string
	Password string

	SmtpHost string
	SmtpPort int

	ImapHost     string
	ImapPort     int
	ImapStartTLS bool

	Mailbox         string
	Count           int
	DestinationRoot string

	// Database enables the fetch journal when set.
	Database string

	MoveFetchedTo string
	DeleteFetched bool

	Loglevel *string
}

// ReadConfig reads a TOML file, or a YAML file if the name ends in .yaml or
// .yml, and fills in defaults for everything not set.
func ReadConfig(filename string) (*Config, error) {
	config := &Config{
		SmtpPort: 587,
		ImapPort: 993,
		Mailbox:  "INBOX",
		Count:    3,
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		content, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
		err = yaml.Unmarshal(content, config)
		if err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	default:
		_, err := toml.DecodeFile(filename, config)
		if err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	err := config.validate()
	if err != nil {
		return nil, err
	}

	return config, nil
}

func (c *Config) SmtpCredentials() domain.Credentials {
	return domain.Credentials{
		Address: c.User,
		Secret:  c.Password,
		Host:    c.SmtpHost,
		Port:    c.SmtpPort,
	}
}

func (c *Config) ImapCredentials() domain.Credentials {
	return domain.Credentials{
		Address: c.User,
		Secret:  c.Password,
		Host:    c.ImapHost,
		Port:    c.ImapPort,
	}
}

func (c *Config) validate() error {
	if err := validateNonEmptyStringField(c.User, "User must not be empty, set to the address used to log in"); err != nil {
		return err
	}

	if err := validateNonEmptyStringField(c.Password, "Password must not be empty, set to password of User"); err != nil {
		return err
	}

	smtpSet := len(strings.TrimSpace(c.SmtpHost)) > 0
	imapSet := len(strings.TrimSpace(c.ImapHost)) > 0
	if !smtpSet && !imapSet {
		return fmt.Errorf("set SmtpHost to send mails, ImapHost to fetch mails or both")
	}

	if c.SmtpPort <= 0 || c.SmtpPort > 65535 {
		return fmt.Errorf("SmtpPort %d is not a valid port", c.SmtpPort)
	}
	if c.ImapPort <= 0 || c.ImapPort > 65535 {
		return fmt.Errorf("ImapPort %d is not a valid port", c.ImapPort)
	}

	if len(c.MoveFetchedTo) > 0 && c.DeleteFetched {
		return fmt.Errorf("MoveFetchedTo and DeleteFetched cannot be set at the same time")
	}

	return nil
}

func validateNonEmptyStringField(field string, err string) error {
	if len(strings.TrimSpace(field)) == 0 {
		return errors.New(err)
	}

	return nil
}
