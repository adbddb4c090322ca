// SPDX-License-Identifier: GPL-3.0-or-later
package mail

import (
	"crypto/sha256"
	"fmt"
)

// ShortSubject truncates a subject for log output.
func ShortSubject(subject string) string {
	if len([]rune(subject)) > 30 {
		subject = string([]rune(subject)[:30]) + "..."
	}
	return subject
}

func hash(input [][]string) (string, error) {
	sha := sha256.New()
	for _, i := range input {
		for _, ii := range i {
			_, err := sha.Write([]byte(ii))
			if err != nil {
				return "", fmt.Errorf("could not hash: %w", err)
			}
		}
	}

	return fmt.Sprintf("%x", sha.Sum(nil)), nil
}
