// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"github.com/CrawX/go-mail-agent/cmd"
	"github.com/CrawX/go-mail-agent/log"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		log.Logger(log.LOG_MAIN).WithField("error", err).Fatal("Command failed")
	}
}
