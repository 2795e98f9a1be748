// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package main

import (
	"github.com/RelayDigital/vrem-sub006/cmd"
)

func main() {
	cmd.Execute()
}
