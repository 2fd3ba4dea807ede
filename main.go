// SPDX-License-Identifier: MPL-2.0

package main

import cmd "dbuild-cli/cmd/dbuild"

func main() {
	cmd.Execute()
}
