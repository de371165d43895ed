// SPDX-License-Identifier: MPL-2.0

package main

import cmd "strand-sdk/cmd/strandsdk"

func main() {
	cmd.Execute()
}
