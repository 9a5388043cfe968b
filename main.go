// SPDX-License-Identifier: MPL-2.0

package main

import cmd "rsppin/cmd/rsppin"

func main() {
	cmd.Execute()
}
