// Command gamelines prints the current college football betting lines.
package main

import "github.com/pfrederiksen/cfb-gamelines/internal/cli"

func main() {
	cli.Execute()
}
