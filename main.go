// Command try composes code buffers into host files and runs them.
package main

import "github.com/dystudio/try/cmd"

func main() {
	cmd.Execute()
}
