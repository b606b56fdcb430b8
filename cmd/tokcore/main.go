// Command tokcore tokenizes and simplifies preprocessed C/C++-dialect
// source the way the tokcore library does, for quick inspection from a
// shell.
package main

import "os"

func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	cmd, args := os.Args[1], os.Args[2:]
	switch cmd {
	case "tokens":
		tokensCommand(args)
	case "simplify":
		simplifyCommand(args)
	case "help", "-h", "--help":
		showUsage()
	default:
		showUsage()
		os.Exit(1)
	}
}
