// Command egrep prints the lines of a file matching a pattern.
//
//	egrep '^error:' /var/log/app.log
package main

import "os"

func main() {
	os.Exit(execute(newRootCmd()))
}
