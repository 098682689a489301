// Command keymaze solves a maze read from a file or stdin.
//
//	keymaze [flags] [maze.txt | maze.txt.zst | -]
//
// A key maze prints the shortest key collection distance and the landmark
// order; a portal maze (-variant portals) prints the AA to ZZ step count.
// Exit status is 0 on success, 1 on error, 2 on bad usage and 3 when the
// maze has no solution.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
