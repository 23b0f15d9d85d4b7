// Command puzzplan checks ability and obstacle placement for a game
// progression catalog.
package main

import "github.com/papapumpkin/puzzplan/cmd"

func main() {
	cmd.Execute()
}
