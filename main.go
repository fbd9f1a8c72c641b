// Command wren2c turns Wren scripts into C include files.
package main

import "github.com/okkostudio/wren2c/cmd"

func main() {
	cmd.Execute()
}
