// Command telepenscan decodes Telepen Numeric barcodes from image files, or
// serves a WebSocket endpoint that decodes streamed frames.
package main

import "github.com/mharwood/telepengo/cmd/telepenscan/cmd"

func main() {
	cmd.Execute()
}
