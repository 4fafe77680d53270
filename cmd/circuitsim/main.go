// Command circuitsim exercises the Circuit Facade end to end: demo
// scenarios, a formula-driven truth table, an HTTP API, and a terminal
// browser, all behind one cobra tree. Grounded on the command/subcommand
// shape common across the retrieval pack's own CLI entry points
// (purpleidea/mgmt, OpenTraceLab/OpenTraceJTAG); no literal cobra sample
// survived retrieval, so the flag/RunE wiring below follows the
// library's own documented idiom.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
