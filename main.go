// worldclock shows the current time for a set of world cities, refreshed
// every second, with a day/night indicator.
//
// Usage:
//
//	worldclock                       # live terminal grid of the default cities
//	worldclock londres "sao paulo"   # only the named cities
//	worldclock tui                   # full-screen interactive UI
//	worldclock serve                 # web page + websocket feed on :8080
//	worldclock list                  # one-shot table
package main

import (
	_ "time/tzdata"

	"github.com/agent-platform/tools/worldclock/cmd"
)

func main() {
	cmd.Execute()
}
