// LogSift - Access Log Filtering and Aggregation Tool
//
// LogSift is a batch log analysis tool that filters structured access logs
// and aggregates per-user activity statistics.
package main

import (
	"os"

	"github.com/ccollicutt/logsift/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
