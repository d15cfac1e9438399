// Command bootcampctl exports the site to static HTML and validates content.
package main

import (
	"os"

	"github.com/communitycvs/bootcamp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
