// Command jobly serves the jobly job board API.
package main

import (
	"fmt"
	"os"

	_ "github.com/jarredbaird/express-jobly/data/postgres"
	_ "github.com/jarredbaird/express-jobly/data/sqlite"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
