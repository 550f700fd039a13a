// Command studyctl runs the study-aid pipeline on a local file or stdin and
// prints the result as YAML or JSON.
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
