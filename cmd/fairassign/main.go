// Command fairassign is the CLI driver: it wires ingest -> reduce ->
// build -> solve -> verify -> export across all four half-days. It is
// the out-of-scope "command-line driver" spec.md names as an external
// collaborator; none of the assignment logic lives here.
package main

import (
	"fmt"
	"os"

	"fairassign/cmd/fairassign/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
