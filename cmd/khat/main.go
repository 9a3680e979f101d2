package main

import (
	"fmt"
	"os"

	"github.com/sokinpui/khat"
)

func main() {
	if err := khat.Execute(); err != nil {
		fmt.Fprint(os.Stderr, khat.FormatError(err, khat.ErrorColor()))
		os.Exit(1)
	}
}
