// Command formguard runs the feedback-form submission guard against an HTML
// page or an interactive terminal session.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "formguard:", err)
		}
		os.Exit(1)
	}
}
