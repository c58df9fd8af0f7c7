// Command entityctl validates Job and AdmitCard records offline, the same way
// the admin API does before persisting them.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
