// amibotctl is the operator CLI for the amibot credential vault: key
// generation, token inspection, and the one-time legacy token migration.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
