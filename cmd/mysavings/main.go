// Command mysavings manages savings goals from the terminal against the same
// store the API server uses.
package main

import (
	_ "time/tzdata"
)

func main() {
	Execute()
}
