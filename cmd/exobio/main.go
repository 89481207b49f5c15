// Command exobio prints creature body plans as JSON.
//
// Without --seed each creature is generated from a random fact fetched over
// HTTP; with --seed the given sentence is used for every creature.
//
//	exobio --seed "hello world" --pretty
//	exobio --count 8 --concurrency 4
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
