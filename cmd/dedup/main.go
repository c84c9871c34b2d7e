// Minimal standalone duplicate finder, for scripting without the full CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/polyglotdev/utilkit/util"
)

func main() {
	root := "./"
	if len(os.Args) > 1 {
		root = os.Args[1]
	}

	groups := util.FindDuplicates(root, util.WithLogger(log.Default()))
	for digest, paths := range groups {
		fmt.Println(digest)
		for _, p := range paths {
			fmt.Printf("  %s\n", p)
		}
	}
}
