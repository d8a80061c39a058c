// cmd/xrcview/main.go
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := buildRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xrcview:", err)
		os.Exit(1)
	}
}
