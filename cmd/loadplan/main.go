package main

import (
	"fmt"
	"os"

	"github.com/sujeonghan78-lgtm/CargoLoading/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
