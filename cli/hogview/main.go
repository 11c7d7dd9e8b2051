// Package main is the hogview command line entry point.
package main

import (
	"log"
	"os"

	"go.viam.com/hogview/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
