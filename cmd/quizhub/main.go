package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-quizhub/quizhub/internal/bootstrap"
)

/**
 * @file: main.go
 * @description: quizhub server entry
 */

var configFile string

func init() {
	flag.StringVar(&configFile, "conf", "conf.d/config.toml", "conf file path, e.g. -conf ./conf.d/config.toml")
}

func main() {
	flag.Parse()

	app, err := bootstrap.NewApp(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}
