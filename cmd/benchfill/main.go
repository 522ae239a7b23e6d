package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/rusenback/bench-backfill/cmd/benchfill/cmd"
)

func main() {
	log.SetOutput(os.Stderr)
	if err := cmd.RootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
