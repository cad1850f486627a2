// Package main is the entry point for tinyplay.
package main

import (
	"github.com/samber/lo"
	"github.com/tinyplay/tinyplay/cmd"
	"github.com/tinyplay/tinyplay/config"
	"github.com/tinyplay/tinyplay/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
