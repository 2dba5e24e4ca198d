package main

import (
	"fmt"
	"os"

	"github.com/appengine-ltd/tickreplay/internal/bootstrap"
	"github.com/appengine-ltd/tickreplay/internal/camp"
	"github.com/appengine-ltd/tickreplay/internal/host"
)

func main() {
	target := camp.Camp{PanicKey: host.KeyZ}
	if err := bootstrap.Main(target, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
