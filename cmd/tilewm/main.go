// tilewm
//
// Copyright (C) 2022 Karol 'Kenji Takahashi' Woźniak
//
// Permission is hereby granted, free of charge, to any person obtaining
// a copy of this software and associated documentation files (the "Software"),
// to deal in the Software without restriction, including without limitation
// the rights to use, copy, modify, merge, publish, distribute, sublicense,
// and/or sell copies of the Software, and to permit persons to whom the
// Software is furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included
// in all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES
// OF MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM,
// DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
// TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE
// OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/distatus/tilewm/internal/config"
	"github.com/distatus/tilewm/internal/x11"
	"github.com/distatus/tilewm/internal/wm"
)

// version is overwritten at release build time via -ldflags.
var version = "unknown"

func main() {
	showVersion := flag.Bool("v", false, "print version information and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-v]\n", os.Args[0])
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("tilewm-%s\n", version)
		os.Exit(0)
	}
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(1)
	}

	fatal(run())
}

// fatal mirrors the teacher's top-level error helper: log and exit
// nonzero, never panic on an ordinary startup failure.
func fatal(err error) {
	if err != nil {
		logrus.Fatal(err)
	}
}

func run() error {
	d, err := x11.Open()
	if err != nil {
		return err
	}

	cfg := config.Default()
	cfg.Rules = buildRules(cfg.Tags)
	if err := config.LoadXrdb(d.X, &cfg); err != nil {
		logrus.WithError(err).Debug("tilewm: no RESOURCE_MANAGER overrides applied")
	}

	world := wm.New(d, cfg)
	world.Config.Input = buildInput(world)
	if err := world.Init(); err != nil {
		d.Close()
		return err
	}
	defer world.Close()

	world.Run()
	return nil
}
