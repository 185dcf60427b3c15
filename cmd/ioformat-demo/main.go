// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command ioformat-demo renders a handful of fixed directives against a
// TOML-configured character budget, to exercise RenderBytes end to end.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lostsnow/ioformat"
)

// config is the shape of the TOML file named by the --config flag; keys
// missing from the file keep the defaults set in loadConfig.
type config struct {
	CharsLimit int    `toml:"chars_limit"`
	Format     string `toml:"format"`
}

func loadConfig(path string) (config, error) {
	cfg := config{CharsLimit: -1, Format: "point (~w, ~w) as ~p"}
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

func main() {
	confPath := flag.String("config", "", "path to a demo.toml config file")
	flag.Parse()

	cfg, err := loadConfig(*confPath)
	if err != nil {
		log.Fatalf("ioformat-demo: loading config: %v", err)
	}

	term := struct {
		X, Y int
	}{X: 3, Y: 4}

	out, err := ioformat.RenderBytes(cfg.Format, []interface{}{term.X, term.Y, term},
		ioformat.Options{CharsLimit: cfg.CharsLimit})
	if err != nil {
		log.Fatalf("ioformat-demo: render: %v", err)
	}

	os.Stdout.Write(out)
	os.Stdout.WriteString("\n")
}
