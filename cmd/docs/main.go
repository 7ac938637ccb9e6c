package main

import (
	"github.com/kcctl/kcctl/internal/cmd"
	"github.com/kcctl/kcctl/internal/pkg/config"
	"github.com/kcctl/kcctl/internal/pkg/doc"
	"github.com/kcctl/kcctl/internal/pkg/log"
	"github.com/kcctl/kcctl/internal/pkg/version"
)

func main() {
	logger := log.New()
	kcctl, err := cmd.NewKcctlCommand(config.New(&config.Params{Logger: logger}), &version.Version{Binary: "kcctl"}, logger)
	if err != nil {
		panic(err)
	}
	if err := doc.GenMarkdownTree(kcctl, "./docs"); err != nil {
		panic(err)
	}
}
