package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "xover").
		WithSynopsis("xover [opts] file [file...]").
		WithDescription("xover renders a compact structural overview of an XML file,\ncollapsing repeated sibling elements to one representative.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xoverMain(cfg, cc, args)
		})
}
