package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/xover-format/xover"
	"github.com/xover-format/xover/encode"
)

type MainConfig struct {
	Depth   int  `cli:"name=depth desc='maximum tree depth to render (0 = no limit)'"`
	Verbose bool `cli:"name=v aliases=verbose desc='keep comments and note how many elements were omitted'"`
	Color   bool `cli:"name=color desc='render the overview in color'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) convertOpts(w io.Writer) []xover.ConvertOption {
	res := []xover.ConvertOption{
		xover.Verbose(cfg.Verbose),
		xover.Depth(cfg.Depth),
	}
	if cfg.Color {
		res = append(res, xover.Colors(encode.NewColors()))
		return res
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, xover.Colors(encode.NewColors()))
	}
	return res
}
