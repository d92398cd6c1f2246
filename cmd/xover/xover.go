package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/xover-format/xover"
)

func xoverMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Depth < 0 {
		return fmt.Errorf("%w: -depth must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: no input file", cli.ErrUsage)
	}
	for _, file := range args {
		if err := overviewFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func overviewFile(cfg *MainConfig, cc *cli.Context, file string) error {
	var (
		src []byte
		err error
	)
	if file == "-" {
		src, err = io.ReadAll(cc.In)
	} else {
		src, err = os.ReadFile(file)
	}
	if err != nil {
		return fmt.Errorf("could not read %q: %w", file, err)
	}
	res, err := xover.Convert(src, cfg.convertOpts(cc.Out)...)
	if err != nil {
		return fmt.Errorf("error converting %s: %w", file, err)
	}
	if _, err := io.WriteString(cc.Out, res); err != nil {
		return err
	}
	if len(res) > 0 && res[len(res)-1] != '\n' {
		if _, err := io.WriteString(cc.Out, "\n"); err != nil {
			return err
		}
	}
	return nil
}
