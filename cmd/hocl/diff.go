package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hocl-format/hocl/encode"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two document arguments", cli.ErrUsage)
	}
	a, err := loadArg(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	at := encode.MustString(a) + "\n"
	bt := encode.MustString(b) + "\n"
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(at, bt, true)
	dmp.DiffCleanupSemantic(diffs)
	if cfg.Color {
		_, err = io.WriteString(cc.Out, dmp.DiffPrettyText(diffs))
		return err
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			if _, err := fmt.Fprintf(cc.Out, "+%s", d.Text); err != nil {
				return err
			}
		case diffmatchpatch.DiffDelete:
			if _, err := fmt.Fprintf(cc.Out, "-%s", d.Text); err != nil {
				return err
			}
		default:
			if _, err := io.WriteString(cc.Out, d.Text); err != nil {
				return err
			}
		}
	}
	return nil
}
