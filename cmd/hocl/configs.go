package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/hocl-format/hocl/encode"
	"github.com/hocl-format/hocl/override"
	"github.com/hocl-format/hocl/parse"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	EnvPrefix string `cli:"name=env-prefix desc='collect overrides from environment variables with this prefix'"`

	OutFormat *encode.Format

	Overrides []parse.Override

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) overrideOpt(_ *cli.Context, a string) (any, error) {
	ovs, rest := override.FromArgs([]string{a})
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: override %q is not path=value", cli.ErrUsage, a)
	}
	cfg.Overrides = append(cfg.Overrides, ovs...)
	return nil, nil
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

// parseOpts assembles the options for parsing arg: includes resolve
// against the file's directory, and override layers stack environment
// first, then -e flags, so the command line wins.
func (cfg *MainConfig) parseOpts(arg string) []parse.ParseOption {
	res := []parse.ParseOption{}
	if arg != "" && arg != "-" {
		res = append(res, parse.ParseDir(filepath.Dir(arg)))
	}
	ovs := override.Layered(
		override.FromEnviron(cfg.EnvPrefix, os.Environ()),
		cfg.Overrides,
	)
	if len(ovs) > 0 {
		res = append(res, parse.ParseOverrides(ovs...))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat encode.Format
	switch {
	case cfg.J:
		fmat = encode.JSONFormat
	case cfg.Y:
		fmat = encode.YAMLFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ResolveConfig struct {
	*MainConfig

	Resolve *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
