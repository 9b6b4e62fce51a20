package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/hocl-format/hocl/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := strings.TrimPrefix(args[0], "$.")
	if path == "" {
		return fmt.Errorf("%w: invalid path %q", cli.ErrUsage, args[0])
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, arg := range files {
		node, err := loadArg(cfg.MainConfig, cc, arg)
		if err != nil {
			return err
		}
		res := node.GetPath(path)
		if res == nil {
			// absent path, print nothing and don't yell either
			continue
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
