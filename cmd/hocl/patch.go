package main

import (
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/hocl-format/hocl/encode"
	"github.com/hocl-format/hocl/gomap"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires a patch file and a document", cli.ErrUsage)
	}
	pd, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", args[0], err)
	}
	p, err := jsonpatch.DecodePatch(pd)
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	node, err := loadArg(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	doc, err := json.Marshal(encode.ToAny(node))
	if err != nil {
		return err
	}
	patched, err := p.Apply(doc)
	if err != nil {
		return fmt.Errorf("error applying patch: %w", err)
	}
	var v any
	if err := json.Unmarshal(patched, &v); err != nil {
		return err
	}
	return encode.Encode(gomap.FromAny(v), cc.Out, cfg.encOpts(cc.Out)...)
}
