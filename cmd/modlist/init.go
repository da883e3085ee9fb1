package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/Gnonpi/rimworld-save-to-modlist/profile"
)

type InitCommand struct {
	OutputPath string
}

func (*InitCommand) Name() string     { return "init" }
func (*InitCommand) Synopsis() string { return "write a starter profile" }
func (*InitCommand) Usage() string {
	return `Usage: modlist init [-o modlist.hcl]

	Writes a profile enabling the default outputs, as a starting point
	to edit. Refuses to overwrite an existing file.

Flags:
`
}

func (cmd *InitCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.OutputPath, "o", defaultProfile, "profile output path")
}

func (cmd *InitCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	fpath := cmd.OutputPath
	if _, err := os.Stat(fpath); err == nil {
		log.Printf("refusing to overwrite %q", fpath)
		return subcommands.ExitFailure
	}

	conf := hclwrite.NewEmptyFile()
	body := conf.Body()
	for i, o := range profile.Default().Outputs {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("output", []string{o.Format})
		if o.Format == profile.FormatCSV {
			b := block.Body()
			b.SetAttributeValue("delimiter", cty.StringVal(","))
			b.SetAttributeValue("steamID", cty.BoolVal(false))
		}
	}

	if err := writeFileAtomic(fpath, conf.Bytes()); err != nil {
		log.Printf("write %q: %+v", fpath, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
