package main

import (
	"context"
	"flag"
	"log"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/subcommands"

	"github.com/Gnonpi/rimworld-save-to-modlist/profile"
	"github.com/Gnonpi/rimworld-save-to-modlist/savefile"
)

type ExtractCommand struct {
	OutputDir   string
	ProfilePath string
}

func (*ExtractCommand) Name() string     { return "extract" }
func (*ExtractCommand) Synopsis() string { return "extract the mod list from a save" }
func (*ExtractCommand) Usage() string {
	return `Usage: modlist extract [-o dir] [-profile modlist.hcl] save.rws

	Reads the save file and writes its active mod list, one file per
	output format enabled in the profile, named after the save file
	stem. Without a profile the loader list (.rml) and the review csv
	(.csv) are written. Mods keep the load order recorded in the save.

	Either every enabled output is written, or none.

Flags:
`
}

func (cmd *ExtractCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.OutputDir, "o", ".", "output directory")
	fs.StringVar(&cmd.ProfilePath, "profile", "", "profile path")
}

func (cmd *ExtractCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 1 {
		log.Printf("expected exactly one save file, got %d arguments", fs.NArg())
		return subcommands.ExitUsageError
	}
	savePath := fs.Arg(0)

	prof := profile.Default()
	if cmd.ProfilePath != "" {
		p, ok := loadProfile(cmd.ProfilePath)
		if !ok {
			return subcommands.ExitFailure
		}
		prof = p
	}
	if err := prof.Validate(); err != nil {
		log.Printf("profile %q: %+v", cmd.ProfilePath, err)
		return subcommands.ExitUsageError
	}

	root, err := savefile.Load(savePath)
	if err != nil {
		log.Printf("load save: %+v", err)
		return subcommands.ExitFailure
	}
	save, err := savefile.Extract(root)
	if err != nil {
		log.Printf("extract %q: %+v", savePath, err)
		return subcommands.ExitFailure
	}

	files, err := renderOutputs(saveStem(savePath), save, prof)
	if err != nil {
		log.Printf("render outputs: %+v", err)
		return subcommands.ExitFailure
	}

	outfs := osfs.New(cmd.OutputDir)
	if err := commitOutputs(outfs, files); err != nil {
		log.Printf("write outputs: %+v", err)
		return subcommands.ExitFailure
	}
	for _, f := range files {
		log.Printf("wrote %s", filepath.Join(cmd.OutputDir, f.Name))
	}
	return subcommands.ExitSuccess
}

// saveStem is the save file name without directory and extension; the
// outputs are named after it.
func saveStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
