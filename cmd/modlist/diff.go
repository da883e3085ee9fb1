package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/pkg/diff"

	"github.com/Gnonpi/rimworld-save-to-modlist/modlist"
	"github.com/Gnonpi/rimworld-save-to-modlist/savefile"
)

type DiffCommand struct {
	ContextSize int
}

func (*DiffCommand) Name() string     { return "diff" }
func (*DiffCommand) Synopsis() string { return "compare the mod lists of two saves" }
func (*DiffCommand) Usage() string {
	return `Usage: modlist diff [-c int] old.rws new.rws

	Extracts the mod list of both saves and prints a unified diff of
	their loader lists. Added, removed and reordered mods show up as
	line changes. Identical lists print nothing.

Flags:
`
}

func (cmd *DiffCommand) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&cmd.ContextSize, "c", 3, "output n lines of diff context")
}

func (cmd *DiffCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if fs.NArg() != 2 {
		log.Printf("expected two save files, got %d arguments", fs.NArg())
		return subcommands.ExitUsageError
	}

	lists := make([][]byte, 2)
	for i, path := range fs.Args() {
		root, err := savefile.Load(path)
		if err != nil {
			log.Printf("load save: %+v", err)
			return subcommands.ExitFailure
		}
		save, err := savefile.Extract(root)
		if err != nil {
			log.Printf("extract %q: %+v", path, err)
			return subcommands.ExitFailure
		}
		var buf bytes.Buffer
		if err := modlist.EncodeLoader(&buf, save.Mods); err != nil {
			log.Printf("encode %q: %+v", path, err)
			return subcommands.ExitFailure
		}
		lists[i] = buf.Bytes()
	}

	if bytes.Equal(lists[0], lists[1]) {
		return subcommands.ExitSuccess
	}

	aname := fmt.Sprintf("a/%s", filepath.ToSlash(fs.Arg(0)))
	bname := fmt.Sprintf("b/%s", filepath.ToSlash(fs.Arg(1)))
	opts := []diff.WriteOpt{diff.Names(aname, bname)}
	if _, color := fdinfo(int(os.Stdout.Fd())); color {
		opts = append(opts, diff.TerminalColor())
	}

	a, b := splitLines(lists[0]), splitLines(lists[1])
	pair := diff.Bytes(a, b)
	edit := diff.Myers(ctx, pair)
	if cmd.ContextSize >= 0 {
		edit = edit.WithContextSize(cmd.ContextSize)
	}
	if _, err := edit.WriteUnified(os.Stdout, pair, opts...); err != nil {
		log.Printf("write diff: %+v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
