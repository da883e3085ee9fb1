package main

import (
	"log"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh/terminal"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/Gnonpi/rimworld-save-to-modlist/profile"
)

func newDiagWr(p *hclparse.Parser) (diagWr hcl.DiagnosticWriter, color bool) {
	files := p.Files()
	stderr := os.Stderr
	fd := int(stderr.Fd())
	istty, color := fdinfo(fd)
	if !istty {
		diagWr := hcl.NewDiagnosticTextWriter(stderr, files, 80, color)
		return diagWr, color
	}
	var width uint
	if w, _, err := terminal.GetSize(fd); err != nil {
		log.Printf("get term size: %+v", err)
	} else if w >= 0 {
		width = uint(w)
	} else {
		width = 80
	}
	return hcl.NewDiagnosticTextWriter(stderr, files, width, color), color
}

func fdinfo(fd int) (istty, color bool) {
	istty = terminal.IsTerminal(fd)
	if istty {
		color = true
	}
	// See https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color = false
	}
	return
}

// loadProfile parses one profile file, writing diagnostics to stderr.
func loadProfile(path string) (profile.Profile, bool) {
	var p profile.Profile
	var diags hcl.Diagnostics

	parser := hclparse.NewParser()
	diagWr, _ := newDiagWr(parser)

	src, err := os.ReadFile(path)
	if err != nil {
		log.Printf("read %q: %+v", path, err)
		return p, false
	}

	file, parseDiags := parser.ParseHCL(src, path)
	diags = append(diags, parseDiags...)
	if diags.HasErrors() {
		if err := diagWr.WriteDiagnostics(diags); err != nil {
			log.Printf("write diags: %+v", err)
		}
		return p, false
	}

	decodeDiags := gohcl.DecodeBody(file.Body, nil, &p)
	diags = append(diags, decodeDiags...)
	if err := diagWr.WriteDiagnostics(diags); err != nil {
		log.Printf("write diags: %+v", err)
		return p, false
	}

	return p, !diags.HasErrors()
}

// writeFileAtomic stages data next to path and renames it into place,
// so readers never observe a half-written file.
func writeFileAtomic(fpath string, data []byte) error {
	dir := filepath.Dir(fpath)
	f, err := os.CreateTemp(dir, filepath.Base(fpath)+".tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Chmod(0644); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, fpath); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
