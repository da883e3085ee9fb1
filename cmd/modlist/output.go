package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/go-git/go-billy/v5"

	"github.com/Gnonpi/rimworld-save-to-modlist/modlist"
	"github.com/Gnonpi/rimworld-save-to-modlist/profile"
	"github.com/Gnonpi/rimworld-save-to-modlist/savefile"
)

type outputFile struct {
	Name string
	Data []byte
}

// renderOutputs encodes every enabled output in memory. Nothing
// touches the filesystem until all encoders have succeeded.
func renderOutputs(stem string, save *savefile.Save, prof profile.Profile) ([]outputFile, error) {
	files := make([]outputFile, 0, len(prof.Outputs))
	for _, o := range prof.Outputs {
		var buf bytes.Buffer
		var name string
		var err error
		switch o.Format {
		case profile.FormatList:
			name = stem + modlist.LoaderExt
			err = modlist.EncodeLoader(&buf, save.Mods)
		case profile.FormatCSV:
			name = stem + modlist.CSVExt
			opts := modlist.CSVOptions{Comma: o.Comma(), SteamID: o.SteamID}
			err = modlist.EncodeCSV(&buf, save.Mods, opts)
		case profile.FormatXML:
			name = stem + modlist.SavedListExt
			err = modlist.EncodeSavedList(&buf, save.GameVersion, save.Mods)
		default:
			err = fmt.Errorf("unknown output format %q", o.Format)
		}
		if err != nil {
			return nil, fmt.Errorf("encode %q: %w", o.Format, err)
		}
		files = append(files, outputFile{Name: name, Data: buf.Bytes()})
	}
	return files, nil
}

// commitOutputs stages every file as name.tmp and renames only after
// all writes succeeded. On failure both the temps and any file already
// renamed are removed, so a partial set never survives.
func commitOutputs(fs billy.Basic, files []outputFile) (err error) {
	var staged, done []string
	defer func() {
		if err == nil {
			return
		}
		for _, name := range append(staged, done...) {
			if rerr := fs.Remove(name); rerr != nil {
				log.Printf("remove %q: %+v", name, rerr)
			}
		}
	}()

	for _, f := range files {
		tmp := f.Name + ".tmp"
		if err = writeFile(fs, tmp, f.Data); err != nil {
			err = fmt.Errorf("write %q: %w", tmp, err)
			return err
		}
		staged = append(staged, tmp)
	}
	for i, f := range files {
		if err = fs.Rename(staged[i], f.Name); err != nil {
			err = fmt.Errorf("rename %q: %w", staged[i], err)
			staged = staged[i:]
			return err
		}
		done = append(done, f.Name)
	}
	return nil
}

func writeFile(fs billy.Basic, name string, data []byte) (err error) {
	f, err := fs.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}
