package modlist

import (
	"encoding/csv"
	"io"
)

// CSVExt is the extension of the human-review listing.
const CSVExt = ".csv"

type CSVOptions struct {
	// Comma is the field delimiter. Zero value means ','.
	Comma rune

	// SteamID appends a steamID column after identifier and name.
	SteamID bool
}

// EncodeCSV writes a header row followed by one row per mod in load
// order. Fields containing the delimiter, quotes or line breaks get the
// standard csv quoting.
func EncodeCSV(w io.Writer, mods List, opts CSVOptions) error {
	cw := csv.NewWriter(w)
	if opts.Comma != 0 {
		cw.Comma = opts.Comma
	}

	header := []string{"identifier", "name"}
	if opts.SteamID {
		header = append(header, "steamID")
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, m := range mods {
		row := []string{m.PackageID, m.Name}
		if opts.SteamID {
			row = append(row, m.SteamID)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
