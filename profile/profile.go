// Package profile describes the optional HCL file selecting and tuning
// the generated output formats.
package profile

import (
	"fmt"
)

// Output format labels.
const (
	FormatList = "list"
	FormatCSV  = "csv"
	FormatXML  = "xml"
)

type Profile struct {
	Outputs []Output `hcl:"output,block"`
}

type Output struct {
	// Format selects the encoder: "list", "csv" or "xml".
	Format string `hcl:"format,label"`

	// Delimiter overrides the csv field delimiter. One character.
	Delimiter string `hcl:"delimiter,optional"`

	// SteamID adds the Steam Workshop ID column to csv output.
	SteamID bool `hcl:"steamID,optional"`
}

// Default is the profile used when no profile file is given: the
// loader list plus the review csv.
func Default() Profile {
	return Profile{Outputs: []Output{
		{Format: FormatList},
		{Format: FormatCSV},
	}}
}

// Validate checks format labels and attribute combinations.
func (p Profile) Validate() error {
	if len(p.Outputs) == 0 {
		return fmt.Errorf("profile enables no outputs")
	}
	seen := make(map[string]bool, len(p.Outputs))
	for _, o := range p.Outputs {
		switch o.Format {
		case FormatList, FormatCSV, FormatXML:
		default:
			return fmt.Errorf("unknown output format %q", o.Format)
		}
		if seen[o.Format] {
			return fmt.Errorf("duplicate output format %q", o.Format)
		}
		seen[o.Format] = true

		if o.Format != FormatCSV {
			if o.Delimiter != "" {
				return fmt.Errorf("delimiter is a csv option, not valid for %q", o.Format)
			}
			if o.SteamID {
				return fmt.Errorf("steamID is a csv option, not valid for %q", o.Format)
			}
		}
		if n := len([]rune(o.Delimiter)); n > 1 {
			return fmt.Errorf("delimiter must be one character, got %q", o.Delimiter)
		}
	}
	return nil
}

// Comma returns the csv field delimiter for the block, ',' when unset.
func (o Output) Comma() rune {
	if o.Delimiter == "" {
		return ','
	}
	return []rune(o.Delimiter)[0]
}
