// Package modlist holds the mod list extracted from a save and the
// encoders for its output formats.
package modlist

type Mod struct {
	// PackageID is the stable package-style mod identifier,
	// e.g. "brrainz.harmony".
	PackageID string

	// SteamID is the numeric Steam Workshop ID.
	// Empty for local (non-Workshop) mods.
	SteamID string

	// Name is the display name shown in the mod menu.
	Name string
}

// List is a mod list in load order. Order is significant: it is the
// order the game activates mods in, and every encoder preserves it.
type List []Mod
