package savefile

import (
	"fmt"
	"log"
	"strings"

	"github.com/blang/semver"

	"github.com/Gnonpi/rimworld-save-to-modlist/modlist"
)

// lastTestedVersion is the newest game release this extractor has been
// exercised against. Newer saves still parse, with a warning.
var lastTestedVersion = semver.MustParse("1.4.3704")

// Save is the slice of a save document this tool cares about.
type Save struct {
	// GameVersion is the full version string from the save meta,
	// e.g. "1.4.3704 rev898".
	GameVersion string

	Mods modlist.List
}

// Extract pulls the game version and the active mod list out of a
// parsed save document. The meta section carries three parallel li
// lists (modIds, modSteamIds, modNames); all three must be present and
// the same length. An empty list is valid.
func Extract(root *Node) (*Save, error) {
	meta := root.Child("meta")
	if meta == nil {
		return nil, fmt.Errorf("%w: missing %s/meta", ErrMalformed, root.Name)
	}

	version := meta.Child("gameVersion")
	if version == nil {
		return nil, fmt.Errorf("%w: missing meta/gameVersion", ErrMalformed)
	}

	ids, err := liValues(meta, "modIds")
	if err != nil {
		return nil, err
	}
	steamIDs, err := liValues(meta, "modSteamIds")
	if err != nil {
		return nil, err
	}
	names, err := liValues(meta, "modNames")
	if err != nil {
		return nil, err
	}
	if len(ids) != len(steamIDs) || len(ids) != len(names) {
		return nil, fmt.Errorf("%w: meta lists disagree: %d modIds, %d modSteamIds, %d modNames",
			ErrMalformed, len(ids), len(steamIDs), len(names))
	}

	mods := make(modlist.List, len(ids))
	for i := range ids {
		mods[i] = modlist.Mod{
			PackageID: ids[i],
			SteamID:   steamIDs[i],
			Name:      names[i],
		}
	}

	warnVersion(version.Text)
	return &Save{GameVersion: version.Text, Mods: mods}, nil
}

func liValues(meta *Node, name string) ([]string, error) {
	list := meta.Child(name)
	if list == nil {
		return nil, fmt.Errorf("%w: missing meta/%s", ErrMalformed, name)
	}
	vals := make([]string, 0, len(list.Children))
	for _, li := range list.Children {
		vals = append(vals, li.Text)
	}
	return vals, nil
}

// warnVersion flags saves from game releases newer than the last one
// this tool was exercised against. The version string looks like
// "1.4.3704 rev898"; only the dotted prefix is comparable. Structure,
// not version, decides whether a save is readable, so this never
// fails the run.
func warnVersion(v string) {
	num, _, _ := strings.Cut(v, " ")
	parsed, err := semver.ParseTolerant(num)
	if err != nil {
		log.Printf("unrecognized game version %q", v)
		return
	}
	if parsed.GT(lastTestedVersion) {
		log.Printf("save is from game version %s, newer than tested %s", parsed, lastTestedVersion)
	}
}
