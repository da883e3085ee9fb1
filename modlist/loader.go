package modlist

import (
	"bufio"
	"io"
)

// LoaderExt is the extension the game's mod-menu import feature
// recognizes.
const LoaderExt = ".rml"

// EncodeLoader writes one package ID per line in load order, no header,
// no trailing metadata. This is the file the mod menu imports.
func EncodeLoader(w io.Writer, mods List) error {
	bw := bufio.NewWriter(w)
	for _, m := range mods {
		if _, err := bw.WriteString(m.PackageID); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
