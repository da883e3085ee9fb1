package modlist

import (
	"encoding/xml"
	"io"
)

// SavedListExt is the extension of the game-native savedModList
// document.
const SavedListExt = ".xml"

// savedModList mirrors the document layout the mod menu itself writes:
// a meta section with the three parallel li lists, plus a modList
// section repeating ids and names.
type savedModList struct {
	XMLName xml.Name  `xml:"savedModList"`
	Meta    savedMeta `xml:"meta"`
	ModList savedList `xml:"modList"`
}

type savedMeta struct {
	GameVersion string `xml:"gameVersion"`
	ModIds      liList `xml:"modIds"`
	ModSteamIds liList `xml:"modSteamIds"`
	ModNames    liList `xml:"modNames"`
}

type savedList struct {
	Ids   liList `xml:"ids"`
	Names liList `xml:"names"`
}

// liList keeps the parent element present even when empty, which a
// plain "parent>li" tag would drop.
type liList struct {
	Items []string `xml:"li"`
}

// EncodeSavedList writes the game's native savedModList document for
// the extracted list, the format the mod menu saves lists in itself.
func EncodeSavedList(w io.Writer, gameVersion string, mods List) error {
	doc := savedModList{
		Meta: savedMeta{GameVersion: gameVersion},
	}
	for _, m := range mods {
		doc.Meta.ModIds.Items = append(doc.Meta.ModIds.Items, m.PackageID)
		doc.Meta.ModSteamIds.Items = append(doc.Meta.ModSteamIds.Items, m.SteamID)
		doc.Meta.ModNames.Items = append(doc.Meta.ModNames.Items, m.Name)
		doc.ModList.Ids.Items = append(doc.ModList.Ids.Items, m.PackageID)
		doc.ModList.Names.Items = append(doc.ModList.Names.Items, m.Name)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
