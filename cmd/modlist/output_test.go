package main

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gnonpi/rimworld-save-to-modlist/modlist"
	"github.com/Gnonpi/rimworld-save-to-modlist/profile"
	"github.com/Gnonpi/rimworld-save-to-modlist/savefile"
)

var testSave = &savefile.Save{
	GameVersion: "1.4.3704 rev898",
	Mods: modlist.List{
		{PackageID: "author1.modA", SteamID: "111", Name: "Mod A"},
		{PackageID: "author2.modB", SteamID: "222", Name: "Mod B, Extended"},
	},
}

func readAll(t *testing.T, fs billy.Basic, name string) string {
	t.Helper()
	f, err := fs.Open(name)
	require.NoError(t, err)
	defer f.Close()
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(data)
}

func TestRenderOutputsDefault(t *testing.T) {
	files, err := renderOutputs("quicksave", testSave, profile.Default())
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "quicksave.rml", files[0].Name)
	assert.Equal(t, "author1.modA\nauthor2.modB\n", string(files[0].Data))

	assert.Equal(t, "quicksave.csv", files[1].Name)
	assert.Equal(t, "identifier,name\nauthor1.modA,Mod A\nauthor2.modB,\"Mod B, Extended\"\n", string(files[1].Data))
}

func TestRenderOutputsXML(t *testing.T) {
	prof := profile.Profile{Outputs: []profile.Output{{Format: profile.FormatXML}}}
	files, err := renderOutputs("quicksave", testSave, prof)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "quicksave.xml", files[0].Name)
	assert.Contains(t, string(files[0].Data), "<savedModList>")
	assert.Contains(t, string(files[0].Data), "<gameVersion>1.4.3704 rev898</gameVersion>")
}

func TestRenderOutputsEmptySave(t *testing.T) {
	empty := &savefile.Save{GameVersion: "1.0.0"}
	files, err := renderOutputs("empty", empty, profile.Default())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Empty(t, string(files[0].Data))
	assert.Equal(t, "identifier,name\n", string(files[1].Data))
}

func TestCommitOutputs(t *testing.T) {
	fs := memfs.New()
	files := []outputFile{
		{Name: "save.rml", Data: []byte("a.mod\n")},
		{Name: "save.csv", Data: []byte("identifier,name\n")},
	}
	require.NoError(t, commitOutputs(fs, files))

	assert.Equal(t, "a.mod\n", readAll(t, fs, "save.rml"))
	assert.Equal(t, "identifier,name\n", readAll(t, fs, "save.csv"))

	_, err := fs.Stat("save.rml.tmp")
	assert.True(t, errors.Is(err, os.ErrNotExist))
	_, err = fs.Stat("save.csv.tmp")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

type failCreateFS struct {
	billy.Filesystem
	failName string
}

func (f failCreateFS) Create(name string) (billy.File, error) {
	if name == f.failName {
		return nil, errors.New("disk full")
	}
	return f.Filesystem.Create(name)
}

func TestCommitOutputsAllOrNothing(t *testing.T) {
	base := memfs.New()
	fs := failCreateFS{Filesystem: base, failName: "save.csv.tmp"}
	files := []outputFile{
		{Name: "save.rml", Data: []byte("a.mod\n")},
		{Name: "save.csv", Data: []byte("identifier,name\n")},
	}
	err := commitOutputs(fs, files)
	require.Error(t, err)

	// The staged first file must not survive the failed second one.
	for _, name := range []string{"save.rml", "save.rml.tmp", "save.csv", "save.csv.tmp"} {
		_, serr := base.Stat(name)
		assert.Truef(t, errors.Is(serr, os.ErrNotExist), "%s should not exist", name)
	}
}
