package analyze

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitenum-generator/internal/diagnostic"
)

const testdataPkg = "bitenum-generator/internal/analyze/testdata/modes"

func TestLoader_Load(t *testing.T) {
	pkgs, err := NewLoader("", nil).Load(context.Background(), "./testdata/modes")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	pkg := pkgs[0]
	assert.Equal(t, testdataPkg, pkg.Path)
	assert.Equal(t, "modes", pkg.Name)

	files := make(map[string]*File)
	for _, f := range pkg.Files {
		files[filepath.Base(f.Path)] = f
	}

	// Generated files are skipped, constrained ones are kept.
	assert.NotContains(t, files, "mode_bitenum.go")
	require.Contains(t, files, "mode.go")
	require.Contains(t, files, "platform_native.go")
	require.Contains(t, files, "level_def.go")

	assert.Empty(t, files["mode.go"].Marker)
	assert.False(t, files["mode.go"].Definition)

	assert.Equal(t, "linux || darwin", files["platform_native.go"].Marker)
	assert.False(t, files["platform_native.go"].Definition)

	assert.Empty(t, files["level_def.go"].Marker)
	assert.True(t, files["level_def.go"].Definition)

	assert.Equal(t, filepath.Dir(files["mode.go"].Path), pkg.Dir)
}

func TestLoader_LoadAndExtract(t *testing.T) {
	pkgs, err := NewLoader("", nil).Load(context.Background(), "./testdata/modes")
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	var diags diagnostic.Diagnostics
	enums := Extract(pkgs[0], &diags)
	require.False(t, diags.HasErrors(), diags.Error())

	byName := make(map[string]*EnumDescriptor)
	for _, e := range enums {
		byName[e.Name] = e
	}

	require.Len(t, byName, 3)

	mode := byName["Mode"]
	require.NotNil(t, mode)
	assert.Equal(t, "u3", mode.Directive)
	assert.Equal(t, []string{"// Mode selects the operating mode of a channel.", "//"}, mode.Doc)
	assert.Len(t, mode.Variants, 3)

	platform := byName["Platform"]
	require.NotNil(t, platform)
	require.Len(t, platform.Variants, 3)
	assert.Equal(t, "PlatformNative", platform.Variants[2].Name)
	assert.Equal(t, "linux || darwin", platform.Variants[2].Marker())

	level := byName["Level"]
	require.NotNil(t, level)
	assert.True(t, level.Definition)
	require.Len(t, level.Variants, 2)
	assert.Equal(t, "// default", level.Variants[1].Comment)
}

func TestLoader_CustomDefinitionTag(t *testing.T) {
	l := NewLoader("gen", nil)

	pkg, err := l.ParseSources("example.com/p", map[string]string{
		"a.go": "package p\n",
		"b.go": "//go:build gen && (arm || arm64)\n\npackage p\n",
		"c.go": "//go:build bitenum\n\npackage p\n",
	})
	require.NoError(t, err)
	require.Len(t, pkg.Files, 3)

	assert.True(t, pkg.Files[1].Definition)
	assert.Equal(t, "arm || arm64", pkg.Files[1].Marker)

	assert.False(t, pkg.Files[2].Definition)
	assert.Equal(t, "bitenum", pkg.Files[2].Marker)
}

func TestLoader_PlusBuildLines(t *testing.T) {
	pkg, err := NewLoader("", nil).ParseSources("example.com/p", map[string]string{
		"a.go": "// +build linux\n// +build amd64\n\npackage p\n",
	})
	require.NoError(t, err)
	require.Len(t, pkg.Files, 1)

	assert.Equal(t, "linux && amd64", pkg.Files[0].Marker)
}

func TestLoader_SkipsOtherPackages(t *testing.T) {
	pkg, err := NewLoader("", nil).ParseSources("example.com/p", map[string]string{
		"a.go":     "package p\n",
		"gen.go":   "//go:build ignore\n\npackage main\n",
		"types.go": "package p\n",
	})
	require.NoError(t, err)

	assert.Equal(t, "p", pkg.Name)
	assert.Len(t, pkg.Files, 2)
}

func TestLoader_InvalidConstraint(t *testing.T) {
	_, err := NewLoader("", nil).ParseSources("example.com/p", map[string]string{
		"a.go": "//go:build linux &&\n\npackage p\n",
	})
	assert.Error(t, err)
}

func TestLoader_FileNameSuffix(t *testing.T) {
	pkg, err := NewLoader("", nil).ParseSources("example.com/p", map[string]string{
		"a.go":                "package p\n",
		"mode_linux.go":       "package p\n",
		"mode_linux_arm64.go": "package p\n",
		"mode_wasm.go":        "//go:build js && wasm\n\npackage p\n",
		"mode_windows.go":     "//go:build amd64 || arm64\n\npackage p\n",
		"linux.go":            "package p\n",
		"mode_native.go":      "package p\n",
		"mode_def_arm.go":     "//go:build bitenum\n\npackage p\n",
	})
	require.NoError(t, err)

	markers := make(map[string]string)
	for _, f := range pkg.Files {
		markers[f.Path] = f.Marker
	}

	assert.Equal(t, map[string]string{
		"a.go":                "",
		"linux.go":            "",
		"mode_def_arm.go":     "arm",
		"mode_linux.go":       "linux",
		"mode_linux_arm64.go": "linux && arm64",
		"mode_native.go":      "",
		"mode_wasm.go":        "js && wasm",
		"mode_windows.go":     "(amd64 || arm64) && windows",
	}, markers)

	assert.True(t, pkg.Files[2].Definition, pkg.Files[2].Path)
}
