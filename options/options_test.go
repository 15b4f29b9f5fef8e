package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bitenum-generator/internal/gen"
)

func TestParse_Defaults(t *testing.T) {
	o, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, gen.DefaultRuntime, o.Runtime)
	assert.Equal(t, "_bitenum", o.Suffix)
	assert.Equal(t, "bitenum", o.DefinitionTag)
	require.NotNil(t, o.Comments)
	assert.True(t, *o.Comments)

	assert.Equal(t, gen.DefaultGeneratorConfig(), o.GeneratorConfig())
}

func TestParse_Values(t *testing.T) {
	o, err := Parse([]byte(`
runtime: example.com/regs/arbint
suffix: _enum
definitionTag: enumdef
comments: false
workers: 4
types: [Mode, Level]
`))
	require.NoError(t, err)

	assert.Equal(t, "example.com/regs/arbint", o.Runtime)
	assert.Equal(t, "_enum", o.Suffix)
	assert.Equal(t, "enumdef", o.DefinitionTag)
	assert.Equal(t, 4, o.Workers)
	assert.Equal(t, []string{"Mode", "Level"}, o.Types)

	cfg := o.GeneratorConfig()
	assert.False(t, cfg.GenerateComments)
	assert.Equal(t, "enumdef", cfg.DefinitionTag)
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown field":  "runtim: x\n",
		"bad yaml":       "runtime: [\n",
		"suffix":         "suffix: bitenum\n",
		"suffix path":    "suffix: _a/b\n",
		"test suffix":    "suffix: _test\n",
		"tag":            "definitionTag: a && b\n",
		"workers":        "workers: -1\n",
		"wrong type":     "workers: many\n",
		"comments value": "comments: maybe\n",
	}

	for name, src := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(src))
			assert.Error(t, err)
		})
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()

	o, err := LoadOptional(filepath.Join(dir, DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, Default(), o)

	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("suffix: _gen\n"), 0o644))

	o, err = LoadOptional(path)
	require.NoError(t, err)
	assert.Equal(t, "_gen", o.Suffix)
}

func TestMarshal_RoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)

	o, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), o)
}
