package ospath_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/ospath/pkg/ospath"
)

func TestPrefix(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		path       string
		wantPrefix string
		wantRoot   string
	}{
		"unc":              {path: `\\srv\share`, wantPrefix: `\\`, wantRoot: `\\`},
		"upper drive":      {path: "C:/x", wantPrefix: "C:", wantRoot: "C:"},
		"lower drive":      {path: "d:", wantPrefix: "d:", wantRoot: "d:"},
		"slash":            {path: "/x", wantPrefix: "", wantRoot: "/"},
		"backslash":        {path: `\x`, wantPrefix: "", wantRoot: `\`},
		"lone slash":       {path: "/", wantPrefix: "", wantRoot: "/"},
		"slash backslash":  {path: `/\x`, wantPrefix: "", wantRoot: ""},
		"relative":         {path: "x/C:", wantPrefix: "", wantRoot: ""},
		"non-ascii letter": {path: "é:/", wantPrefix: "", wantRoot: ""},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			prefix, ok := ospath.Prefix(tc.path, ospath.Windows)
			assert.Equal(t, tc.wantPrefix != "", ok)
			assert.Equal(t, tc.wantPrefix, prefix)

			root, ok := ospath.RootPrefix(tc.path, ospath.Windows)
			assert.Equal(t, tc.wantRoot != "", ok)
			assert.Equal(t, tc.wantRoot, root)
		})
	}
}

func TestPrefix_Default(t *testing.T) {
	t.Parallel()

	_, ok := ospath.Prefix(`\\srv`, ospath.Default)
	assert.False(t, ok)

	_, ok = ospath.Prefix("C:/", ospath.Default)
	assert.False(t, ok)

	root, ok := ospath.RootPrefix(`\\srv`, ospath.Default)
	assert.True(t, ok)
	assert.Equal(t, `\`, root)
}

func TestStripAndReattachPrefix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "///x", ospath.StripPrefix("C://x", ospath.Windows))
	assert.Equal(t, "/srv", ospath.StripPrefix(`\\srv`, ospath.Windows))
	assert.Equal(t, "/x", ospath.StripPrefix("/x", ospath.Windows))
	assert.Equal(t, "rel", ospath.StripPrefix("rel", ospath.Windows))
	assert.Equal(t, "C:/x", ospath.StripPrefix("C:/x", ospath.Default))

	assert.Equal(t, `\\srv/a`, ospath.ReattachPrefix(ospath.UNCPrefix, "/srv/a"))
	assert.Equal(t, "C:/a", ospath.ReattachPrefix("C:", "/a"))
}

func TestParseManipulation(t *testing.T) {
	t.Parallel()

	for _, m := range ospath.Manipulations {
		got, err := ospath.ParseManipulation(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ospath.ParseManipulation(" Windows ")
	require.NoError(t, err)
	assert.Equal(t, ospath.Windows, got)

	got, err = ospath.ParseManipulation("")
	require.NoError(t, err)
	assert.Equal(t, ospath.Default, got)

	_, err = ospath.ParseManipulation("plan9")
	require.ErrorIs(t, err, ospath.ErrUnknownManipulation)

	var m ospath.Manipulation
	require.NoError(t, m.UnmarshalText([]byte("WINDOWS")))
	assert.Equal(t, ospath.Windows, m)

	text, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "windows", string(text))
}

func TestNative(t *testing.T) {
	t.Parallel()

	want := ospath.Default
	if runtime.GOOS == "windows" {
		want = ospath.Windows
	}

	assert.Equal(t, want, ospath.Native())
}
