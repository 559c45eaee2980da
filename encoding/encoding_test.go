package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAliases(t *testing.T) {
	data := map[string]string{
		"UTF-8":       "utf-8",
		"utf8":        "utf-8",
		"latin1":      "windows-1252",
		"ISO-8859-1":  "windows-1252",
		"Shift_JIS":   "shift_jis",
		"sjis":        "shift_jis",
		" euc-jp ":    "euc-jp",
		"GB2312":      "gbk",
		"big5":        "big5",
		"windows-874": "", // not supported
		"bogus":       "",
	}

	for name, canonical := range data {
		e := Load(name)
		if canonical == "" {
			assert.Nil(t, e, "Load(%q) should be unknown", name)
			continue
		}
		if !assert.NotNil(t, e, "Load(%q) should resolve", name) {
			continue
		}
		assert.Equal(t, Load(canonical), e, "Load(%q) and Load(%q) should agree", name, canonical)
	}
}

func TestWindows1252(t *testing.T) {
	e := Load("latin1")
	require.NotNil(t, e, "latin1 should resolve")

	s, err := e.NewDecoder().String("caf\xe9")
	require.NoError(t, err, "decode should succeed")
	require.Equal(t, "café", s)
}
