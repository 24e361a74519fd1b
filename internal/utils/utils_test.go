package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsWord(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"hello", true},
		{"Hello", true},
		{"HELLO", true},
		{"don't", true},
		{"O'Neill", true},
		{"rock'n'roll", true},
		{"", false},
		{"hello world", false},
		{"word2vec", false},
		{"café", false},
		{" hello", false},
		{"'tis", false},
		{"dogs'", false},
		{"don''t", false},
		{"'", false},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsWord(tc.input))
		})
	}
}

func TestIsRepetitive(t *testing.T) {
	assert.True(t, IsRepetitive("aaa"))
	assert.True(t, IsRepetitive("zzzzzz"))
	assert.False(t, IsRepetitive("aa"))
	assert.False(t, IsRepetitive("aab"))
}

func TestCreateRankList(t *testing.T) {
	assert.Equal(t, []uint16{1, 2, 3}, CreateRankList(3))
	assert.Empty(t, CreateRankList(0))
	assert.Empty(t, CreateRankList(-2))
}

func TestFormatWithCommas(t *testing.T) {
	assert.Equal(t, "0", FormatWithCommas(0))
	assert.Equal(t, "999", FormatWithCommas(999))
	assert.Equal(t, "1,000", FormatWithCommas(1000))
	assert.Equal(t, "1,234,567", FormatWithCommas(1234567))
	assert.Equal(t, "-12,345", FormatWithCommas(-12345))
}

func TestTOMLRoundTrip(t *testing.T) {
	type section struct {
		Limit int  `toml:"limit"`
		On    bool `toml:"on"`
	}
	type doc struct {
		Main section `toml:"main"`
	}

	path := filepath.Join(t.TempDir(), "sub", "cfg.toml")
	require.NoError(t, SaveTOMLFile(doc{Main: section{Limit: 7, On: true}}, path))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Dir(path)))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	var loaded doc
	unknown, err := DecodeTOMLFile(path, &loaded)
	require.NoError(t, err)
	assert.Empty(t, unknown)
	assert.Equal(t, 7, loaded.Main.Limit)

	raw, err := ParseTOMLMap(path)
	require.NoError(t, err)
	main, ok := ExtractSection(raw, "main")
	require.True(t, ok)

	limit, ok := ExtractInt(main, "limit")
	assert.True(t, ok)
	assert.Equal(t, 7, limit)

	on, ok := Extract[bool](main, "on")
	assert.True(t, ok)
	assert.True(t, on)

	_, ok = Extract[string](main, "limit")
	assert.False(t, ok)
	_, ok = ExtractInt(main, "missing")
	assert.False(t, ok)
}

func TestDecodeTOMLFileReportsUnknownKeys(t *testing.T) {
	type doc struct {
		Main struct {
			Limit int `toml:"limit"`
		} `toml:"main"`
	}

	path := filepath.Join(t.TempDir(), "cfg.toml")
	require.NoError(t, os.WriteFile(path, []byte("[main]\nlimit = 3\nlimmit = 4\n"), 0644))

	var loaded doc
	unknown, err := DecodeTOMLFile(path, &loaded)
	require.NoError(t, err)
	assert.Equal(t, 3, loaded.Main.Limit)
	assert.Equal(t, []string{"main.limmit"}, unknown)

	require.NoError(t, os.WriteFile(path, []byte("[main\n"), 0644))
	_, err = DecodeTOMLFile(path, &loaded)
	assert.Error(t, err)
	_, err = ParseTOMLMap(path)
	assert.Error(t, err)
}

func TestCheckDir(t *testing.T) {
	nested := filepath.Join(t.TempDir(), "a", "b")
	status := CheckDir(nested)
	assert.True(t, status.Exists)
	assert.True(t, status.Writable)
	assert.NoError(t, status.Err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	status = CheckDir(file)
	assert.False(t, status.Writable)
	assert.Error(t, status.Err)

	status = CheckDir(filepath.Join(file, "sub"))
	assert.False(t, status.Exists)
	assert.False(t, status.Writable)
	assert.Error(t, status.Err)
}

func TestGetConfigPathFallback(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	pr := &PathResolver{
		executableDir: file,
		homeDir:       file,
		configDir:     filepath.Join(file, AppDirName),
	}
	path, err := pr.GetConfigPath("wordcheck.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, AppDirName, "wordcheck.toml"), path)

	t.Setenv("TMPDIR", file)
	_, err = pr.GetConfigPath("wordcheck.toml")
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	abs := filepath.Join(dir, "words.txt")
	assert.Equal(t, abs, ResolveFile(abs))
	assert.Equal(t, "", ResolveFile(""))

	rel := ResolveFile("words.txt")
	assert.True(t, filepath.IsAbs(rel))
	assert.Equal(t, "words.txt", filepath.Base(rel))
}
