package bfformatter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaeufl/bfformatter"
)

func TestNew_NoSource(t *testing.T) {
	_, err := bfformatter.New(bfformatter.Config{})
	assert.ErrorIs(t, err, bfformatter.ErrNoSource)
}

// TestNew_PrefersLiteralSource checks that a literal Source wins over
// SourceFile: the file is never opened, so a bogus path must not matter.
func TestNew_PrefersLiteralSource(t *testing.T) {
	f, err := bfformatter.New(bfformatter.Config{
		Source:     "+-+-",
		SourceFile: filepath.Join(t.TempDir(), "does-not-exist.b"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+-+-", f.Source())
}

func TestNew_SourceFileStripsNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "src.b")
	require.NoError(t, os.WriteFile(path, []byte("++\r\n--\n>"), 0o644))

	f, err := bfformatter.New(bfformatter.Config{SourceFile: path})
	require.NoError(t, err)
	assert.Equal(t, "++-->", f.Source())
}

func TestNew_MissingSourceFile(t *testing.T) {
	_, err := bfformatter.New(bfformatter.Config{
		SourceFile: filepath.Join(t.TempDir(), "nope.b"),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNew_StripComments(t *testing.T) {
	f, err := bfformatter.New(bfformatter.Config{
		Source:        "+ add one; [loop] < move,.\t-",
		StripComments: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "+[]<,.-", f.Source())
}

func TestNew_StripCommentsIdempotent(t *testing.T) {
	once, err := bfformatter.New(bfformatter.Config{
		Source:        "read, [store] and print.",
		StripComments: true,
	})
	require.NoError(t, err)

	twice, err := bfformatter.New(bfformatter.Config{
		Source:        once.Source(),
		StripComments: true,
	})
	require.NoError(t, err)
	assert.Equal(t, once.Source(), twice.Source())
}

func TestNew_CustomCommands(t *testing.T) {
	f, err := bfformatter.New(bfformatter.Config{
		Source:        "ab12ba",
		StripComments: true,
		Commands:      "ab",
	})
	require.NoError(t, err)
	assert.Equal(t, "abba", f.Source())
}
