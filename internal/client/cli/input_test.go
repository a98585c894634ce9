package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	v, err := GetSimpleText(r, "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", v)
	require.Equal(t, "Enter text\n> ", out.String())
}

func TestGetSimpleText_PartialLineAtEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	v, err := GetSimpleText(r, "Enter text", &out)
	require.NoError(t, err)
	require.Equal(t, "no newline", v)
}

func TestGetSimpleText_EmptyInputReturnsEOF(t *testing.T) {
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Enter text", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	v, err := GetPassword("Enter password", &out)
	require.NoError(t, err)
	require.Equal(t, "s3cret", v)
	require.Equal(t, "Enter password: \n", out.String())
}

func TestGetLines(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("one\n two \n\nnever read\n"))

	lines, err := GetLines(r, "Paste image URLs", &out)
	require.NoError(t, err)
	require.Equal(t, []string{"one", "two"}, lines)
	require.Contains(t, out.String(), "empty line to finish")
}

func TestGetLines_ImmediatelyEmpty(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("\n"))

	lines, err := GetLines(r, "Paste image URLs", io.Discard)
	require.NoError(t, err)
	require.Empty(t, lines)
}
