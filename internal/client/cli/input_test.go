package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("  hello world  \n"), "Say something", &out)
	require.NoError(t, err)
	require.Equal(t, "hello world", got)
	require.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(reader("partial"), "Prompt", &out)
	require.NoError(t, err)
	require.Equal(t, "partial", got)
}

func TestGetSimpleText_EOFWithoutInput(t *testing.T) {
	var out bytes.Buffer
	_, err := GetSimpleText(reader(""), "Prompt", &out)
	require.Error(t, err)
}

func TestGetYesNo(t *testing.T) {
	var out bytes.Buffer
	for input, want := range map[string]bool{
		"y\n":     true,
		"Y\n":     true,
		"yes\n":   true,
		"n\n":     false,
		"no\n":    false,
		"maybe\n": false,
	} {
		got, err := GetYesNo(reader(input), "Sure?", &out)
		require.NoError(t, err)
		require.Equal(t, want, got, "input %q", input)
	}
}

func TestGetAmount(t *testing.T) {
	var out bytes.Buffer
	got, err := GetAmount(reader("99.95\n"), "Amount", &out)
	require.NoError(t, err)
	require.Equal(t, 99.95, got)

	_, err = GetAmount(reader("lots\n"), "Amount", &out)
	require.Error(t, err)
}

func TestGetID(t *testing.T) {
	var out bytes.Buffer
	got, err := GetID(reader("42\n"), "Id", &out)
	require.NoError(t, err)
	require.Equal(t, int64(42), got)

	_, err = GetID(reader("4.2\n"), "Id", &out)
	require.Error(t, err)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	got, err := GetPassword(&out, "Password")
	require.NoError(t, err)
	require.Equal(t, "s3cret", got)
	require.Contains(t, out.String(), "Password")
}
