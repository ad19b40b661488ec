/*
Copyright (c) 2013 Blake Smith <blakesmith0@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package txtar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const basic = `comment1
comment2
-- file1 --
File 1 text.
-- foo --
File 2 text.
-- empty --
-- noNL --
hello world`

func TestParseBasic(t *testing.T) {
	a := Parse([]byte(basic))

	assert.Equal(t, "comment1\ncomment2\n", string(a.Comment()))

	files := a.Files()
	require.Len(t, files, 4)
	for i, want := range []struct {
		Name string
		Data string
	}{
		{"file1", "File 1 text.\n"},
		{"foo", "File 2 text.\n"},
		{"empty", ""},
		{"noNL", "hello world\n"},
	} {
		assert.Equal(t, want.Name, files[i].Name())
		assert.Equal(t, want.Data, string(files[i].Data()))
	}
}

func TestParseNoDelimiter(t *testing.T) {
	for _, tc := range []struct {
		Description string
		Input       string
		Comment     string
	}{
		{"empty input", "", ""},
		{"plain text", "just some text\nno markers here\n", "just some text\nno markers here\n"},
		{"text missing final newline", "just some text", "just some text\n"},
		{"unterminated marker line", "comment\n-- oops\nmore text\n", "comment\n-- oops\nmore text\n"},
		{"unterminated marker on last line", "-- trailing", "-- trailing\n"},
	} {
		t.Run(tc.Description, func(t *testing.T) {
			a := Parse([]byte(tc.Input))
			assert.Equal(t, tc.Comment, string(a.Comment()))
			assert.Empty(t, a.Files())
		})
	}
}

func TestParseFirstLineDelimiter(t *testing.T) {
	a := Parse([]byte("-- simplest.txt --"))
	assert.Empty(t, a.Comment())
	require.Len(t, a.Files(), 1)
	assert.Equal(t, "simplest.txt", a.Files()[0].Name())
	assert.Empty(t, a.Files()[0].Data())
}

func TestParseCRLF(t *testing.T) {
	a := Parse([]byte("blah\r\n-- hello --\r\nhello\r\n"))

	// The carriage return is stripped from the delimiter line only; content
	// keeps its line endings byte for byte.
	assert.Equal(t, "blah\r\n", string(a.Comment()))
	require.Len(t, a.Files(), 1)
	assert.Equal(t, "hello", a.Files()[0].Name())
	assert.Equal(t, "hello\r\n", string(a.Files()[0].Data()))
}

func TestFindFileMarker(t *testing.T) {
	for _, tc := range []struct {
		Description string
		Input       string
		Before      string
		Name        string
		After       string
	}{
		{"marker on first line", "-- a.txt --\ndata\n", "", "a.txt", "data\n"},
		{"marker after text", "text\n-- a.txt --\ndata\n", "text\n", "a.txt", "data\n"},
		{"marker at end of input", "text\n-- a.txt --", "text\n", "a.txt", ""},
		{"CRLF marker line", "text\r\n-- a.txt --\r\ndata\r\n", "text\r\n", "a.txt", "data\r\n"},
		{"name containing spaces", "-- hello world.txt --\n", "", "hello world.txt", ""},
		{"no marker", "no markers here\n", "no markers here\n", "", ""},
		{"marker missing terminator", "text\n-- a.txt\ndata\n", "text\n-- a.txt\ndata\n", "", ""},
		{"marker missing terminator at end of input", "text\n-- a.txt", "text\n-- a.txt", "", ""},
		{"dashes inside content line", "a -- b --\n", "a -- b --\n", "", ""},
	} {
		t.Run(tc.Description, func(t *testing.T) {
			before, name, after := findFileMarker([]byte(tc.Input))
			assert.Equal(t, tc.Before, string(before))
			assert.Equal(t, tc.Name, string(name))
			assert.Equal(t, tc.After, string(after))
		})
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "basic.txtar")
	require.NoError(t, os.WriteFile(path, []byte(basic), 0666))

	a, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, "comment1\ncomment2\n", string(a.Comment()))
	assert.Len(t, a.Files(), 4)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txtar"))
	assert.Error(t, err)
}

func TestParseFormatParse(t *testing.T) {
	first := Parse([]byte(basic))
	out := Format(first)
	second := Parse(out)

	assert.Equal(t, string(first.Comment()), string(second.Comment()))
	require.Equal(t, len(first.Files()), len(second.Files()))
	for i, f := range first.Files() {
		assert.Equal(t, f.Name(), second.Files()[i].Name())
		assert.Equal(t, string(f.Data()), string(second.Files()[i].Data()))
	}
	assert.Equal(t, string(out), string(Format(second)))
}
