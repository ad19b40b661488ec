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
	"bytes"
	"fmt"
	"io"
	"strings"
)

// WriteTo serializes the archive in txtar form to w: the comment, then for
// each file a "-- name --" delimiter line followed by the file's data.
// Because every stored segment is newline-normalized at construction, the
// output is a syntactically valid archive with no further newline fixing.
// WriteTo fails only if w does, and returns the error unchanged.
func (a *Archive) WriteTo(w io.Writer) (n int64, err error) {
	m, err := w.Write(a.comment)
	n += int64(m)
	if err != nil {
		return n, err
	}
	for _, f := range a.files {
		m, err := fmt.Fprintf(w, "%s%s%s\n", MARKER, f.name, MARKER_END)
		n += int64(m)
		if err != nil {
			return n, err
		}
		m, err = w.Write(f.data)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Format returns the serialized form of the archive.
func Format(a *Archive) []byte {
	var buf bytes.Buffer
	a.WriteTo(&buf) // a bytes.Buffer never errors
	return buf.Bytes()
}

// String renders the archive for display. It is the lossy counterpart of
// WriteTo: stored bytes are interpreted as UTF-8 with invalid sequences
// replaced by U+FFFD, and the two outputs otherwise agree
// character-for-character.
func (a *Archive) String() string {
	var sb strings.Builder
	sb.WriteString(strings.ToValidUTF8(string(a.comment), "�"))
	for _, f := range a.files {
		sb.WriteString(MARKER)
		sb.WriteString(strings.ToValidUTF8(f.name, "�"))
		sb.WriteString(MARKER_END)
		sb.WriteByte('\n')
		sb.WriteString(strings.ToValidUTF8(string(f.data), "�"))
	}
	return sb.String()
}
