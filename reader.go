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
	"os"
)

var (
	marker        = []byte(MARKER)
	markerEnd     = []byte(MARKER_END)
	newlineMarker = []byte(NEWLINE_MARKER)
)

// Parse parses the serialized form of an Archive. There are no syntax
// errors: text before the first delimiter line becomes the comment, and a
// malformed delimiter line is treated as literal content of the section it
// appears in.
//
// The returned Archive holds views into data where possible; a segment is
// copied only when a terminating newline has to be appended to it.
func Parse(data []byte) *Archive {
	a := new(Archive)
	var name []byte
	a.comment, name, data = findFileMarker(data)
	a.comment = fixNewline(a.comment)
	for len(name) > 0 {
		f := File{name: string(name)}
		f.data, name, data = findFileMarker(data)
		f.data = fixNewline(f.data)
		a.files = append(a.files, f)
	}
	return a
}

// ParseFile parses the named file as an archive.
func ParseFile(file string) (*Archive, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return Parse(data), nil
}

// findFileMarker locates the first delimiter line ("-- name --") in data
// and splits around it: before is everything up to and including the
// newline that precedes the marker, name is the text captured between the
// markers, and after is everything past the delimiter line's terminating
// newline. A delimiter on the very first line needs no preceding newline,
// and one on the last line needs no terminating newline.
//
// If data contains no delimiter line, or the first marker opening is not
// properly terminated by " --" at end of line, findFileMarker returns
// before = data with empty name and after, signaling that no sections
// remain. It computes slice boundaries only and never allocates.
func findFileMarker(data []byte) (before, name, after []byte) {
	var line []byte
	if bytes.HasPrefix(data, marker) {
		before, line = data[:0], data
	} else {
		i := bytes.Index(data, newlineMarker)
		if i < 0 {
			return data, nil, nil
		}
		before, line = data[:i+1], data[i+1:]
	}
	if j := bytes.IndexByte(line, '\n'); j >= 0 {
		line, after = line[:j], line[j+1:]
	}
	// Tolerate a CRLF line ending on the delimiter line itself.
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	if len(line) < len(marker)+len(markerEnd) || !bytes.HasSuffix(line, markerEnd) {
		// Unterminated marker; treat the rest of the input as literal text.
		return data, nil, nil
	}
	return before, line[len(marker) : len(line)-len(markerEnd)], after
}
