package txtar

const (
	MARKER         = "-- "
	MARKER_END     = " --"
	NEWLINE_MARKER = "\n-- "
)

// An Archive is the parsed form of a txtar file: a free-form comment
// followed by an ordered sequence of files. The comment and every file's
// data are newline-normalized when the Archive is built and are never
// modified afterwards.
type Archive struct {
	comment []byte
	files   []File
}

// A File is a single file entry in an Archive.
type File struct {
	name string
	data []byte
}

// NewFile returns a File with the given name and contents. The contents are
// newline-normalized; the name is stored as-is and is only validated when
// the archive is materialized.
func NewFile(name, data string) File {
	return File{name: name, data: fixNewline([]byte(data))}
}

// Name returns the file's name as it appeared between the markers of its
// delimiter line.
func (f File) Name() string { return f.name }

// Data returns the file's contents. Non-empty contents always end in a
// newline.
func (f File) Data() []byte { return f.data }

// New builds an Archive from an explicit comment and file list. The comment
// is newline-normalized; files are stored in the order given.
func New(comment string, files ...File) *Archive {
	return &Archive{
		comment: fixNewline([]byte(comment)),
		files:   files,
	}
}

// Comment returns the text that appeared before the first delimiter line.
func (a *Archive) Comment() []byte { return a.comment }

// Files returns the archive's files in the order they appeared in the
// source text.
func (a *Archive) Files() []File { return a.files }

// fixNewline appends a '\n' to data if it is non-empty and does not already
// end with one. The returned slice aliases data unless a newline had to be
// appended; empty segments stay empty.
func fixNewline(data []byte) []byte {
	if len(data) == 0 || data[len(data)-1] == '\n' {
		return data
	}
	d := make([]byte, len(data)+1)
	copy(d, data)
	d[len(data)] = '\n'
	return d
}
