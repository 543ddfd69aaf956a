package source

// FileID indexes a File inside its FileSet.
type FileID uint32

// FileFlags records how a file's bytes were obtained and normalised.
type FileFlags uint8

const (
	FileVirtual FileFlags = 1 << iota // added from memory, not read from disk
	FileHadBOM
	FileNormalizedCRLF
	// FileNotNFC marks content outside Unicode normalization form C. Names
	// are ASCII, so only string literals can be affected.
	FileNotNFC
)

// File is one immutable version of a source document.
type File struct {
	ID      FileID
	Path    string // slash-separated, cleaned
	Content []byte
	LineIdx []uint32 // offsets of line terminators
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a 1-based line and byte column.
type LineCol struct {
	Line uint32
	Col  uint32
}
