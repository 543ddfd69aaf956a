package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// FileSet owns every loaded file. Adding the same path again creates a new
// version; old FileIDs stay valid. Concurrent reads are safe once loading
// is finished.
type FileSet struct {
	files   []File
	latest  map[string]FileID
	baseDir string
}

func NewFileSet() *FileSet {
	return &FileSet{latest: make(map[string]FileID)}
}

// SetBaseDir sets the directory relative paths are reported against.
func (fileSet *FileSet) SetBaseDir(dir string) {
	fileSet.baseDir = dir
}

// BaseDir returns the configured base directory, or the working directory.
func (fileSet *FileSet) BaseDir() string {
	if fileSet.baseDir != "" {
		return fileSet.baseDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// Add stores content under path and returns its new FileID. Content must
// already be BOM-free with CRLF normalised; Load does that.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("source %s too large: %w", path, err))
	}
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("file set overflow: %w", err))
	}
	if !norm.NFC.IsNormal(content) {
		flags |= FileNotNFC
	}
	id := FileID(n)
	clean := normalizePath(path)
	fileSet.files = append(fileSet.files, File{
		ID:      id,
		Path:    clean,
		Content: content,
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	})
	fileSet.latest[clean] = id
	return id
}

// Load reads path, strips a UTF-8 BOM, normalises CRLF and adds the file.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	var flags FileFlags
	content, bom := removeBOM(content)
	if bom {
		flags |= FileHadBOM
	}
	content, crlf := normalizeCRLF(content)
	if crlf {
		flags |= FileNormalizedCRLF
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content such as stdin or test input.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file for id, which must come from this set.
func (fileSet *FileSet) Get(id FileID) *File {
	return &fileSet.files[id]
}

func (fileSet *FileSet) Len() int {
	return len(fileSet.files)
}

// GetLatest returns the newest version of path.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	id, ok := fileSet.latest[normalizePath(path)]
	return id, ok
}

// Resolve converts both ends of span to line and column.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	idx := fileSet.files[span.File].LineIdx
	return toLineCol(idx, span.Start), toLineCol(idx, span.End)
}

// GetLine returns line lineNum (1-based) without its terminator, or "" when
// the file has no such line.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 || int(lineNum) > len(f.LineIdx)+1 {
		return ""
	}
	start := 0
	if lineNum > 1 {
		start = int(f.LineIdx[lineNum-2]) + 1
	}
	end := len(f.Content)
	if int(lineNum) <= len(f.LineIdx) {
		end = int(f.LineIdx[lineNum-1])
	}
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// FormatPath renders f.Path for diagnostics. mode is one of absolute,
// relative (to baseDir), basename or auto; auto shortens long absolute
// paths to their base name.
func (f *File) FormatPath(mode, baseDir string) string {
	switch mode {
	case "absolute":
		abs, err := filepath.Abs(f.Path)
		if err != nil {
			return f.Path
		}
		return filepath.ToSlash(abs)
	case "relative":
		if baseDir == "" {
			baseDir, _ = os.Getwd()
		}
		return relativePath(f.Path, baseDir)
	case "basename":
		return filepath.Base(f.Path)
	case "auto":
		if filepath.IsAbs(f.Path) && len(f.Path) >= 40 {
			return filepath.Base(f.Path)
		}
		return f.Path
	default:
		return f.Path
	}
}
