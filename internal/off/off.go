// Package off reads and writes the polyname header line of OFF geometry
// files. Only the header is interpreted; the geometry body passes through
// untouched.
package off

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/polytopia/polyname/internal/config"
	"github.com/polytopia/polyname/internal/name"
)

// ReadName reads the stored name of a geometry file. When the file has no
// header line for the regime R, or the stored text no longer parses, the
// result is (nil, label): a missing or stale name is never a hard failure,
// the file is simply labeled by its filename. The error is non-nil only
// for I/O problems.
func ReadName[R name.Regime](path string) (name.Name[R], string, error) {
	label := Label(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	line, _, _ := strings.Cut(string(data), "\n")
	n, ok := decodeHeader[R](line)
	if !ok {
		return nil, label, nil
	}
	return n, label, nil
}

// WriteName sets the header line of a geometry file to the given name,
// replacing an existing header and preserving the rest of the file. A
// missing file is created with just the header.
func WriteName[R name.Regime](path string, n name.Name[R]) error {
	var body string
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		body = string(data)
		if first, rest, found := strings.Cut(body, "\n"); found && isHeader(first) {
			body = rest
		} else if !found && isHeader(body) {
			body = ""
		}
	case os.IsNotExist(err):
		body = ""
	default:
		return err
	}
	return os.WriteFile(path, []byte(EncodeHeader(n)+"\n"+body), 0o644)
}

// EncodeHeader renders the header line for a name, regime tag included.
func EncodeHeader[R name.Regime](n name.Name[R]) string {
	return fmt.Sprintf("%s %s %s", config.HeaderMarker, name.Tag[R](), name.Print(n))
}

func isHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), config.HeaderMarker)
}

// decodeHeader parses a header line for the regime R. Any mismatch, a
// foreign regime tag included, reads as "no stored name".
func decodeHeader[R name.Regime](line string) (name.Name[R], bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(line), config.HeaderMarker)
	if !found {
		return nil, false
	}
	fields := strings.Fields(rest)
	if len(fields) != 2 || fields[0] != name.Tag[R]() {
		return nil, false
	}
	n, err := name.Parse[R](fields[1])
	if err != nil {
		return nil, false
	}
	return n, true
}

// Label derives a display label from a file path: the base name without
// its extension, word separators normalized to spaces.
func Label(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return base
}
