package scanner

import (
	"archive/zip"
	"bytes"
	"io"
	"regexp"
)

// corePropsPath is the fixed location of the core document properties
// inside an xlsx container.
const corePropsPath = "docProps/core.xml"

// A deliberate pattern match rather than an XML parse: the single field
// is read best-effort and a malformed document must never surface an
// error.
var lastModifiedByPattern = regexp.MustCompile(`(?s)<cp:lastModifiedBy>(.*?)</cp:lastModifiedBy>`)

// lastModifiedBy extracts the document author from xlsx file bytes.
// Every failure (not a zip, core.xml missing, element absent) yields
// the empty string.
func lastModifiedBy(data []byte) string {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	for _, f := range zr.File {
		if f.Name != corePropsPath {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return ""
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return ""
		}
		if m := lastModifiedByPattern.FindSubmatch(content); m != nil {
			return string(m[1])
		}
		return ""
	}
	return ""
}
