package constants

import (
	"fmt"
	"strings"
)

// ContentSource memilih asal data materi & dokumentasi.
type ContentSource string

const (
	// SourceRemote: data dari backend (tabel materials / documentation_assets), diakses via id.
	SourceRemote ContentSource = "remote"
	// SourceStatic: data placeholder hardcoded, diakses via slug.
	SourceStatic ContentSource = "static"
)

func ParseContentSource(s string) (ContentSource, error) {
	switch ContentSource(strings.ToLower(strings.TrimSpace(s))) {
	case SourceRemote:
		return SourceRemote, nil
	case SourceStatic:
		return SourceStatic, nil
	}
	return "", fmt.Errorf("%w: content source %q", ErrUnknownValue, s)
}
