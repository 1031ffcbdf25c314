package enum

import (
	"strings"

	types "extrato-gateway/internal/common/type"
)

type FileTypeEnum string

const (
	PDF FileTypeEnum = "pdf"
)

func (e FileTypeEnum) ToString() string {
	switch e {
	case PDF:
		return "pdf"
	default:
		return ""
	}
}

func (e FileTypeEnum) IsValid() bool {
	switch e {
	case PDF:
		return true
	}

	return false
}

func (e FileTypeEnum) Extension() string {
	if e.IsValid() {
		return "." + e.ToString()
	}
	return ""
}

// IsValidPDF only looks at the file name; content sniffing is left to the parsing backend.
func (e FileTypeEnum) IsValidPDF(file *types.BufferedFile) bool {
	if e != PDF {
		return false
	}
	return strings.HasSuffix(strings.ToLower(file.OriginalName), e.Extension())
}
