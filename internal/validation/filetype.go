// Package validation holds domain-level input validation rules.
package validation

import "strings"

// allowedFileTypes is the fixed set of file types a resource may declare.
var allowedFileTypes = map[string]struct{}{
	"pdf": {}, "txt": {}, "jpg": {}, "jpeg": {}, "png": {}, "gif": {},
	"doc": {}, "docx": {}, "ppt": {}, "pptx": {}, "csv": {}, "json": {},
	"xml": {}, "mp4": {}, "mp3": {}, "zip": {}, "tar": {}, "7z": {},
	"md": {}, "html": {}, "css": {}, "js": {}, "ts": {}, "tsx": {},
	"jsx": {}, "py": {}, "java": {}, "c": {}, "cpp": {}, "rb": {},
	"php": {}, "go": {}, "rs": {}, "sql": {}, "yaml": {}, "yml": {},
	"ini": {}, "log": {}, "other": {},
}

// IsValidFileType reports whether fileType is allowed. Matching is case-insensitive.
func IsValidFileType(fileType string) bool {
	_, ok := allowedFileTypes[strings.ToLower(fileType)]

	return ok
}
