package walker

import (
	"path/filepath"
	"strings"
)

// Asset kinds reported by DetectKind.
const (
	KindImage    = "image"
	KindStyle    = "style"
	KindScript   = "script"
	KindFont     = "font"
	KindDocument = "document"
	KindData     = "data"
	KindOther    = "other"
)

// extensionToKind maps file extensions to asset kinds.
var extensionToKind = map[string]string{
	".png":  KindImage,
	".jpg":  KindImage,
	".jpeg": KindImage,
	".gif":  KindImage,
	".webp": KindImage,
	".avif": KindImage,
	".svg":  KindImage,
	".ico":  KindImage,

	".css": KindStyle,

	".js":   KindScript,
	".mjs":  KindScript,
	".wasm": KindScript,

	".woff":  KindFont,
	".woff2": KindFont,
	".ttf":   KindFont,
	".otf":   KindFont,

	".html": KindDocument,
	".htm":  KindDocument,
	".pdf":  KindDocument,
	".txt":  KindDocument,
	".md":   KindDocument,

	".json":  KindData,
	".jsonc": KindData,
	".xml":   KindData,
	".csv":   KindData,
}

// DetectKind returns the asset kind of a file based on its extension.
func DetectKind(filename string) string {
	if kind, ok := extensionToKind[strings.ToLower(filepath.Ext(filename))]; ok {
		return kind
	}
	return KindOther
}
