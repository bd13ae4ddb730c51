package libdiff

import (
	"strings"
)

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// PointerAppend appends the reference token tok to the JSON pointer path.
func PointerAppend(path, tok string) string {
	return path + "/" + pointerEscaper.Replace(tok)
}
