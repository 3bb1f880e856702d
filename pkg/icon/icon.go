// Package icon normalizes raw asset paths into relative icon names.
package icon

import (
	"strings"
)

// Prefix is the root of all UI assets.
const Prefix = "/Game/Assets/2DArt/UI/"

// HasPrefix returns true if the path points into the UI asset tree.
// Paths outside of it are skipped by callers before normalization.
func HasPrefix(path string) bool {
	return strings.HasPrefix(path, Prefix)
}

// Process converts
// "/Game/Assets/2DArt/UI/Items/ITEM_Stick.ITEM_Stick" to
// "Items/ITEM_Stick".
func Process(path string) (string, error) {
	rel := strings.TrimPrefix(path, Prefix)

	slash := strings.LastIndexByte(rel, '/')
	if slash == -1 {
		return "", FormatError(path, "icon is not a path")
	}

	parts := strings.Split(rel[slash+1:], ".")
	if len(parts) != 2 {
		return "", FormatError(path, "basename is not split by a dot")
	}

	if parts[0] != parts[1] {
		return "", FormatError(path, "basename is not symmetrical")
	}

	return rel[:slash] + "/" + parts[0], nil
}
