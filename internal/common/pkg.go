package common

import (
	"path"
	"strings"

	"bitenum-generator/utils"
)

// PkgAlias returns the identifier a package is referred to by when imported
// without a name: the last path element, skipping a major version suffix
// ("example.com/arbint/v2" -> "arbint"). Returns empty string if pkgPath is
// empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	base := path.Base(pkgPath)
	if v, ok := strings.CutPrefix(base, "v"); ok && utils.IsDecimal(v) && path.Dir(pkgPath) != "." {
		base = path.Base(path.Dir(pkgPath))
	}

	return base
}
