package axisfile

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob expands each argument into definition files. Arguments containing
// glob syntax are matched with doublestar (so "plans/**/*.yaml" recurses);
// plain paths are passed through. The result is sorted and de-duplicated.
func Glob(args ...string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, filepath.Clean(arg))
			continue
		}

		if !doublestar.ValidatePattern(filepath.ToSlash(arg)) {
			return nil, fmt.Errorf("invalid pattern %q", arg)
		}
		matches, err := doublestar.FilepathGlob(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		for _, m := range matches {
			if _, err := FormatFromPath(m); err == nil {
				files = append(files, m)
			}
		}
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}
