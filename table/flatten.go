package table

import (
	"regexp"
	"strings"
)

var capitalRuns = regexp.MustCompile("([A-Z]+)")

// FlattenColumnName collapses a nested metadata key path to a flat snake_case
// column name: the last dot segment with capital runs underscored, e.g.
// "umm.CollectionReference.ShortName" becomes "short_name" and "GranuleUR"
// becomes "granule_ur".
func FlattenColumnName(path string) string {
	segments := strings.Split(path, ".")
	name := segments[len(segments)-1]
	name = capitalRuns.ReplaceAllString(name, "_$1")
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, "-", "_")
	return strings.TrimPrefix(name, "_")
}
