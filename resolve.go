package zodresolve

import (
	"github.com/maastrich/zod-resolve/i18n"
)

// Resolve flattens root and returns the schema stored at path, failing with
// path_not_found when the path is absent. It performs no caching across
// calls; callers issuing many lookups against one root should Flatten once
// and query the map themselves.
func Resolve(root Schema, path string) (Schema, error) {
	fm, err := Flatten(root)
	if err != nil {
		return nil, err
	}
	s, ok := fm.Get(path)
	if !ok {
		return nil, Issues{Issue{Path: path, Code: CodePathNotFound, Message: i18n.T(CodePathNotFound, nil)}}
	}
	return s, nil
}
