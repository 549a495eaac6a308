package report

import "github.com/tidwall/gjson"

// Query path-queries a previously built report, returning the raw matched
// text and whether anything matched. Used by `cmd/constfold run --query`
// to let callers pull out a single class's folded value without parsing
// the whole report themselves.
func Query(data []byte, path string) (string, bool) {
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}
