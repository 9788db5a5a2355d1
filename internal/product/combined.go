package product

import "fmt"

// BuildCombinedText composes extracted visual features and the raw product
// description into the single string that is both embedded at index time and
// used as the query text at retrieval time. The two paths must produce
// byte-identical output for identical inputs, so both call this function.
func BuildCombinedText(features, description string) string {
	return fmt.Sprintf("Features: %s\nDescription: %s", features, description)
}
