// File: pkg/combine/text.go
package combine

import "unicode/utf8"

// isTextContent reports whether data can go into the combined artifact.
// UTF-8 validity is the whole test: a file that fails it is omitted from
// the output without failing the run.
func isTextContent(data []byte) bool {
	return utf8.Valid(data)
}
