package stringify

import (
	"strings"

	"github.com/kr/text"
)

// IndentationSize is the amount of spaces that nested fields are indented with.
const IndentationSize = 4

// Struct renders a struct with the given name and fields in a human readable multi-line format.
func Struct(name string, fields ...*StructField) string {
	result := name + " {\n"

	for _, field := range fields {
		result += text.Indent(field.String()+"\n", strings.Repeat(" ", IndentationSize))
	}

	return result + "}"
}
