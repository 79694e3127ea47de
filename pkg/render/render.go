package render

import (
	"strconv"
	"strings"
)

// Separators used between rendered elements.
const (
	ArrowSep       = " -> "
	DoubleArrowSep = " <-> "
	Terminator     = "null"
)

// Sequence renders values left to right as "label: v1 -> v2 -> null".
// The output is meant for display only.
func Sequence(label, sep string, values []int32) string {
	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString(": ")
	for _, v := range values {
		sb.WriteString(strconv.FormatInt(int64(v), 10))
		sb.WriteString(sep)
	}
	sb.WriteString(Terminator)
	return sb.String()
}
