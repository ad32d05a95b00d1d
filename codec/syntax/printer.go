package syntax

import (
	"fmt"
	"strings"
)

// WriteText appends the text-format rendering of e to sb, per the
// line-oriented, whitespace-tolerant grammar: "name: value" for fields,
// `name: "HH HH ..."` for payloads, and "name {" / "}" blocks for nodes,
// indented one tab per nesting level.
func WriteText(sb *strings.Builder, e Element, depth int) {
	indent := strings.Repeat("\t", depth)
	switch v := e.(type) {
	case *Field:
		fmt.Fprintf(sb, "%s%s: %d\n", indent, v.Name, v.Value)
	case *Payload:
		fmt.Fprintf(sb, "%s%s: \"%s\"\n", indent, v.Name, hexBytes(v.Data))
	case *Node:
		fmt.Fprintf(sb, "%s%s {\n", indent, v.Name)
		for _, child := range v.Children {
			WriteText(sb, child, depth+1)
		}
		fmt.Fprintf(sb, "%s}\n", indent)
	default:
		panic("syntax: unknown element type")
	}
}

func hexBytes(data []byte) string {
	parts := make([]string, len(data))
	for i, b := range data {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, " ")
}

// Text renders e as a standalone text-format string.
func Text(e Element) string {
	var sb strings.Builder
	WriteText(&sb, e, 0)
	return sb.String()
}

// ForestText renders an ordered forest of elements (typically the "nalu"
// roots returned by Parse) concatenated in order, exactly as the printer
// would for each root in turn.
func ForestText(forest []Element) string {
	var sb strings.Builder
	for _, e := range forest {
		WriteText(&sb, e, 0)
	}
	return sb.String()
}
