// FILE: memlog/src/internal/format/json.go
package format

import (
	"encoding/json"
	"strings"

	"memlog/src/internal/core"

	"github.com/davecgh/go-spew/spew"
)

// Used for structured values encoding/json rejects (channels, funcs, cycles)
var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func renderMessage(m core.Message) string {
	if m.IsText() {
		return m.String()
	}
	return prettyPrint(m.Value())
}

// prettyPrint renders v as indented JSON, falling back to a spew dump
func prettyPrint(v any) string {
	result, err := json.MarshalIndent(v, "", "  ")
	if err == nil {
		return string(result)
	}
	return strings.TrimSuffix(spewConfig.Sdump(v), "\n")
}
