// Package output holds the generated-file records produced by tool
// generators and writes them to disk.
package output

// Tool identifies the consumer a generated file is meant for.
type Tool string

// ToolCursor is the Cursor editor.
const ToolCursor Tool = "cursor"

// KnownTools lists the tools rulesync can generate for.
func KnownTools() []Tool {
	return []Tool{ToolCursor}
}

// IsKnown reports whether t is a supported tool.
func (t Tool) IsKnown() bool {
	for _, known := range KnownTools() {
		if t == known {
			return true
		}
	}
	return false
}

// Record is one file to be written by the caller.
type Record struct {
	Tool     Tool   `json:"tool"`
	Filepath string `json:"filepath"`
	Content  string `json:"content"`
}
