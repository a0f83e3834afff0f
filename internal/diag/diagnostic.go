package diag

import (
	"fmt"
	"strings"

	"github.com/jtlang/juicec/internal/source"
)

// Severity distinguishes errors, which abort the pipeline before the next
// stage, from warnings, which are reported but never gate a stage.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is a single entry in the engine's log: a kind, an ID naming the
// template, a source range, and the arguments to render into that template.
type Diagnostic struct {
	Severity Severity
	ID       ID
	Range    source.Range
	Args     []interface{}
}

// Message renders the diagnostic's template against its arguments.
func (d Diagnostic) Message() string {
	tmpl, ok := templates[d.ID]
	if !ok {
		return "unknown diagnostic"
	}
	return fmt.Sprintf(tmpl, d.Args...)
}

// Format renders the diagnostic the way the teacher's CompilerError does:
// a file:line:col header, the quoted source line, and a caret, optionally
// in color for TTY output.
func (d Diagnostic) Format(buf *source.Buffer, color bool) string {
	var sb strings.Builder

	line, col := buf.LineCol(d.Range.Start)
	fmt.Fprintf(&sb, "%s:%d:%d: %s: %s\n", buf.Name(), line, col, d.Severity, d.Message())

	text := buf.LineText(line)
	if text != "" {
		prefix := fmt.Sprintf("%4d | ", line)
		sb.WriteString(prefix)
		sb.WriteString(text)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(prefix)+col-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
