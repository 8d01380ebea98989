package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gotriangle/triparse/ast"
)

// mustParse is shared with print_test.go, which declares it.

func TestDumpProducesOneIndentedLinePerNode(t *testing.T) {
	program := mustParse(t, "let var n: Integer in n := 1 + 2")
	out := ast.Dump(program)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Equal(t, "Program", firstWord(lines[0]))
	assert.Contains(t, out, "LetCommand")
	assert.Contains(t, out, "VarDeclaration n")
	assert.Contains(t, out, "AssignCommand")
	assert.Contains(t, out, "BinaryExpression +")
	assert.Contains(t, out, "IntegerExpression 1")
	assert.Contains(t, out, "IntegerExpression 2")

	// deeper nodes carry more leading indentation than their parents
	var programIndent, assignIndent int
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		indent := len(line) - len(trimmed)
		if strings.HasPrefix(trimmed, "Program") {
			programIndent = indent
		}
		if strings.HasPrefix(trimmed, "AssignCommand") {
			assignIndent = indent
		}
	}
	assert.Greater(t, assignIndent, programIndent)
}

func TestDumpCoversCaseCommandArmsAndElse(t *testing.T) {
	program := mustParse(t, "case x of 1: a:=a; 2: b:=b; else: c:=c")
	out := ast.Dump(program)
	assert.Contains(t, out, "CaseCommand arms=2")
	assert.Contains(t, out, "arm 1")
	assert.Contains(t, out, "arm 2")
	assert.Contains(t, out, "else")
}

func TestFdumpWritesToProvidedWriter(t *testing.T) {
	program := mustParse(t, "")
	var buf strings.Builder
	err := ast.Fdump(&buf, program)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "EmptyCommand")
}

func firstWord(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
