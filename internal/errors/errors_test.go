package errors

import (
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeOK, CodeOf(nil))
	assert.Equal(t, CodeDivByZero, CodeOf(New(CodeDivByZero, "divisor is zero")))
	assert.Equal(t, CodeSemantic, CodeOf(fmt.Errorf("running main: %w", New(CodeSemantic, "missing main"))))
	assert.Equal(t, CodeInternal, CodeOf(fmt.Errorf("plain failure")))
}

func TestCodeOfWrapped(t *testing.T) {
	err := pkgerrors.Wrap(New(CodeCompatibility, "bad assignment"), "interpreting script")
	assert.Equal(t, CodeCompatibility, CodeOf(err))
}

func TestErrorMessage(t *testing.T) {
	err := Newf(CodeUninitialized, "variable %q read before assignment", "x")
	assert.Equal(t, `uninitialized identifier: variable "x" read before assignment`, err.Error())
}

func TestExitCodes(t *testing.T) {
	codes := map[Code]int{
		CodeOK: 0, CodeLex: 1, CodeSyntax: 2, CodeSemantic: 3,
		CodeCompatibility: 4, CodeSemanticOther: 5, CodeNumberInput: 6,
		CodeUninitialized: 7, CodeDivByZero: 8, CodeRuntimeOther: 9,
		CodeInternal: 99,
	}
	for code, want := range codes {
		assert.Equal(t, want, int(code))
	}
}
