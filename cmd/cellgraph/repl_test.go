package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestREPL_setGetPrint(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"set A1 2",
		"set A2 3",
		"set B1 =A1+A2",
		"get B1",
		"print values",
		"clear A1",
		"print values",
		"quit",
	}, "\n") + "\n")

	var out bytes.Buffer
	require.NoError(t, runREPL(in, &out, ""))

	got := out.String()
	assert.Contains(t, got, `B1: text="=A1+A2" value="5"`)
	assert.Contains(t, got, "2\t5\n3\t\n")
	assert.Contains(t, got, "\t3\n3\t\n")
}

func TestREPL_rejectsCircularDependency(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"set A1 =A2",
		"set A2 =A1",
		"quit",
	}, "\n") + "\n")

	var out bytes.Buffer
	require.NoError(t, runREPL(in, &out, ""))
	assert.Contains(t, out.String(), "error:")
}
