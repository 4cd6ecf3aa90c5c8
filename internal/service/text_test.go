package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{in: "Adiós", want: "adios"},
		{in: "  Cerrar   SESIÓN ", want: "cerrar sesion"},
		{in: "Málaga\tés", want: "malaga es"},
		{in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, foldText(tt.in))
		})
	}
}

func TestExtractDigits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "4821", extractDigits("my code is 4-8-2-1."))
	assert.Equal(t, "", extractDigits("no digits"))
	assert.Equal(t, "12", extractDigits("١٢٣ 1 then 2"))
}

func TestKeywordSet(t *testing.T) {
	t.Parallel()
	set := newKeywordSet([]string{"cancel", "adiós", "log out", " "})

	assert.Len(t, set, 3)
	assert.True(t, set.matches(foldText("Please CANCEL that")))
	assert.True(t, set.matches(foldText("ok, adios")))
	assert.True(t, set.matches(foldText("I want to log   out now")))
	assert.False(t, set.matches(foldText("blue")))
}

func TestFirstLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "What is it?", firstLine("\n  What is it?\nextra"))
	assert.Equal(t, "", firstLine("  \n \n"))
}
