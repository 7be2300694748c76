// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package schedule

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Title(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		found bool
	}{
		{"exact heading", "HORARIO DE CLASES", true},
		{"extra internal whitespace", "HORARIO   DE    CLASES", true},
		{"newline between words", "HORARIO\nDE\tCLASES", true},
		{"non-breaking spaces", "HORARIO\u00a0DE\u00a0CLASES", true},
		{"case insensitive", "Horario de Clases", true},
		{"missing space", "Horario Declases", false},
		{"absent", "Calendario academico", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Parse(tt.text)
			if !tt.found {
				assert.Nil(t, info.Title)
				return
			}
			require.NotNil(t, info.Title)
			assert.Equal(t, "Horario de Clases", *info.Title)
		})
	}
}

func TestParse_Period(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string // "" means unset
	}{
		{"standard", "Periodo 2024-1 something", "2024-1"},
		{"multiple whitespace", "Periodo \n 2023-2", "2023-2"},
		{"non-breaking space", "Periodo\u00a02024-2", "2024-2"},
		{"vertical tab", "Periodo\v2024-1", "2024-1"},
		{"first occurrence wins", "Periodo 2022-1 Periodo 2023-2", "2022-1"},
		{"two digit year", "Periodo 24-1", ""},
		{"case sensitive keyword", "PERIODO 2024-1", ""},
		{"no whitespace", "Periodo2024-1", ""},
		{"only first suffix digit", "Periodo 2024-12", "2024-1"},
		{"absent", "HORARIO DE CLASES", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := Parse(tt.text)
			if tt.want == "" {
				assert.Nil(t, info.Period)
				return
			}
			require.NotNil(t, info.Period)
			assert.Equal(t, tt.want, *info.Period)
		})
	}
}

func TestParse_Courses(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "one course per line",
			text: "CALCULO DIFERENCIAL\nALGEBRA LINEAL\n",
			want: []string{"CALCULO DIFERENCIAL\nALGEBRA LINEAL"},
		},
		{
			name: "runs separated by lowercase",
			text: "CALCULO DIFERENCIAL lunes ALGEBRA LINEAL martes",
			want: []string{"CALCULO DIFERENCIAL", "ALGEBRA LINEAL"},
		},
		{
			name: "roman numeral suffix",
			text: "PROGRAMACION II aula 3",
			want: []string{"PROGRAMACION II"},
		},
		{
			name: "accented letters",
			text: "FÍSICA MECÁNICA y DISEÑO GRÁFICO",
			want: []string{"FÍSICA MECÁNICA", "DISEÑO GRÁFICO"},
		},
		{
			name: "short runs dropped",
			text: "ABC y QUIMICA y FISICA y ABCDE",
			want: []string{"QUIMICA", "FISICA"},
		},
		{
			name: "duplicates dropped in first-seen order",
			text: "ALGEBRA LINEAL x QUIMICA x ALGEBRA LINEAL x QUIMICA",
			want: []string{"ALGEBRA LINEAL", "QUIMICA"},
		},
		{
			name: "heading words excluded",
			text: "HORARIO DE CLASES x PERIODO ACADEMICO x BIOLOGIA",
			want: []string{"BIOLOGIA"},
		},
		{
			name: "unicode separators inside a name",
			text: "ALGEBRA\u00a0LINEAL lunes ESTRUCTURAS\u2003DE\vDATOS martes",
			want: []string{"ALGEBRA\u00a0LINEAL", "ESTRUCTURAS\u2003DE\vDATOS"},
		},
		{
			name: "unicode separators trimmed",
			text: "x QUIMICA\u00a0\u00a0 y",
			want: []string{"QUIMICA"},
		},
		{
			name: "no uppercase",
			text: "sin materias",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.text).Courses)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	info := Parse("")
	assert.Nil(t, info.Title)
	assert.Nil(t, info.Period)
	assert.NotNil(t, info.Courses)
	assert.Empty(t, info.Courses)
}

func TestParse_Pure(t *testing.T) {
	text := "HORARIO DE CLASES\nPeriodo 2024-1\nCALCULO lunes ALGEBRA LINEAL martes PROGRAMACION II"
	assert.Equal(t, Parse(text), Parse(text))
}

func TestParse_CourseInvariants(t *testing.T) {
	text := strings.Join([]string{
		"HORARIO DE CLASES",
		"Periodo 2024-1",
		"LUNES  CALCULO DIFERENCIAL  08:00",
		"MARTES ALGEBRA LINEAL 10:00",
		"MIERCOLES CALCULO DIFERENCIAL 08:00",
		"JUEVES PROGRAMACION II 14:00",
		"VIERNES INGLES III 16:00",
		"AB CD EF",
	}, "\n")

	courses := Parse(text).Courses
	require.NotEmpty(t, courses)

	seen := make(map[string]bool)
	for _, c := range courses {
		assert.Greater(t, utf8.RuneCountInString(c), 5, c)
		assert.NotContains(t, c, "HORARIO")
		assert.NotContains(t, c, "PERIODO")
		assert.Equal(t, strings.TrimSpace(c), c)
		assert.False(t, seen[c], "duplicate course %q", c)
		seen[c] = true
	}
}
