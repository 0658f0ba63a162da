package grid_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/grid"
)

// TestParse_Valid covers plain, CRLF and trailing-blank-line inputs.
func TestParse_Valid(t *testing.T) {
	want := [][]int{{2, 4, 1}, {3, 2, 1}}
	inputs := map[string]string{
		"LF":            "241\n321",
		"TrailingLF":    "241\n321\n",
		"CRLF":          "241\r\n321\r\n",
		"TrailingBlank": "241\n321\n\n\n",
		"LeadingBlank":  "\n241\n321\n",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			g, err := grid.ParseString(in)
			require.NoError(t, err)
			if diff := cmp.Diff(want, g.Rows()); diff != "" {
				t.Errorf("Rows() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestParse_Errors covers the malformed inputs rejected at construction time.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
		msg  string
	}{
		{"Empty", "", grid.ErrEmptyGrid, ""},
		{"OnlyBlank", "\n\n", grid.ErrEmptyGrid, ""},
		{"Ragged", "123\n12\n", grid.ErrNonRectangular, "row 1"},
		{"InnerBlank", "12\n\n34\n", grid.ErrNonRectangular, "blank line at line 2 before line 3"},
		{"InnerBlanks", "12\n\r\n\n34\n", grid.ErrNonRectangular, "blank line at line 2 before line 4"},
		{"Letter", "12\n3x\n", grid.ErrDigitRange, "line 2 column 2"},
		{"Space", "1 2\n", grid.ErrDigitRange, "column 2"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.Parse(strings.NewReader(tc.in))
			require.ErrorIs(t, err, tc.err)
			if tc.msg != "" {
				require.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}
