package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"branchgen/internal/diagnostic"
)

func validTable(t *testing.T) *File {
	t.Helper()

	f, err := Parse([]byte(methodsYAML))
	require.NoError(t, err)

	return f
}

func codes(ds []diagnostic.Diagnostic) []string {
	var out []string
	for _, d := range ds {
		out = append(out, d.Code)
	}

	return out
}

func TestValidate_Valid(t *testing.T) {
	res := Validate(validTable(t))

	assert.True(t, res.IsValid(), res.Error())
	assert.Empty(t, res.Warnings)

	// HEAD is a prefix of HEADER.
	require.Len(t, res.Infos, 1)
	assert.Equal(t, "prefix_literal", res.Infos[0].Code)
	assert.Equal(t, `"HEAD" is a prefix of "HEADER"`, res.Infos[0].Message)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	assert.Equal(t, []string{"table_is_nil"}, codes(res.Errors))
}

func TestValidate_Header(t *testing.T) {
	f := validTable(t)
	f.Package = "http-method"
	f.Matcher.Name = ""
	f.Matcher.Results = ""
	f.Output = "method.txt"

	res := Validate(f)
	assert.Equal(t, []string{"invalid_package", "missing_matcher_name", "missing_results"}, codes(res.Errors))
	assert.Equal(t, []string{"output_not_go"}, codes(res.Warnings))
}

func TestValidate_Embedding(t *testing.T) {
	f := validTable(t)
	f.Embedding.Read = ""
	f.Embedding.MaxLen = ""
	f.Embedding.Valid = "isTokenByte(b)"
	f.Embedding.Unknown = "Extension, {}, {} != \"\""

	res := Validate(f)
	require.Len(t, res.Errors, 3)
	assert.Equal(t, "embedding.read", res.Errors[0].Field)
	assert.Equal(t, "embedding.max_len", res.Errors[1].Field)
	assert.Equal(t, "missing_placeholder", res.Errors[2].Code)
	assert.Equal(t, "embedding.valid", res.Errors[2].Field)

	assert.Equal(t, []string{"multiple_placeholders"}, codes(res.Warnings))
}

func TestValidate_Literals(t *testing.T) {
	f := validTable(t)
	f.Literals = append(f.Literals,
		Literal{Key: StringOrArray{"PUT"}},
		Literal{Value: "Nothing"},
		Literal{Key: StringOrArray{""}, Value: "Empty"},
	)

	res := Validate(f)
	assert.Equal(t, []string{"missing_value", "missing_key"}, codes(res.Errors))
	assert.Equal(t, "literals[2].value", res.Errors[0].Field)
	assert.Equal(t, "PUT", res.Errors[0].Literal)
	assert.Equal(t, []string{"empty_key"}, codes(res.Warnings))
}

func TestValidate_EmptyTable(t *testing.T) {
	f := validTable(t)
	f.Literals = nil

	res := Validate(f)
	assert.True(t, res.IsValid())
	assert.Equal(t, []string{"empty_table"}, codes(res.Warnings))
}

func TestValidate_DuplicateKeys(t *testing.T) {
	tests := []struct {
		name          string
		caseSensitive bool
		keys          []string
		wantErrors    int
		wantMessage   string
	}{
		{
			name:          "exact",
			caseSensitive: true,
			keys:          []string{"GET", "GET"},
			wantErrors:    1,
			wantMessage:   "duplicate literal key",
		},
		{
			name:          "folded",
			caseSensitive: false,
			keys:          []string{"Host", "HOST", "host"},
			wantErrors:    2,
			wantMessage:   `literal key collides with "Host" after case folding`,
		},
		{
			name:          "distinct when sensitive",
			caseSensitive: true,
			keys:          []string{"Host", "HOST"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validTable(t)
			f.CaseSensitive = &tt.caseSensitive
			f.Literals = nil

			for _, k := range tt.keys {
				f.Literals = append(f.Literals, Literal{Key: StringOrArray{k}, Value: "V"})
			}

			res := Validate(f)
			require.Len(t, res.Errors, tt.wantErrors)

			for _, e := range res.Errors {
				assert.Equal(t, "duplicate_key", e.Code)
				assert.Equal(t, tt.wantMessage, e.Message)
			}
		})
	}
}

func TestValidate_TerminatorInKey(t *testing.T) {
	tests := []struct {
		name          string
		terminator    string
		caseSensitive bool
		key           string
		want          bool
	}{
		{"space inside key", "' '", true, "A B", true},
		{"escaped terminator", `'\n'`, true, "A\nB", true},
		{"folded letter", "'x'", false, "BOX", true},
		{"letter case differs", "'x'", true, "BOX", false},
		{"not in key", "' '", true, "AB", false},
		{"not a rune literal", "sep", true, "A B", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validTable(t)
			f.CaseSensitive = &tt.caseSensitive
			f.Embedding.Terminator = tt.terminator
			f.Literals = []Literal{{Key: StringOrArray{tt.key}, Value: "V"}}

			res := Validate(f)
			require.True(t, res.IsValid(), res.Error())

			if tt.want {
				assert.Equal(t, []string{"terminator_in_key"}, codes(res.Warnings))
				assert.Equal(t, tt.key, res.Warnings[0].Literal)
				assert.Equal(t, "literals[0].key", res.Warnings[0].Field)
			} else {
				assert.Empty(t, res.Warnings)
			}
		})
	}
}
