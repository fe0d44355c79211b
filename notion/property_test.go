package notion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }

func TestExtractTextTypes(t *testing.T) {
	title := &Property{Type: "title", Title: []RichText{{PlainText: "서버"}, {PlainText: " #1"}}}
	assert.Equal(t, "서버 #1", Extract(title))

	rich := &Property{Type: "rich_text", RichText: []RichText{{PlainText: "비고 "}, {PlainText: "내용"}}}
	assert.Equal(t, "비고 내용", Extract(rich))

	// No runs at all still yields an empty string, not nil.
	assert.Equal(t, "", Extract(&Property{Type: "title"}))
}

func TestExtractScalars(t *testing.T) {
	assert.Equal(t, 1500000.0, Extract(&Property{Type: "number", Number: floatPtr(1500000)}))
	assert.Nil(t, Extract(&Property{Type: "number"}))

	assert.Equal(t, true, Extract(&Property{Type: "checkbox", Checkbox: boolPtr(true)}))
	assert.Nil(t, Extract(&Property{Type: "checkbox"}))

	assert.Equal(t, "https://example.com", Extract(&Property{Type: "url", URL: strPtr("https://example.com")}))
	assert.Equal(t, "ops@asan.go.kr", Extract(&Property{Type: "email", Email: strPtr("ops@asan.go.kr")}))
	assert.Equal(t, "041-000-0000", Extract(&Property{Type: "phone_number", PhoneNumber: strPtr("041-000-0000")}))
	assert.Nil(t, Extract(&Property{Type: "url"}))
}

func TestExtractSelects(t *testing.T) {
	assert.Equal(t, "네트워크", Extract(&Property{Type: "select", Select: &SelectOption{Name: "네트워크"}}))
	assert.Nil(t, Extract(&Property{Type: "select"}))

	assert.Equal(t, "운영중", Extract(&Property{Type: "status", Status: &SelectOption{Name: "운영중"}}))
	assert.Nil(t, Extract(&Property{Type: "status"}))

	multi := &Property{Type: "multi_select", MultiSelect: []SelectOption{{Name: "긴급"}, {Name: "교체대상"}}}
	assert.Equal(t, []string{"긴급", "교체대상"}, Extract(multi))
	assert.Equal(t, []string{}, Extract(&Property{Type: "multi_select"}))
}

func TestExtractDateKeepsStartOnly(t *testing.T) {
	p := &Property{Type: "date", Date: &DateValue{Start: "2026-03-01", End: "2026-06-30"}}
	assert.Equal(t, "2026-03-01", Extract(p))
	assert.Nil(t, Extract(&Property{Type: "date"}))
}

func TestExtractFormula(t *testing.T) {
	num := &Property{Type: "formula", Formula: &Formula{Type: "number", Number: floatPtr(42)}}
	assert.Equal(t, 42.0, Extract(num))

	str := &Property{Type: "formula", Formula: &Formula{Type: "string", String: strPtr("A동-3층")}}
	assert.Equal(t, "A동-3층", Extract(str))

	date := &Property{Type: "formula", Formula: &Formula{Type: "date", Date: &DateValue{Start: "2026-01-15"}}}
	assert.Equal(t, "2026-01-15", Extract(date))

	assert.Nil(t, Extract(&Property{Type: "formula"}))
}

func TestExtractRelation(t *testing.T) {
	p := &Property{Type: "relation", Relation: []Relation{{ID: "abc"}, {ID: "def"}}}
	assert.Equal(t, []string{"abc", "def"}, Extract(p))
	assert.Equal(t, []string{}, Extract(&Property{Type: "relation"}))
}

func TestExtractRollup(t *testing.T) {
	num := &Property{Type: "rollup", Rollup: &Rollup{Type: "number", Number: floatPtr(7)}}
	assert.Equal(t, 7.0, Extract(num))

	arr := &Property{Type: "rollup", Rollup: &Rollup{
		Type: "array",
		Array: []Property{
			{Type: "number", Number: floatPtr(1)},
			{Type: "select", Select: &SelectOption{Name: "x"}},
		},
	}}
	assert.Equal(t, []interface{}{1.0, "x"}, Extract(arr))

	assert.Nil(t, Extract(&Property{Type: "rollup"}))
}

func TestExtractFilesPreferInternalUpload(t *testing.T) {
	p := &Property{Type: "files", Files: []File{
		{File: &FileRef{URL: "https://s3.notion.example/a.pdf"}},
		{External: &FileRef{URL: "https://vendor.example/manual.pdf"}},
		{File: &FileRef{URL: "internal"}, External: &FileRef{URL: "external"}},
	}}
	assert.Equal(t, []string{
		"https://s3.notion.example/a.pdf",
		"https://vendor.example/manual.pdf",
		"internal",
	}, Extract(p))
}

func TestExtractUsers(t *testing.T) {
	named := &Property{Type: "created_by", CreatedBy: &UserRef{ID: "u1", Name: "Danny"}}
	assert.Equal(t, "Danny", Extract(named))

	anonymous := &Property{Type: "last_edited_by", LastEditedBy: &UserRef{ID: "u2"}}
	assert.Equal(t, "u2", Extract(anonymous))
}

func TestExtractUnknownTypeDegradesToNil(t *testing.T) {
	assert.Nil(t, Extract(&Property{Type: "verification"}))
	assert.Nil(t, Extract(&Property{Type: ""}))
	assert.Nil(t, Extract(nil))
}

// Extraction over a raw API payload, exercising the JSON tags end to end.
func TestExtractFromRawJSON(t *testing.T) {
	raw := `{
		"type": "multi_select",
		"multi_select": [{"name": "IoT"}, {"name": "센서"}]
	}`
	var p Property
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	assert.Equal(t, []string{"IoT", "센서"}, Extract(&p))
}
