package models

import (
	"encoding/json"
	"fmt"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"
)

// DynamicFieldType selects which payload a DynamicField carries.
type DynamicFieldType string

const (
	DynamicFieldText  DynamicFieldType = "text"
	DynamicFieldTable DynamicFieldType = "table"
	DynamicFieldJSON  DynamicFieldType = "json"
)

var DynamicFieldTypes = []DynamicFieldType{DynamicFieldText, DynamicFieldTable, DynamicFieldJSON}

// DynamicContent is the payload of a DynamicField. Exactly one of
// TextContent, TableContent or JSONContent.
type DynamicContent interface {
	Type() DynamicFieldType
	isDynamicContent()
}

type TextContent struct {
	Value string
}

type TableContent struct {
	Columns []string
	Rows    [][]string
}

type JSONContent struct {
	Value jsonvalue.Value
}

func (TextContent) Type() DynamicFieldType  { return DynamicFieldText }
func (TableContent) Type() DynamicFieldType { return DynamicFieldTable }
func (JSONContent) Type() DynamicFieldType  { return DynamicFieldJSON }

func (TextContent) isDynamicContent()  {}
func (TableContent) isDynamicContent() {}
func (JSONContent) isDynamicContent()  {}

// DynamicField is an admin-authored content block attached to an entity.
type DynamicField struct {
	Label   string
	Content DynamicContent
}

type dynamicFieldWire struct {
	Label   string           `json:"label"`
	Type    DynamicFieldType `json:"type"`
	Value   *jsonvalue.Value `json:"value,omitempty"`
	Columns []string         `json:"columns,omitempty"`
	Rows    [][]string       `json:"rows,omitempty"`
}

// MarshalJSON flattens the variant into {label, type, value|columns+rows}.
func (f DynamicField) MarshalJSON() ([]byte, error) {
	switch c := f.Content.(type) {
	case TextContent:
		v := jsonvalue.String(c.Value)
		return json.Marshal(dynamicFieldWire{Label: f.Label, Type: DynamicFieldText, Value: &v})
	case JSONContent:
		v := c.Value
		return json.Marshal(dynamicFieldWire{Label: f.Label, Type: DynamicFieldJSON, Value: &v})
	case TableContent:
		// columns and rows are always emitted, even when empty.
		columns := c.Columns
		if columns == nil {
			columns = []string{}
		}
		rows := c.Rows
		if rows == nil {
			rows = [][]string{}
		}
		return json.Marshal(struct {
			Label   string           `json:"label"`
			Type    DynamicFieldType `json:"type"`
			Columns []string         `json:"columns"`
			Rows    [][]string       `json:"rows"`
		}{f.Label, DynamicFieldTable, columns, rows})
	default:
		return nil, fmt.Errorf("dynamic field %q: unknown content %T", f.Label, f.Content)
	}
}

// UnmarshalJSON decodes a stored dynamic field. It trusts its input: callers
// holding untrusted data go through the validator instead.
func (f *DynamicField) UnmarshalJSON(data []byte) error {
	var w dynamicFieldWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	f.Label = w.Label
	switch w.Type {
	case DynamicFieldText:
		var s string
		if w.Value != nil {
			s, _ = w.Value.StringValue()
		}
		f.Content = TextContent{Value: s}
	case DynamicFieldTable:
		f.Content = TableContent{Columns: w.Columns, Rows: w.Rows}
	case DynamicFieldJSON:
		var v jsonvalue.Value
		if w.Value != nil {
			v = *w.Value
		}
		f.Content = JSONContent{Value: v}
	default:
		return fmt.Errorf("dynamic field %q: unknown type %q", w.Label, w.Type)
	}
	return nil
}
