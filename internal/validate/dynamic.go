package validate

import (
	"fmt"
	"strings"

	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/coerce"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/jsonvalue"
	"github.com/AnkushSonak/platforms-admin-dashboard-sub001/pkg/models"
)

var dynamicFieldKeys = map[string]bool{
	"label":   true,
	"type":    true,
	"value":   true,
	"columns": true,
	"rows":    true,
}

// payloadKeys lists, per type, the payload keys that may carry a value.
// The remaining payload keys must be absent or null.
var payloadKeys = map[models.DynamicFieldType][]string{
	models.DynamicFieldText:  {"value"},
	models.DynamicFieldTable: {"columns", "rows"},
	models.DynamicFieldJSON:  {"value"},
}

var dynamicTypeValue = enum(models.DynamicFieldTypes)

// decodeDynamicField validates one tagged dynamic field. The label and type
// are checked first; the type then selects which payload keys are required
// and which are forbidden.
func decodeDynamicField(p Path, raw any, mode Mode, r *Report) (models.DynamicField, bool) {
	var field models.DynamicField
	obj, ok := asObject(raw)
	if !ok {
		r.add(p, CodeInvalidType, "expected dynamic field object, got "+coerce.TypeName(raw))
		return field, false
	}
	before := r.len()

	if v, ok := obj.lookup("label"); !ok || isNull(v) {
		r.add(p.Key("label"), CodeMissingRequired, "is required")
	} else if label, ok := titleValue(p.Key("label"), v, mode, r); ok {
		field.Label = label
	}

	var typ models.DynamicFieldType
	typeOK := false
	if v, ok := obj.lookup("type"); !ok || isNull(v) {
		r.add(p.Key("type"), CodeMissingRequired, "is required")
	} else {
		typ, typeOK = dynamicTypeValue(p.Key("type"), v, mode, r)
	}

	for _, k := range obj.keys() {
		if !dynamicFieldKeys[k] {
			r.add(p.Key(k), CodeUnknownField, fmt.Sprintf("unknown field %q", k))
		}
	}

	if !typeOK {
		return field, false
	}

	forbidOtherPayloads(obj, typ, p, r)

	switch typ {
	case models.DynamicFieldText:
		if text, ok := decodeTextPayload(obj, p, r); ok {
			field.Content = models.TextContent{Value: text}
		}
	case models.DynamicFieldTable:
		if table, ok := decodeTablePayload(obj, p, r); ok {
			field.Content = table
		}
	case models.DynamicFieldJSON:
		v, present := obj.lookup("value")
		if !present {
			r.add(p.Key("value"), CodeInvalidDynamicShape, shapeMsg(typ, "value is required"))
		} else if tree, err := jsonvalue.FromAny(v); err != nil {
			r.add(p.Key("value"), CodeInvalidDynamicShape, shapeMsg(typ, err.Error()))
		} else {
			field.Content = models.JSONContent{Value: tree}
		}
	}

	return field, r.len() == before
}

func shapeMsg(typ models.DynamicFieldType, msg string) string {
	return fmt.Sprintf("%s when type is %q", msg, typ)
}

func forbidOtherPayloads(obj object, typ models.DynamicFieldType, p Path, r *Report) {
	allowed := payloadKeys[typ]
	for _, k := range []string{"value", "columns", "rows"} {
		if contains(allowed, k) {
			continue
		}
		if v, ok := obj.lookup(k); ok && !isNull(v) {
			r.add(p.Key(k), CodeInvalidDynamicShape, shapeMsg(typ, k+" is not allowed"))
		}
	}
}

func decodeTextPayload(obj object, p Path, r *Report) (string, bool) {
	vp := p.Key("value")
	v, ok := obj.lookup("value")
	if !ok || isNull(v) {
		r.add(vp, CodeInvalidDynamicShape, shapeMsg(models.DynamicFieldText, "value is required"))
		return "", false
	}

	var text string
	tree, err := jsonvalue.FromAny(v)
	if err == nil {
		if str, ok := tree.StringValue(); ok {
			text = str
		} else if num, ok := tree.NumberValue(); ok {
			text = num.String()
		} else {
			err = fmt.Errorf("got %s", tree.Kind())
		}
	}
	if err != nil {
		r.add(vp, CodeInvalidDynamicShape,
			shapeMsg(models.DynamicFieldText, "value must be a string, got "+coerce.TypeName(v)))
		return "", false
	}
	if strings.TrimSpace(text) == "" {
		r.add(vp, CodeInvalidDynamicShape, shapeMsg(models.DynamicFieldText, "value must not be empty"))
		return "", false
	}
	return text, true
}

func decodeTablePayload(obj object, p Path, r *Report) (models.TableContent, bool) {
	const typ = models.DynamicFieldTable
	var table models.TableContent
	ok := true

	columns, columnsOK := stringList(obj, "columns", p, r)
	if columnsOK {
		table.Columns = columns
	} else {
		ok = false
	}

	rp := p.Key("rows")
	rawRows, present := obj.lookup("rows")
	if !present || isNull(rawRows) {
		r.add(rp, CodeInvalidDynamicShape, shapeMsg(typ, "rows is required"))
		return table, false
	}
	items, isArray := asArray(rawRows)
	if !isArray {
		r.add(rp, CodeInvalidDynamicShape, shapeMsg(typ, "rows must be an array of string arrays"))
		return table, false
	}

	table.Rows = make([][]string, 0, len(items))
	for i, item := range items {
		row, rowOK := stringCells(rp.Index(i), item, r)
		if !rowOK {
			ok = false
			continue
		}
		if columnsOK && len(row) != len(columns) {
			r.add(rp.Index(i), CodeInvalidDynamicShape,
				shapeMsg(typ, fmt.Sprintf("row has %d cells but there are %d columns", len(row), len(columns))))
			ok = false
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, ok
}

func stringList(obj object, key string, p Path, r *Report) ([]string, bool) {
	kp := p.Key(key)
	raw, present := obj.lookup(key)
	if !present || isNull(raw) {
		r.add(kp, CodeInvalidDynamicShape, shapeMsg(models.DynamicFieldTable, key+" is required"))
		return nil, false
	}
	return stringCells(kp, raw, r)
}

// stringCells reads an array whose elements must all be strings.
func stringCells(p Path, raw any, r *Report) ([]string, bool) {
	items, ok := asArray(raw)
	if !ok {
		r.add(p, CodeInvalidDynamicShape,
			shapeMsg(models.DynamicFieldTable, "expected array of strings, got "+coerce.TypeName(raw)))
		return nil, false
	}
	out := make([]string, 0, len(items))
	valid := true
	for i, item := range items {
		s, err := coerce.String(item)
		if err != nil {
			r.add(p.Index(i), CodeInvalidDynamicShape, shapeMsg(models.DynamicFieldTable, "cell must be a string, got "+coerce.TypeName(item)))
			valid = false
			continue
		}
		out = append(out, s)
	}
	return out, valid
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

var dynamicFieldsValue = arrayOf(converter[models.DynamicField](decodeDynamicField))
