package ioload

import (
	"encoding/json"
	"maps"

	"github.com/gnames/gnfmt"
	"github.com/tidwall/gjson"
)

// document is the envelope of a raw table export.
type document struct {
	RowStruct string                       `json:"RowStruct"`
	Defaults  map[string]json.RawMessage   `json:"Defaults"`
	Rows      []map[string]json.RawMessage `json:"Rows"`
}

// decodeRows checks the envelope and decodes every row over the
// document defaults. Fields present in a row replace default fields
// as a whole.
func decodeRows[T any](path string, data []byte) ([]T, error) {
	if !gjson.ValidBytes(data) {
		return nil, TableDecodeError(path, errInvalidJSON)
	}
	if !gjson.GetBytes(data, "RowStruct").Exists() {
		return nil, TableRowStructError(path, "RowStruct")
	}
	if !gjson.GetBytes(data, "Rows").IsArray() {
		return nil, TableRowStructError(path, "Rows")
	}

	enc := gnfmt.GNjson{}
	var doc document
	if err := enc.Decode(data, &doc); err != nil {
		return nil, TableDecodeError(path, err)
	}

	res := make([]T, 0, len(doc.Rows))
	for _, v := range doc.Rows {
		fields := make(map[string]json.RawMessage, len(doc.Defaults)+len(v))
		maps.Copy(fields, doc.Defaults)
		maps.Copy(fields, v)

		merged, err := enc.Encode(fields)
		if err != nil {
			return nil, TableDecodeError(path, err)
		}
		var row T
		if err = enc.Decode(merged, &row); err != nil {
			return nil, TableDecodeError(path, err)
		}
		res = append(res, row)
	}
	return res, nil
}
