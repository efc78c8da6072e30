package json

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// GJsonParserWrapper pulls values out of raw response bodies without decoding the whole document into structs
type GJsonParserWrapper struct{}

// NewJsonParserWrapper is a factory method
func NewJsonParserWrapper() *GJsonParserWrapper {
	return &GJsonParserWrapper{}
}

// GetValue returns the decoded value at path, or the whole document when path is empty.
// Objects decode to map[string]interface{}, arrays to []interface{} and numbers to float64, the same as encoding/json.
func (j GJsonParserWrapper) GetValue(json []byte, path string) (interface{}, error) {
	if !gjson.ValidBytes(json) {
		return nil, fmt.Errorf("json parser wrapper error: invalid json %s", json)
	}

	if path == "" {
		return gjson.ParseBytes(json).Value(), nil
	}

	value := gjson.GetBytes(json, path)
	if !value.Exists() {
		return nil, fmt.Errorf("json parser wrapper error: could not find json for path %s in %s", path, json)
	}
	return value.Value(), nil
}
