package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa in com indentação. Erros de serialização viram string vazia.
func PrettyJson(in any) string {
	if raw, ok := in.([]byte); ok {
		var v any
		if err := json.Unmarshal(raw, &v); err != nil {
			return string(raw)
		}
		in = v
	}

	out, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return ""
	}

	return string(out)
}
