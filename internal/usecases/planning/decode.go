package planning

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errNotAnObject = errors.New("response is not a single JSON object")

// DecodeObject decodifica a resposta do modelo em out. A resposta precisa ser
// um único objeto JSON, opcionalmente dentro de um bloco ``` de markdown, e
// conter todas as chaves em required com valor não nulo.
func DecodeObject(raw string, out any, required ...string) error {
	text := stripFence(strings.TrimSpace(raw))
	if !strings.HasPrefix(text, "{") || !strings.HasSuffix(text, "}") {
		return errNotAnObject
	}

	var fields map[string]jsoniter.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return err
	}

	var missing []string
	for _, key := range required {
		v, ok := fields[key]
		if !ok || isNull(v) {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing keys: %s", strings.Join(missing, ", "))
	}

	return json.Unmarshal([]byte(text), out)
}

// isNull cobre os dois formatos: o jsoniter entrega null como RawMessage vazio.
func isNull(v jsoniter.RawMessage) bool {
	trimmed := bytes.TrimSpace(v)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if i := strings.Index(text, "\n"); i >= 0 {
		// descarta a linguagem declarada, ex.: ```json
		text = text[i+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
