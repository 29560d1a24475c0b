package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PrettyJson formata o valor como JSON indentado para logs de debug.
// Aceita tanto structs quanto payloads brutos em []byte.
func PrettyJson(in any) string {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			fmt.Println(err)
		}
	}

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "\t"); err != nil {
		fmt.Println(err)
	}

	return out.String()
}
