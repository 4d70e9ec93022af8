package utils

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Indentação da saída formatada. O json-iterator só aceita espaços.
const prettyIndent = "  "

// PrettyJson serializa o valor com indentação. Em caso de erro retorna string vazia.
func PrettyJson(in any) string {
	buffer, err := json.MarshalIndent(in, "", prettyIndent)
	if err != nil {
		fmt.Println(err)
		return ""
	}

	return string(buffer)
}
