// Package utils contains small helper functions used across the project.
//
// These are generic helpers that don't belong to a specific domain.
package utils

import (
	"encoding/json"
	"fmt"
)

// PrintJSON pretty-prints any Go value as indented JSON to stdout.
//
// Useful for debugging structs and resolved configuration. If the value
// contains unsupported types (channels, funcs, circular refs),
// json.MarshalIndent returns an error.
func PrintJSON(v interface{}) {
	out, err := json.MarshalIndent(v, "", "	")
	if err != nil {
		fmt.Println("Error marshalling the JSON:", err)
		return
	}

	fmt.Println(string(out))
}
