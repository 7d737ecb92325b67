// Package logger is a thin structured-logging helper over the standard
// log package: a level prefix, a message, and JSON-encoded fields.
// Values under credential-like keys are masked before encoding.
package logger

import (
	"encoding/json"
	"log"
	"strings"
)

type Fields map[string]any

var sensitiveKeys = map[string]struct{}{
	"password": {},
	"pin":      {},
	"secret":   {},
	"token":    {},
}

func Info(message string, fields Fields) {
	log.Printf("INFO %s %s", message, fieldsJSON(fields))
}

func Error(message string, err error, fields Fields) {
	merged := Fields{}
	for key, value := range fields {
		merged[key] = value
	}
	if err != nil {
		merged["error"] = err.Error()
	}

	log.Printf("ERROR %s %s", message, fieldsJSON(merged))
}

// Sanitize returns a copy of fields with sensitive values masked.
func Sanitize(fields Fields) Fields {
	out := make(Fields, len(fields))
	for key, value := range fields {
		if isSensitiveKey(key) {
			out[key] = "******"
			continue
		}
		if nested, ok := value.(Fields); ok {
			out[key] = Sanitize(nested)
			continue
		}
		out[key] = value
	}

	return out
}

func fieldsJSON(fields Fields) string {
	if fields == nil {
		fields = Fields{}
	}

	b, err := json.Marshal(Sanitize(fields))
	if err != nil {
		return `{}`
	}

	return string(b)
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "_", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
