package genai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON finds the first complete JSON object in a model response
// (between the first '{' and the last '}') and verifies it parses. Models
// often wrap output in prose or markdown fences; this strips both.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}

	jsonStr := s[start : end+1]
	if !json.Valid([]byte(jsonStr)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}

	return jsonStr, nil
}

// ExtractJSONArray is the array counterpart of ExtractJSON, for responses
// whose top-level value is a list.
func ExtractJSONArray(s string) (string, error) {
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON array found in response")
	}

	jsonStr := s[start : end+1]
	if !json.Valid([]byte(jsonStr)) {
		return "", fmt.Errorf("response does not contain a valid JSON array")
	}

	return jsonStr, nil
}
