package handlers

import (
	"encoding/json"
	"strings"
)

// decodeLooseJSON unmarshals raw into v. If the whole text is not valid JSON
// it retries on the substring between the first '{' and the last '}', which
// recovers payloads the model wrapped in prose or code fences. Reports whether
// a decode succeeded; callers fall back to keyword heuristics when it did not.
func decodeLooseJSON(raw string, v any) bool {
	if json.Unmarshal([]byte(raw), v) == nil {
		return true
	}
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return false
	}
	return json.Unmarshal([]byte(raw[start:end+1]), v) == nil
}
