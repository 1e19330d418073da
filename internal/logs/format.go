package logs

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// reserved keys are rendered in the line prefix rather than as key=value pairs.
var reserved = map[string]struct{}{
	"ts":        {},
	"level":     {},
	"msg":       {},
	"component": {},
	"source":    {},
}

// FormatLine renders a JSON log record as "ts LEVEL component: msg k=v ...".
// Lines that are not JSON objects are returned unchanged.
func FormatLine(line string) string {
	var record map[string]any
	if err := json.Unmarshal([]byte(line), &record); err != nil {
		return line
	}

	var b strings.Builder
	if ts, ok := record["ts"].(string); ok {
		b.WriteString(ts)
		b.WriteByte(' ')
	}
	if level, ok := record["level"].(string); ok {
		b.WriteString(strings.ToUpper(level))
		b.WriteByte(' ')
	}
	if component, ok := record["component"].(string); ok && component != "" {
		b.WriteString(component)
		b.WriteString(": ")
	}
	if msg, ok := record["msg"].(string); ok {
		b.WriteString(msg)
	}

	keys := make([]string, 0, len(record))
	for key := range record {
		if _, skip := reserved[key]; skip {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&b, " %s=%s", key, formatField(record[key]))
	}
	return b.String()
}

func formatField(value any) string {
	switch v := value.(type) {
	case string:
		if v == "" || strings.ContainsAny(v, " =\"") {
			return fmt.Sprintf("%q", v)
		}
		return v
	case nil:
		return "null"
	case map[string]any, []any:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}
