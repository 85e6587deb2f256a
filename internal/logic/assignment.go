package logic

import (
	"fmt"
	"strings"
)

// ParseAssignment reads the textual form "A=true,B=F,C=1". Values accept
// true/false, T/F and 1/0, case-insensitively.
func ParseAssignment(raw string) (Assignment, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Assignment{}, nil
	}

	parts := strings.Split(raw, ",")
	out := make(Assignment, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid assignment %q (expected name=value)", part)
		}

		name := strings.TrimSpace(kv[0])
		if name == "" {
			return nil, fmt.Errorf("empty name in assignment %q", part)
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("variable %q assigned twice", name)
		}

		v, err := parseTruth(kv[1])
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", name, err)
		}
		out[name] = v
	}

	return out, nil
}

func parseTruth(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1":
		return true, nil
	case "false", "f", "0":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a truth value", s)
}
