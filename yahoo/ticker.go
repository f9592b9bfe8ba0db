package yahoo

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// exchangeSuffix maps the single-letter exchange code a broker appends to a
// bare instrument name ("VODl") onto the Yahoo exchange suffix.
var exchangeSuffix = map[string]string{
	"a": "AS", // Amsterdam
	"d": "DE", // Xetra
	"e": "MC", // Madrid
	"p": "PA", // Paris
	"l": "L",  // London
	"s": "SW", // Swiss
	"m": "MI", // Milan
}

// countrySuffix maps the broker's country segment ("RYA_IE_EQ" style) onto
// the Yahoo exchange suffix. US instruments carry no suffix at all.
var countrySuffix = map[string]string{
	"PT": "LS", // Lisbon
	"AT": "VI", // Vienna
	"BE": "BR", // Brussels
	"CA": "TO", // Toronto
}

// NormalizeTicker converts a broker instrument code ("AAPL_US_EQ", "VODl_EQ")
// into a Yahoo symbol ("AAPL", "VOD.L"). User overrides win over the
// built-in mapping. Anything without the broker's "_EQ" marker is assumed to
// already be a Yahoo symbol and passes through unchanged.
func NormalizeTicker(broker string, overrides Overrides) (string, error) {
	if symbol, ok := overrides[broker]; ok {
		return symbol, nil
	}

	pos := strings.LastIndex(broker, "_EQ")
	if pos < 0 {
		return broker, nil
	}

	parts := strings.Split(broker[:pos], "_")
	switch len(parts) {
	case 1:
		name := parts[0]
		if len(name) < 2 {
			return "", fmt.Errorf("instrument code %q too short", broker)
		}
		code := name[len(name)-1:]
		suffix, ok := exchangeSuffix[code]
		if !ok {
			return "", fmt.Errorf("unknown exchange code %q in %q", code, broker)
		}
		return name[:len(name)-1] + "." + suffix, nil

	case 2:
		if parts[1] == "US" {
			return parts[0], nil
		}
		suffix, ok := countrySuffix[parts[1]]
		if !ok {
			return "", fmt.Errorf("unknown country code %q in %q", parts[1], broker)
		}
		return parts[0] + "." + suffix, nil

	default:
		return "", fmt.Errorf("unrecognized instrument code %q", broker)
	}
}

// Overrides maps broker instrument codes onto user-chosen Yahoo symbols, for
// the instruments the built-in mapping gets wrong (delisted lines, brokers
// quoting a Milan ETF that only trades in Frankfurt).
type Overrides map[string]string

// LoadOverrides reads the override map from a JSON file. A missing or empty
// file is an empty map, not an error.
func LoadOverrides(path string) (Overrides, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Overrides{}, nil
		}
		return nil, err
	}
	out := Overrides{}
	if len(content) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(content, &out); err != nil {
		return nil, fmt.Errorf("reading ticker overrides %s: %w", path, err)
	}
	return out, nil
}

// Save writes the override map back to its JSON file.
func (o Overrides) Save(path string) error {
	content, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}
