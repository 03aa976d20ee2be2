package toml

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	profilesKey  = "profiles"
	sessDataKey  = "sessdata"
	sessDataAlt  = "SESSDATA"
	biliJctKey   = "bili_jct"
	updatedAtKey = "updated_at"
)

var (
	errProfilesNotTable = errors.New("profiles must be a table")
	bareKeyPattern      = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

type fileSchema struct {
	Profiles map[string]profileSchema
}

// profileSchema keeps the known fields typed and carries everything else
// in Extra so unknown keys survive a rewrite.
type profileSchema struct {
	SessData  string
	BiliJct   *string
	UpdatedAt *string
	Extra     map[string]any
}

func decodeFile(data []byte) (fileSchema, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fileSchema{}, fmt.Errorf("decode credential store: %w", err)
	}

	file := fileSchema{Profiles: map[string]profileSchema{}}
	rawProfiles, ok := raw[profilesKey]
	if !ok {
		return file, nil
	}
	tables, ok := rawProfiles.(map[string]any)
	if !ok {
		return fileSchema{}, errProfilesNotTable
	}

	for name, value := range tables {
		table, ok := value.(map[string]any)
		if !ok {
			return fileSchema{}, fmt.Errorf("profile %q must be a table", name)
		}
		profile, err := decodeProfile(table)
		if err != nil {
			return fileSchema{}, fmt.Errorf("profile %q: %w", name, err)
		}
		file.Profiles[name] = profile
	}

	return file, nil
}

func decodeProfile(table map[string]any) (profileSchema, error) {
	profile := profileSchema{Extra: map[string]any{}}

	rawSess, ok := table[sessDataKey]
	if !ok {
		rawSess, ok = table[sessDataAlt]
	}
	if !ok {
		return profileSchema{}, errors.New("sessdata is required")
	}
	sessData, ok := rawSess.(string)
	if !ok {
		return profileSchema{}, errors.New("sessdata must be a string")
	}
	profile.SessData = sessData

	var err error
	if profile.BiliJct, err = optionalString(table, biliJctKey); err != nil {
		return profileSchema{}, err
	}
	if profile.UpdatedAt, err = optionalString(table, updatedAtKey); err != nil {
		return profileSchema{}, err
	}

	for key, value := range table {
		switch key {
		case sessDataKey, sessDataAlt, biliJctKey, updatedAtKey:
			continue
		}
		profile.Extra[key] = value
	}

	return profile, nil
}

func optionalString(table map[string]any, key string) (*string, error) {
	value, ok := table[key]
	if !ok {
		return nil, nil
	}
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%s must be a string", key)
	}
	return &s, nil
}

// encodeFile writes one [profiles.<name>] block per profile, sorted by name.
// Known string fields come first; extras follow in key order.
func encodeFile(file fileSchema) ([]byte, []string) {
	var dropped []string
	names := make([]string, 0, len(file.Profiles))
	for name := range file.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)

	blocks := make([]string, 0, len(names))
	for _, name := range names {
		profile := file.Profiles[name]

		lines := []string{fmt.Sprintf("[%s.%s]", profilesKey, formatKey(name))}
		lines = append(lines, stringLine(sessDataKey, profile.SessData))
		if profile.BiliJct != nil {
			lines = append(lines, stringLine(biliJctKey, *profile.BiliJct))
		}
		if profile.UpdatedAt != nil {
			lines = append(lines, stringLine(updatedAtKey, *profile.UpdatedAt))
		}

		extraKeys := make([]string, 0, len(profile.Extra))
		for key := range profile.Extra {
			extraKeys = append(extraKeys, key)
		}
		slices.Sort(extraKeys)

		for _, key := range extraKeys {
			line, err := extraLine(key, profile.Extra[key])
			if err != nil {
				dropped = append(dropped, name+"."+key)
				continue
			}
			lines = append(lines, line)
		}

		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return []byte(strings.Join(blocks, "\n\n") + "\n"), dropped
}

func stringLine(key, value string) string {
	return fmt.Sprintf(`%s = "%s"`, formatKey(key), escapeBasicString(value))
}

func extraLine(key string, value any) (string, error) {
	if s, ok := value.(string); ok {
		return stringLine(key, s), nil
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetTablesInline(true)
	if err := enc.Encode(map[string]any{key: value}); err != nil {
		return "", err
	}

	line := strings.TrimRight(buf.String(), "\n")
	if line == "" || strings.Contains(line, "\n") {
		return "", fmt.Errorf("value for %q does not fit on one line", key)
	}
	return line, nil
}

func formatKey(key string) string {
	if bareKeyPattern.MatchString(key) {
		return key
	}
	return `"` + escapeBasicString(key) + `"`
}

// escapeBasicString escapes a value for a TOML basic string.
func escapeBasicString(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
