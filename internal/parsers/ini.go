package parsers

import (
	"strings"

	"github.com/SH118415/insights-core/internal/core"
)

// Section is the key/value mapping of one bracketed section.
type Section map[string]string

// Get returns the value recorded for key. The second return value is
// false when the key was never set in this section.
func (s Section) Get(key string) (string, bool) {
	value, ok := s[key]
	return value, ok
}

// IniConfigFile is the parsed form of an INI-style system configuration
// file: section name -> key -> value. It is built once from raw content
// and never mutated afterwards, so it is safe to share between
// goroutines.
//
// The dialect is the one used by files like /etc/autofs.conf:
//
//   - lines whose first non-whitespace character is '#' are comments
//   - section headers are bracketed, with arbitrary interior
//     whitespace: "[ autofs ]" and "[autofs]" both name "autofs"
//   - data lines are "key = value", split at the first '='; keys and
//     values are stored trimmed, values always as strings
//
// Parsing is permissive: malformed lines and data lines appearing
// before any section header are dropped silently. Real-world config
// files carry stray lines, and dropping them beats refusing the whole
// file.
type IniConfigFile struct {
	sections map[string]Section
	order    []string
}

// ParseIni parses raw configuration text. It is total: every input,
// including the empty string, yields a usable IniConfigFile.
//
// Duplicate keys within a section resolve last-write-wins. A section
// header seen twice reuses the first Section, so keys accumulate
// across non-contiguous blocks of the same name.
func ParseIni(ctx core.Context) *IniConfigFile {
	cfg := &IniConfigFile{sections: make(map[string]Section)}

	var current Section
	for _, line := range ctx.Lines() {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			section, seen := cfg.sections[name]
			if !seen {
				section = make(Section)
				cfg.sections[name] = section
				cfg.order = append(cfg.order, name)
			}
			current = section
			continue
		}
		if current == nil {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" || strings.Contains(key, "#") {
			continue
		}
		current[key] = strings.TrimSpace(value)
	}

	return cfg
}

// Get returns the named section, or false when no section of that name
// appeared in the input. Missing configuration is an expected outcome,
// not an error.
func (c *IniConfigFile) Get(name string) (Section, bool) {
	section, ok := c.sections[name]
	return section, ok
}

// GetKey looks up a single value. It is exactly the composition of Get
// and Section.Get: absent section or absent key both report false.
func (c *IniConfigFile) GetKey(section, key string) (string, bool) {
	s, ok := c.Get(section)
	if !ok {
		return "", false
	}
	return s.Get(key)
}

// Sections returns the section names in the order their headers first
// appeared.
func (c *IniConfigFile) Sections() []string {
	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}
