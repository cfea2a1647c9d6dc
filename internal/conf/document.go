package conf

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rabbitconf/rabbitconf/internal/conf/pattern"
)

// File is a parsed cuttlefish configuration file. It preserves the
// original line sequence for lossless rendering and keeps an index from
// key to line position for lookups. On duplicate keys the index points at
// the last occurrence; earlier lines stay in the sequence untouched.
type File struct {
	lines []line
	index map[string]int
}

// Setting is one key/value pair reported by a query.
type Setting struct {
	Key   string
	Value string
}

// New returns an empty configuration.
func New() *File {
	return &File{index: make(map[string]int)}
}

// Parse builds a File from configuration text. Lines are classified in
// order; the first malformed line aborts the whole parse with a
// *ParseError and no partial document is returned.
func Parse(text string) (*File, error) {
	f := New()

	rows := strings.Split(text, "\n")
	if rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	for i, row := range rows {
		ln, err := parseLine(strings.TrimSuffix(row, "\r"), i+1)
		if err != nil {
			return nil, err
		}
		if ln.kind == kindSetting {
			f.index[ln.key] = len(f.lines)
		}
		f.lines = append(f.lines, ln)
	}
	return f, nil
}

// Get returns the value stored under key.
func (f *File) Get(key string) (string, bool) {
	idx, ok := f.index[key]
	if !ok {
		return "", false
	}
	ln := f.lines[idx]
	if ln.kind != kindSetting {
		return "", false
	}
	return ln.value, true
}

// GetInt returns the value under key parsed as a base-10 integer. Absent
// keys and unparseable values report ok == false, never an error.
func (f *File) GetInt(key string) (int64, bool) {
	v, ok := f.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// GetBool returns the value under key interpreted through the cuttlefish
// boolean vocabulary: "true", "on", "yes", "1" are true; "false", "off",
// "no", "0" are false. The match is case-sensitive; any other value
// reports ok == false.
func (f *File) GetBool(key string) (bool, bool) {
	v, ok := f.Get(key)
	if !ok {
		return false, false
	}
	return parseBool(v)
}

// GetFloat returns the value under key parsed as a float.
func (f *File) GetFloat(key string) (float64, bool) {
	v, ok := f.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ContainsKey reports whether key is present.
func (f *File) ContainsKey(key string) bool {
	_, ok := f.index[key]
	return ok
}

// Set stores value under key. An existing setting is replaced in place,
// leaving its position and all surrounding lines untouched; a new key is
// appended at the end of the file.
func (f *File) Set(key, value string) {
	if idx, ok := f.index[key]; ok {
		f.lines[idx] = line{kind: kindSetting, key: key, value: value}
		return
	}
	f.index[key] = len(f.lines)
	f.lines = append(f.lines, line{kind: kindSetting, key: key, value: value})
}

// Remove deletes key and reports whether it was present. The setting's
// line is blanked rather than removed, so the positions of every other
// line are stable across a removal.
func (f *File) Remove(key string) bool {
	idx, ok := f.index[key]
	if !ok {
		return false
	}
	f.lines[idx] = line{kind: kindEmpty}
	delete(f.index, key)
	return true
}

// Keys returns every present key in alphabetical order, regardless of
// file order.
func (f *File) Keys() []string {
	out := make([]string, 0, len(f.index))
	for k := range f.index {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// GetMatching returns the settings whose keys match the dotted pattern,
// in alphabetical key order. A "*" segment matches exactly one key
// segment; keys with a different segment count are skipped.
func (f *File) GetMatching(pat string) []Setting {
	var out []Setting
	for _, k := range f.Keys() {
		if !pattern.Matches(k, pat) {
			continue
		}
		if v, ok := f.Get(k); ok {
			out = append(out, Setting{Key: k, Value: v})
		}
	}
	return out
}

// IsPattern reports whether s is a wildcard query rather than a literal
// key.
func IsPattern(s string) bool {
	return pattern.IsPattern(s)
}

// String renders the file in its original line order. Untouched comments
// and blank lines are reproduced verbatim; settings are written as
// "key = value" with the value quoted when it contains a space, "#", or
// "'". Every line is newline-terminated.
func (f *File) String() string {
	var b strings.Builder
	for _, ln := range f.lines {
		switch ln.kind {
		case kindSetting:
			b.WriteString(ln.key)
			b.WriteString(" = ")
			b.WriteString(formatValue(ln.value))
			b.WriteByte('\n')
		case kindComment:
			b.WriteString(ln.raw)
			b.WriteByte('\n')
		default:
			b.WriteByte('\n')
		}
	}
	return b.String()
}
