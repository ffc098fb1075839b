package pyproject

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	nameKey = "project.name"
	bom     = "\ufeff"
)

type span struct {
	start int
	end   int
}

// scanner walks a TOML document line by line, tracking just enough state
// to know which table a key belongs to.
type scanner struct {
	table string
	ml    string // delimiter of an open multi-line string
	depth int    // open arrays and inline tables
}

// locateName returns the byte span of the project.name string value,
// quotes included.
func locateName(raw []byte) (span, error) {
	var sc scanner

	start := 0
	if bytes.HasPrefix(raw, []byte(bom)) {
		start = len(bom)
	}

	for offset := start; offset < len(raw); {
		end := len(raw)
		next := len(raw)
		if i := bytes.IndexByte(raw[offset:], '\n'); i >= 0 {
			end = offset + i
			next = end + 1
		}

		line := strings.TrimSuffix(string(raw[offset:end]), "\r")
		sp, found, err := sc.line(line)
		if err != nil {
			return span{}, err
		}
		if found {
			return span{start: offset + sp.start, end: offset + sp.end}, nil
		}

		offset = next
	}

	return span{}, fmt.Errorf("%w: %s is not a plain key", ErrUnsupportedLayout, nameKey)
}

func (sc *scanner) line(line string) (span, bool, error) {
	if sc.ml != "" || sc.depth > 0 {
		sc.scanValue(line, 0)
		return span{}, false, nil
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return span{}, false, nil
	}
	if strings.HasPrefix(trimmed, "[") {
		sc.table = headerKey(trimmed)
		return span{}, false, nil
	}

	eq := indexUnquoted(line, '=')
	if eq < 0 {
		return span{}, false, nil
	}

	key := normalizeKey(line[:eq])
	if sc.table != "" {
		key = sc.table + "." + key
	}

	start := eq + 1
	for start < len(line) && (line[start] == ' ' || line[start] == '\t') {
		start++
	}

	switch key {
	case nameKey:
		end, err := stringEnd(line, start)
		if err != nil {
			return span{}, false, err
		}
		return span{start: start, end: end}, true, nil
	case "project":
		return span{}, false, fmt.Errorf("%w: project is an inline table", ErrUnsupportedLayout)
	}

	sc.scanValue(line, start)
	return span{}, false, nil
}

// scanValue consumes value text from line[from:], updating multi-line
// string and bracket state.
func (sc *scanner) scanValue(line string, from int) {
	for i := from; i < len(line); i++ {
		if sc.ml != "" {
			if sc.ml == `"""` && line[i] == '\\' {
				i++
				continue
			}
			if strings.HasPrefix(line[i:], sc.ml) {
				i += len(sc.ml) - 1
				sc.ml = ""
			}
			continue
		}

		switch c := line[i]; c {
		case '#':
			return
		case '"', '\'':
			delim := strings.Repeat(string(c), 3)
			if strings.HasPrefix(line[i:], delim) {
				sc.ml = delim
				i += len(delim) - 1
				continue
			}
			i = skipString(line, i)
		case '[', '{':
			sc.depth++
		case ']', '}':
			if sc.depth > 0 {
				sc.depth--
			}
		}
	}
}

func stringEnd(line string, start int) (int, error) {
	rest := line[start:]
	switch {
	case strings.HasPrefix(rest, `"""`), strings.HasPrefix(rest, `'''`):
		return 0, fmt.Errorf("%w: %s is a multi-line string", ErrUnsupportedLayout, nameKey)
	case strings.HasPrefix(rest, `"`), strings.HasPrefix(rest, `'`):
		if end := skipString(line, start); end < len(line) {
			return end + 1, nil
		}
	}
	return 0, fmt.Errorf("%w: %s is not a single-line string", ErrUnsupportedLayout, nameKey)
}

// skipString returns the index of the quote closing the string opened at
// line[i], or len(line) if it is not closed on this line.
func skipString(line string, i int) int {
	quote := line[i]
	for j := i + 1; j < len(line); j++ {
		if quote == '"' && line[j] == '\\' {
			j++
			continue
		}
		if line[j] == quote {
			return j
		}
	}
	return len(line)
}

func headerKey(trimmed string) string {
	inner := strings.TrimPrefix(strings.TrimPrefix(trimmed, "["), "[")
	if i := indexUnquoted(inner, ']'); i >= 0 {
		inner = inner[:i]
	}
	return normalizeKey(inner)
}

// indexUnquoted returns the index of the first target byte outside quoted
// keys or strings, or -1.
func indexUnquoted(s string, target byte) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case target:
			return i
		case '"', '\'':
			i = skipString(s, i)
		}
	}
	return -1
}

// normalizeKey turns a raw, possibly dotted and quoted key into a plain
// dotted path.
func normalizeKey(raw string) string {
	var parts []string
	rest := raw
	for {
		i := indexUnquoted(rest, '.')
		if i < 0 {
			parts = append(parts, unquoteKey(rest))
			break
		}
		parts = append(parts, unquoteKey(rest[:i]))
		rest = rest[i+1:]
	}
	return strings.Join(parts, ".")
}

func unquoteKey(part string) string {
	part = strings.TrimSpace(part)
	if len(part) >= 2 {
		first, last := part[0], part[len(part)-1]
		if (first == '"' || first == '\'') && first == last {
			return part[1 : len(part)-1]
		}
	}
	return part
}
