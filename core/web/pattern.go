package web

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

type segmentKind uint8

const (
	segStatic   segmentKind = iota // /users
	segParam                       // /:id, /{id}, /{id:[0-9]+}
	segGlob                        // /*.html
	segDeep                        // /**/ in the middle of a pattern
	segCatchAll                    // /* or /** as the last segment
)

type segment struct {
	kind  segmentKind
	value string // literal, glob expression or param name
}

// Pattern is a compiled route path pattern. It extracts named path segments
// from a concrete request path. Params must span whole segments.
//
// Supported segment forms:
//
//	/users          static
//	/:id  /{id}     named parameter
//	/{id:[0-9]+}    named parameter, the expression is left to the route table
//	/*.html         single segment glob, nothing is bound
//	/**             any number of segments, nothing is bound unless last
//	/*              catch-all when last (bound as "*"), one segment otherwise
type Pattern struct {
	raw      string
	segments []segment
}

// ParsePattern compiles a route path pattern.
func ParsePattern(raw string) (Pattern, error) {
	if raw == "" || raw[0] != '/' {
		return Pattern{}, fmt.Errorf("%w: '%s' must begin with '/'", ErrInvalidPattern, raw)
	}

	parts := splitPath(raw)
	p := Pattern{raw: raw, segments: make([]segment, 0, len(parts))}
	seen := make(map[string]struct{}, len(parts))

	for i, part := range parts {
		seg, err := parseSegment(part)
		if err != nil {
			return Pattern{}, fmt.Errorf("%w: '%s': %w", ErrInvalidPattern, raw, err)
		}

		switch seg.kind {
		case segCatchAll:
			if i != len(parts)-1 {
				if part == "**" {
					seg = segment{kind: segDeep}
				} else {
					seg = segment{kind: segGlob, value: part}
				}
			}
		case segParam:
			if _, dup := seen[seg.value]; dup {
				return Pattern{}, fmt.Errorf("%w: '%s' in '%s'", ErrDuplicateParam, seg.value, raw)
			}
			seen[seg.value] = struct{}{}
		}

		p.segments = append(p.segments, seg)
	}

	return p, nil
}

// MustParsePattern is like ParsePattern but panics on error.
func MustParsePattern(raw string) Pattern {
	p, err := ParsePattern(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func parseSegment(part string) (segment, error) {
	switch {
	case part == "*" || part == "**":
		return segment{kind: segCatchAll, value: "*"}, nil

	case strings.HasPrefix(part, ":"):
		name := part[1:]
		if name == "" || strings.ContainsAny(name, ":{}*") {
			return segment{}, fmt.Errorf("bad param name %q", part)
		}
		return segment{kind: segParam, value: name}, nil

	case strings.HasPrefix(part, "{"):
		if !strings.HasSuffix(part, "}") {
			return segment{}, errors.New("param closing delimiter '}' is missing")
		}
		name, _, _ := strings.Cut(part[1:len(part)-1], ":")
		if name == "" {
			return segment{}, fmt.Errorf("bad param name %q", part)
		}
		return segment{kind: segParam, value: name}, nil

	case strings.ContainsAny(part, "{}"):
		return segment{}, fmt.Errorf("param must span a whole segment: %q", part)

	case strings.ContainsAny(part, "*?["):
		if _, err := path.Match(part, ""); err != nil {
			return segment{}, fmt.Errorf("bad glob %q: %w", part, err)
		}
		return segment{kind: segGlob, value: part}, nil
	}

	return segment{kind: segStatic, value: part}, nil
}

// String returns the raw pattern.
func (p Pattern) String() string {
	return p.raw
}

// IsZero reports whether p was never compiled.
func (p Pattern) IsZero() bool {
	return p.raw == ""
}

// Names returns the parameter names in declaration order.
func (p Pattern) Names() []string {
	var names []string
	for _, s := range p.segments {
		switch s.kind {
		case segParam, segCatchAll:
			names = append(names, s.value)
		}
	}
	return names
}

// Extract matches path against the pattern and returns the bound parameters.
// The map is never nil when ok is true.
func (p Pattern) Extract(urlPath string) (params map[string]string, ok bool) {
	if p.IsZero() {
		return nil, false
	}
	var bound []string // key, value pairs
	if !matchSegments(p.segments, splitPath(urlPath), &bound) {
		return nil, false
	}
	params = make(map[string]string, len(bound)/2)
	for i := 0; i+1 < len(bound); i += 2 {
		params[bound[i]] = bound[i+1]
	}
	return params, true
}

func matchSegments(segs []segment, parts []string, bound *[]string) bool {
	if len(segs) == 0 {
		return len(parts) == 0
	}

	s := segs[0]
	switch s.kind {
	case segCatchAll:
		*bound = append(*bound, s.value, strings.Join(parts, "/"))
		return true

	case segDeep:
		mark := len(*bound)
		for i := 0; i <= len(parts); i++ {
			if matchSegments(segs[1:], parts[i:], bound) {
				return true
			}
			*bound = (*bound)[:mark]
		}
		return false
	}

	if len(parts) == 0 {
		return false
	}

	switch s.kind {
	case segStatic:
		if parts[0] != s.value {
			return false
		}
	case segGlob:
		if ok, _ := path.Match(s.value, parts[0]); !ok {
			return false
		}
	case segParam:
		if parts[0] == "" {
			return false
		}
		mark := len(*bound)
		*bound = append(*bound, s.value, parts[0])
		if !matchSegments(segs[1:], parts[1:], bound) {
			*bound = (*bound)[:mark]
			return false
		}
		return true
	}

	return matchSegments(segs[1:], parts[1:], bound)
}

// splitPath splits a slash separated path ignoring leading and trailing slashes.
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
