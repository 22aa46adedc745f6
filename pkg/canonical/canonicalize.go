/*
Copyright Gen Digital Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package canonical

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"unicode/utf16"
)

// Version identifies a canonicalization algorithm.
type Version string

const (
	// VersionLegacy renders byte-wise sorted keys with HTML-safe escaping and number
	// literals kept verbatim. It is retained only to verify historical hashes.
	VersionLegacy Version = "sorted-json-v1"
	// VersionCurrent is the JSON Canonicalization Scheme (RFC 8785).
	VersionCurrent Version = "jcs-v2"
)

// versions lists the supported algorithms from oldest to newest.
var versions = []Version{VersionLegacy, VersionCurrent} //nolint:gochecknoglobals

// ParseVersion validates a version string. An empty string selects VersionCurrent.
func ParseVersion(s string) (Version, error) {
	if s == "" {
		return VersionCurrent, nil
	}

	for _, v := range versions {
		if string(v) == s {
			return v, nil
		}
	}

	return "", fmt.Errorf("%w canonicalization version %q", ErrUnsupported, s)
}

// Previous returns the version immediately before v, if any.
func (v Version) Previous() (Version, bool) {
	for i, known := range versions {
		if known == v && i > 0 {
			return versions[i-1], true
		}
	}

	return "", false
}

// Canonicalize renders v as deterministic JSON text under the given version.
func Canonicalize(v Value, version Version) ([]byte, error) {
	switch version {
	case VersionCurrent:
		var buf bytes.Buffer

		if err := writeJCS(&buf, v); err != nil {
			return nil, err
		}

		return buf.Bytes(), nil
	case VersionLegacy:
		b, err := json.Marshal(v.Interface())
		if err != nil {
			return nil, wrapError("", "legacy rendering", err)
		}

		return b, nil
	default:
		return nil, newError("", fmt.Sprintf("unsupported canonicalization version %q", version))
	}
}

// CanonicalizeGo converts plain Go data with FromGo and renders it under VersionCurrent.
func CanonicalizeGo(x interface{}) ([]byte, error) {
	v, err := FromGo(x)
	if err != nil {
		return nil, err
	}

	return Canonicalize(v, VersionCurrent)
}

func writeJCS(buf *bytes.Buffer, v Value) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.b))
	case KindNumber:
		s, err := formatNumber(v.num)
		if err != nil {
			return err
		}

		buf.WriteString(s)
	case KindString:
		writeString(buf, v.str)
	case KindArray:
		buf.WriteByte('[')

		for i, item := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}

			if err := writeJCS(buf, item); err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	case KindObject:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}

		sort.Slice(keys, func(i, j int) bool { return lessUTF16(keys[i], keys[j]) })

		buf.WriteByte('{')

		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}

			writeString(buf, k)
			buf.WriteByte(':')

			if err := writeJCS(buf, v.obj[k]); err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	default:
		return newError("", fmt.Sprintf("unknown value kind %d", v.kind))
	}

	return nil
}

// formatNumber renders a number the way ECMAScript Number.prototype.toString does.
func formatNumber(n json.Number) (string, error) {
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return "", newError("", fmt.Sprintf("non-finite number %q", n))
	}

	if f == 0 {
		return "0", nil
	}

	abs := math.Abs(f)
	format := byte('f')

	if abs < 1e-6 || abs >= 1e21 {
		format = 'e'
	}

	s := strconv.FormatFloat(f, format, -1, 64)

	if format == 'e' {
		// 1e-07 -> 1e-7
		n := len(s)
		if n >= 4 && s[n-4] == 'e' && s[n-3] == '-' && s[n-2] == '0' {
			s = s[:n-2] + s[n-1:]
		}
	}

	return s, nil
}

func writeString(buf *bytes.Buffer, s string) {
	const hex = "0123456789abcdef"

	buf.WriteByte('"')

	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hex[r>>4])
				buf.WriteByte(hex[r&0xF])

				continue
			}

			buf.WriteRune(r)
		}
	}

	buf.WriteByte('"')
}

// lessUTF16 orders strings by their UTF-16 code units.
func lessUTF16(a, b string) bool {
	ua := utf16.Encode([]rune(a))
	ub := utf16.Encode([]rune(b))

	for i := 0; i < len(ua) && i < len(ub); i++ {
		if ua[i] != ub[i] {
			return ua[i] < ub[i]
		}
	}

	return len(ua) < len(ub)
}
