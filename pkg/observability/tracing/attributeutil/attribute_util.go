/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package attributeutil

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"go.opentelemetry.io/otel/attribute"
)

const (
	redactedValue   = "[REDACTED]"
	truncatedSuffix = "...(truncated)"
	arrayPrefix     = "#."
)

type options struct {
	redacted  []string
	maxLength int
}

type Opt func(*options)

// WithRedacted replaces the value at path with [REDACTED]. Paths use gjson syntax; a leading
// "#." applies the rest of the path to every element of an array.
func WithRedacted(path string) Opt {
	return func(o *options) {
		o.redacted = append(o.redacted, path)
	}
}

// WithMaxLength truncates the encoded value to at most n bytes.
func WithMaxLength(n int) Opt {
	return func(o *options) {
		o.maxLength = n
	}
}

// JSON returns an attribute holding value encoded as JSON. A value that cannot be encoded yields
// an empty attribute value.
func JSON(key string, value interface{}, opts ...Opt) attribute.KeyValue {
	op := &options{}

	for _, opt := range opts {
		opt(op)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return attribute.KeyValue{Key: attribute.Key(key)}
	}

	for _, path := range op.redacted {
		b = redact(b, path)
	}

	s := string(b)

	if op.maxLength > len(truncatedSuffix) && len(s) > op.maxLength {
		s = s[:op.maxLength-len(truncatedSuffix)] + truncatedSuffix
	}

	return attribute.String(key, s)
}

func redact(b []byte, path string) []byte {
	if rest, ok := strings.CutPrefix(path, arrayPrefix); ok {
		n := gjson.GetBytes(b, "#").Int()

		for i := int64(0); i < n; i++ {
			b = redact(b, strconv.FormatInt(i, 10)+"."+rest)
		}

		return b
	}

	if !gjson.GetBytes(b, path).Exists() {
		return b
	}

	redacted, err := sjson.SetBytes(b, path, redactedValue)
	if err != nil {
		return b
	}

	return redacted
}
