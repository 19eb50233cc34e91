package odp

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// wireObject is one JSON object keyed by wire name. Its accessors never fail:
// absent or null keys read as nil, wrong-typed values read as nil and log a warning.
type wireObject map[string]json.RawMessage

// wireKind returns the JSON kind of raw by its first significant byte.
func wireKind(raw []byte) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	switch c := raw[0]; c {
	case '{', '[', '"', 'n', 't', 'f':
		return c
	default:
		return '0'
	}
}

// parseObject decodes data as a JSON object. JSON null yields a nil object.
func parseObject(data []byte, typeName string) (wireObject, error) {
	switch wireKind(data) {
	case 'n':
		return nil, nil
	case '{':
	default:
		return nil, &DecodeError{Type: typeName, Err: fmt.Errorf("expected JSON object, got %s", kindName(wireKind(data)))}
	}
	var o wireObject
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, &DecodeError{Type: typeName, Err: err}
	}
	return o, nil
}

// parseTopLevel is parseObject for whole response payloads, where null is also a contract break.
func parseTopLevel(data []byte, typeName string) (wireObject, error) {
	if wireKind(data) != '{' {
		return nil, &DecodeError{Type: typeName, Err: fmt.Errorf("expected JSON object, got %s", kindName(wireKind(data)))}
	}
	return parseObject(data, typeName)
}

func kindName(k byte) string {
	switch k {
	case '{':
		return "object"
	case '[':
		return "array"
	case '"':
		return "string"
	case 'n':
		return "null"
	case 't', 'f':
		return "boolean"
	case '0':
		return "number"
	}
	return "empty input"
}

// present returns the raw value for key, or nil when absent or null.
func (o wireObject) present(key string) json.RawMessage {
	raw, ok := o[key]
	if !ok || wireKind(raw) == 'n' {
		return nil
	}
	return raw
}

func (o wireObject) malformed(key string, raw []byte, want string) {
	warn(WarningMalformedValue, "unexpected JSON type for field",
		"field", key, "want", want, "got", kindName(wireKind(raw)))
}

// str reads a string. Numbers and booleans are kept as their literal text.
func (o wireObject) str(key string) *string {
	raw := o.present(key)
	if raw == nil {
		return nil
	}
	switch wireKind(raw) {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			o.malformed(key, raw, "string")
			return nil
		}
		return &s
	case '0', 't', 'f':
		s := string(bytes.TrimSpace(raw))
		return &s
	}
	o.malformed(key, raw, "string")
	return nil
}

// text is str with absent values read as "".
func (o wireObject) text(key string) string {
	if s := o.str(key); s != nil {
		return *s
	}
	return ""
}

// integer reads an integer. Integral floats and numeric strings are accepted.
func (o wireObject) integer(key string) *int {
	raw := o.present(key)
	if raw == nil {
		return nil
	}
	lit := string(bytes.TrimSpace(raw))
	if wireKind(raw) == '"' {
		if err := json.Unmarshal(raw, &lit); err != nil {
			o.malformed(key, raw, "integer")
			return nil
		}
	} else if wireKind(raw) != '0' {
		o.malformed(key, raw, "integer")
		return nil
	}
	if n, err := strconv.Atoi(lit); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(lit, 64); err == nil && f == math.Trunc(f) {
		n := int(f)
		return &n
	}
	if lit == "" {
		return nil
	}
	warn(WarningMalformedValue, "could not parse integer", "field", key, "value", lit)
	return nil
}

// intOr0 is integer with absent values read as 0.
func (o wireObject) intOr0(key string) int {
	if n := o.integer(key); n != nil {
		return *n
	}
	return 0
}

func (o wireObject) number(key string) *float64 {
	raw := o.present(key)
	if raw == nil {
		return nil
	}
	lit := string(bytes.TrimSpace(raw))
	if wireKind(raw) == '"' {
		if err := json.Unmarshal(raw, &lit); err != nil {
			o.malformed(key, raw, "number")
			return nil
		}
	} else if wireKind(raw) != '0' {
		o.malformed(key, raw, "number")
		return nil
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if lit != "" {
			warn(WarningMalformedValue, "could not parse number", "field", key, "value", lit)
		}
		return nil
	}
	return &f
}

// boolean reads a native JSON boolean; "true"/"false" strings are tolerated.
func (o wireObject) boolean(key string) *bool {
	raw := o.present(key)
	if raw == nil {
		return nil
	}
	switch wireKind(raw) {
	case 't':
		return boolPtr(true)
	case 'f':
		return boolPtr(false)
	case '"':
		if b, err := strconv.ParseBool(o.text(key)); err == nil {
			return &b
		}
	}
	o.malformed(key, raw, "boolean")
	return nil
}

// yn reads a "Y"/"N" flag. A native boolean is accepted as is.
func (o wireObject) yn(key string) *bool {
	raw := o.present(key)
	if raw == nil {
		return nil
	}
	switch wireKind(raw) {
	case 't':
		return boolPtr(true)
	case 'f':
		return boolPtr(false)
	case '"':
		return DecodeYN(o.text(key))
	}
	o.malformed(key, raw, "Y/N string")
	return nil
}

func (o wireObject) date(key string) *Date {
	return DecodeDate(o.text(key))
}

func (o wireObject) datetime(key string) *DateTime {
	return DecodeDateTimeUTC(o.text(key))
}

// array returns the elements of an array field. Any other JSON type reads as empty.
func (o wireObject) array(key string) []json.RawMessage {
	raw := o.present(key)
	if raw == nil || wireKind(raw) != '[' {
		return nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		o.malformed(key, raw, "array")
		return nil
	}
	return elems
}

// strs reads an array of strings, skipping elements that are not strings.
func (o wireObject) strs(key string) []string {
	var out []string
	for _, e := range o.array(key) {
		if wireKind(e) != '"' {
			continue
		}
		var s string
		if json.Unmarshal(e, &s) == nil {
			out = append(out, s)
		}
	}
	return out
}

// dates reads an array of YYYY-MM-DD strings, dropping the ones that do not parse.
func (o wireObject) dates(key string) []Date {
	var out []Date
	for _, s := range o.strs(key) {
		if d := DecodeDate(s); d != nil {
			out = append(out, *d)
		}
	}
	return out
}

// recordPtr constrains *T to types that decode themselves from JSON.
type recordPtr[T any] interface {
	*T
	json.Unmarshaler
}

// list decodes an array of records. Elements that are not objects are skipped.
func list[T any, P recordPtr[T]](o wireObject, key string) []T {
	var out []T
	for _, e := range o.array(key) {
		if wireKind(e) != '{' {
			continue
		}
		var v T
		if err := P(&v).UnmarshalJSON(e); err != nil {
			warn(WarningMalformedValue, "could not decode nested record", "field", key, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// one decodes a nested record. A non-object value reads as nil.
func one[T any, P recordPtr[T]](o wireObject, key string) *T {
	raw := o.present(key)
	if raw == nil {
		return nil
	}
	if wireKind(raw) != '{' {
		o.malformed(key, raw, "object")
		return nil
	}
	var v T
	if err := P(&v).UnmarshalJSON(raw); err != nil {
		warn(WarningMalformedValue, "could not decode nested record", "field", key, "error", err)
		return nil
	}
	return &v
}

// firstPresent returns the first key among keys that is set on o.
func (o wireObject) firstPresent(keys ...string) string {
	for _, k := range keys {
		if o.present(k) != nil {
			return k
		}
	}
	return keys[0]
}
