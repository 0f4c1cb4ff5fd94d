// Package vecmapjson encodes and decodes VecMaps as JSON objects.
//
// Members are written in the map's canonical ascending key order, so equal
// maps always produce identical bytes. The package is built entirely on the
// public vecmap surface; the container itself owns no wire format.
//
// Keys must be strings or integers. Integer keys are formatted in base 10,
// the way encoding/json renders integer map keys. Float keys are rejected
// because JSON member names cannot carry them faithfully.
package vecmapjson

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/hupe1980/vecmap"
)

var (
	// ErrKeyType reports a key type that cannot be represented as a JSON
	// object member name.
	ErrKeyType = errors.New("vecmapjson: unsupported key type")

	// ErrDuplicateKey reports an input object carrying the same member name
	// twice.
	ErrDuplicateKey = errors.New("vecmapjson: duplicate key")
)

// Encode writes m to enc as one JSON object, members in ascending key order.
func Encode[K cmp.Ordered, V any](enc *jsontext.Encoder, m *vecmap.VecMap[K, V]) error {
	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}

	for k, v := range m.All() {
		name, err := keyString(k)
		if err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.String(name)); err != nil {
			return err
		}
		if err := json.MarshalEncode(enc, v); err != nil {
			return err
		}
	}

	return enc.WriteToken(jsontext.EndObject)
}

// Decode reads one JSON object from dec into m. Decoded members overwrite
// keys already stored in m, like json.Unmarshal into a Go map. A member that
// maps to a key already seen in the object fails with ErrDuplicateKey, and on
// any error m is left unchanged. A dec left at its strict default rejects
// exact name repeats on its own before this check can run; only Unmarshal
// relaxes that.
func Decode[K cmp.Ordered, V any](dec *jsontext.Decoder, m *vecmap.VecMap[K, V]) error {
	tok, err := dec.ReadToken()
	if err != nil {
		return err
	}
	if tok.Kind() != '{' {
		return fmt.Errorf("vecmapjson: decode: expected object, got %q", tok.Kind().String())
	}

	tmp := vecmap.New[K, V]()
	for dec.PeekKind() != '}' {
		tok, err := dec.ReadToken()
		if err != nil {
			return err
		}
		key, err := parseKey[K](tok.String())
		if err != nil {
			return err
		}

		var value V
		if err := json.UnmarshalDecode(dec, &value); err != nil {
			return err
		}

		// Our own encoder emits ascending members, so the fast append path
		// usually hits; arbitrary input falls back to a full insert.
		if !tmp.Push(key, value) {
			if tmp.ContainsKey(key) {
				return fmt.Errorf("%w: %v", ErrDuplicateKey, key)
			}
			tmp.Insert(key, value)
		}
	}
	if _, err := dec.ReadToken(); err != nil {
		return err
	}

	m.Append(tmp)

	return nil
}

// Marshal returns the canonical JSON encoding of m: one compact object with
// members in ascending key order, so equal maps marshal to equal bytes.
func Marshal[K cmp.Ordered, V any](m *vecmap.VecMap[K, V]) ([]byte, error) {
	var buf bytes.Buffer

	enc := jsontext.NewEncoder(&buf)
	if err := Encode(enc, m); err != nil {
		return nil, err
	}

	// The stream encoder delimits top-level values with a newline.
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Append appends the canonical JSON encoding of m to dst.
func Append[K cmp.Ordered, V any](dst []byte, m *vecmap.VecMap[K, V]) ([]byte, error) {
	b, err := Marshal(m)
	if err != nil {
		return nil, err
	}
	return append(dst, b...), nil
}

// Unmarshal decodes one JSON object from data into m, rejecting trailing
// data after the object. Duplicate detection is left to Decode so that two
// member names mapping to the same key, such as "1" and "01" for an integer
// key, fail with ErrDuplicateKey rather than decoding both.
func Unmarshal[K cmp.Ordered, V any](data []byte, m *vecmap.VecMap[K, V]) error {
	dec := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true))
	if err := Decode(dec, m); err != nil {
		return err
	}

	if _, err := dec.ReadToken(); !errors.Is(err, io.EOF) {
		return errors.New("vecmapjson: unexpected data after top-level object")
	}

	return nil
}

// keyString formats key as a JSON member name. The switch is over the
// reflect kind so named key types format like their underlying type.
func keyString[K cmp.Ordered](key K) (string, error) {
	rv := reflect.ValueOf(key)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	default:
		return "", fmt.Errorf("%w: %T", ErrKeyType, key)
	}
}

// parseKey is the inverse of keyString.
func parseKey[K cmp.Ordered](name string) (K, error) {
	var key K

	rv := reflect.ValueOf(&key).Elem()
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(name)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(name, 10, 64)
		if err != nil || rv.OverflowInt(n) {
			return key, fmt.Errorf("vecmapjson: invalid key %q for %T", name, key)
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(name, 10, 64)
		if err != nil || rv.OverflowUint(n) {
			return key, fmt.Errorf("vecmapjson: invalid key %q for %T", name, key)
		}
		rv.SetUint(n)
	default:
		return key, fmt.Errorf("%w: %T", ErrKeyType, key)
	}

	return key, nil
}
