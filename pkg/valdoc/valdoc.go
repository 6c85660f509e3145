// Package valdoc decodes structured documents into sequences of values
// suitable for hashing.
//
// Decoded values are normalized so that the same logical document yields the
// same values regardless of its format: maps become map[string]any, integers
// become int (or int64 and uint64 when they don't fit), floating-point numbers
// become float64 and timestamps become RFC 3339 strings.
package valdoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Format identifies a document format.
type Format int

// Supported formats.
const (
	YAML Format = iota
	JSON
	TOML
	MsgPack
)

var formatNames = [...]string{YAML: "yaml", JSON: "json", TOML: "toml", MsgPack: "msgpack"}

func (f Format) String() string {
	if 0 <= f && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ErrUnknownFormat is returned (possibly wrapped) when a format name or file
// extension is not recognized.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat parses the name of a format. It also accepts the alternative
// names "yml" and "mpk".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	case "toml":
		return TOML, nil
	case "msgpack", "mpk":
		return MsgPack, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath determines the format of a file from its extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext[1:])
}

// Decode decodes a document into a sequence of values.
//
// If the top-level value of the document is a sequence, its elements are
// returned. If the document is empty or its top-level value is null, it
// returns nil, which represents an absent sequence. Otherwise the top-level
// value is returned as the only element. TOML documents are always a single
// table.
func Decode(f Format, data []byte) ([]any, error) {
	v, err := DecodeValue(f, data)
	if err != nil {
		return nil, err
	}
	switch v := v.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	default:
		return []any{v}, nil
	}
}

// DecodeValue decodes a document into a single normalized value. An empty
// document decodes to nil.
func DecodeValue(f Format, data []byte) (any, error) {
	if isEmpty(f, data) {
		return nil, nil
	}
	var v any
	var err error
	switch f {
	case YAML:
		err = yaml.Unmarshal(data, &v)
	case JSON:
		err = decodeJSON(data, &v)
	case TOML:
		var m map[string]any
		_, err = toml.Decode(string(data), &m)
		v = m
	case MsgPack:
		err = msgpack.Unmarshal(data, &v)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %v: %w", f, err)
	}
	return normalize(v), nil
}

// MessagePack is binary, so whitespace bytes are valid values there.
func isEmpty(f Format, data []byte) bool {
	if f == MsgPack {
		return len(data) == 0
	}
	return len(bytes.TrimSpace(data)) == 0
}

var errTrailingData = errors.New("trailing data after top-level value")

func decodeJSON(data []byte, v *any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		if err == nil {
			err = errTrailingData
		}
		return err
	}
	return nil
}

func normalize(v any) any {
	switch v := v.(type) {
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return signed(v)
	case uint:
		return unsigned(uint64(v))
	case uint8:
		return int(v)
	case uint16:
		return int(v)
	case uint32:
		return unsigned(uint64(v))
	case uint64:
		return unsigned(v)
	case float32:
		return float64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return signed(i)
		}
		f, _ := v.Float64()
		return f
	case time.Time:
		return v.Format(time.RFC3339Nano)
	case []any:
		for i, e := range v {
			v[i] = normalize(e)
		}
		return v
	case map[string]any:
		for k, e := range v {
			v[k] = normalize(e)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, e := range v {
			m[fmt.Sprint(k)] = normalize(e)
		}
		return m
	case []map[string]any:
		// Arrays of tables in TOML.
		return normalizeSlice(v)
	case []map[any]any:
		return normalizeSlice(v)
	case []string:
		return normalizeSlice(v)
	case []int64:
		return normalizeSlice(v)
	case []float64:
		return normalizeSlice(v)
	case []bool:
		return normalizeSlice(v)
	default:
		return v
	}
}

func normalizeSlice[T any](v []T) []any {
	if v == nil {
		return nil
	}
	s := make([]any, len(v))
	for i, e := range v {
		s[i] = normalize(e)
	}
	return s
}

// Integers are kept as int when they fit.
func signed(i int64) any {
	if n, err := safecast.Conv[int](i); err == nil {
		return n
	}
	return i
}

func unsigned(u uint64) any {
	if n, err := safecast.Conv[int](u); err == nil {
		return n
	}
	return u
}
