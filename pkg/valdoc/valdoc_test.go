package valdoc

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vmihailenco/msgpack/v5"

	"src.jhash.dev/pkg/hashcode"
	"src.jhash.dev/pkg/must"
	"src.jhash.dev/pkg/tt"
)

var Args = tt.Args

func TestParseFormat(t *testing.T) {
	tt.Test(t, ParseFormat,
		Args("yaml").Rets(YAML, nil),
		Args("YML").Rets(YAML, nil),
		Args("json").Rets(JSON, nil),
		Args("toml").Rets(TOML, nil),
		Args("msgpack").Rets(MsgPack, nil),
		Args("mpk").Rets(MsgPack, nil),
		Args("xml").Rets(Format(0), errorIs{ErrUnknownFormat}),
	)
}

func TestFormatFromPath(t *testing.T) {
	tt.Test(t, FormatFromPath,
		Args("a/b.yaml").Rets(YAML, nil),
		Args("doc.JSON").Rets(JSON, nil),
		Args("Cargo.toml").Rets(TOML, nil),
		Args("noext").Rets(Format(0), errorIs{ErrUnknownFormat}),
		Args("x.txt").Rets(Format(0), errorIs{ErrUnknownFormat}),
	)
}

func TestFormat_String(t *testing.T) {
	tt.Test(t, Format.String,
		Args(YAML).Rets("yaml"),
		Args(MsgPack).Rets("msgpack"),
		Args(Format(10)).Rets("Format(10)"),
	)
}

var wantSeq = []any{
	"foo",
	42,
	1.5,
	true,
	nil,
	[]any{1, 2},
	map[string]any{"k": "v"},
}

func TestDecode_SameValuesAcrossFormats(t *testing.T) {
	docs := map[Format][]byte{
		YAML: []byte("- foo\n- 42\n- 1.5\n- true\n- null\n- [1, 2]\n- {k: v}\n"),
		JSON: []byte(`["foo", 42, 1.5, true, null, [1, 2], {"k": "v"}]`),
		MsgPack: must.OK1(msgpack.Marshal([]any{
			"foo", uint8(42), float32(1.5), true, nil,
			[]any{int8(1), int16(2)}, map[string]any{"k": "v"}})),
	}
	for f, data := range docs {
		got, err := Decode(f, data)
		if err != nil {
			t.Errorf("Decode(%v) -> error %v", f, err)
			continue
		}
		if diff := cmp.Diff(wantSeq, got); diff != "" {
			t.Errorf("Decode(%v) (-want +got):\n%s", f, diff)
		}
	}
}

func TestDecode_TOMLIsSingleTable(t *testing.T) {
	got, err := Decode(TOML, []byte(
		"name = \"x\"\nn = 3\nwhen = 1979-05-27T07:32:00Z\n[sub]\nxs = [1, 2]\n"))
	want := []any{map[string]any{
		"name": "x",
		"n":    3,
		"when": "1979-05-27T07:32:00Z",
		"sub":  map[string]any{"xs": []any{1, 2}},
	}}
	if err != nil {
		t.Fatalf("Decode -> error %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Decode (-want +got):\n%s", diff)
	}
}

func TestDecode_TOMLArrayOfTables(t *testing.T) {
	tomlDocs := []string{
		"[[x]]\na = 1\n",
		"[[x]]\na = 2\n[[x]]\nb = 3\n",
	}
	jsonDocs := []string{
		`{"x": [{"a": 1}]}`,
		`{"x": [{"a": 2}, {"b": 3}]}`,
	}
	var hashes []int32
	for i := range tomlDocs {
		fromTOML, err := Decode(TOML, []byte(tomlDocs[i]))
		if err != nil {
			t.Fatalf("Decode(toml, %q) -> error %v", tomlDocs[i], err)
		}
		fromJSON := must.OK1(Decode(JSON, []byte(jsonDocs[i])))
		if diff := cmp.Diff(fromJSON, fromTOML); diff != "" {
			t.Errorf("Decode(toml, %q) (-json +toml):\n%s", tomlDocs[i], diff)
		}
		if h, want := hashcode.Hash(fromTOML...), hashcode.Hash(fromJSON...); h != want {
			t.Errorf("hash of %q is %v, want %v", tomlDocs[i], h, want)
		}
		hashes = append(hashes, hashcode.Hash(fromTOML...))
	}
	if hashes[0] == hashes[1] {
		t.Errorf("different arrays of tables hash the same: %v", hashes[0])
	}
}

func TestNormalize_TypedSlices(t *testing.T) {
	got := normalize(map[string]any{
		"tables": []map[string]any{{"n": int64(1)}},
		"anys":   []map[any]any{{1: uint8(2)}},
		"strs":   []string{"a"},
		"ints":   []int64{1},
		"floats": []float64{0.5},
		"bools":  []bool{true},
	})
	want := map[string]any{
		"tables": []any{map[string]any{"n": 1}},
		"anys":   []any{map[string]any{"1": 2}},
		"strs":   []any{"a"},
		"ints":   []any{1},
		"floats": []any{0.5},
		"bools":  []any{true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("normalize (-want +got):\n%s", diff)
	}
}

func TestDecode_MsgPackWhitespaceBytes(t *testing.T) {
	tt.Test(t, Decode,
		// Positive fixints that are also ASCII whitespace.
		Args(MsgPack, must.OK1(msgpack.Marshal(10))).Rets([]any{10}, nil),
		Args(MsgPack, []byte{0x09}).Rets([]any{9}, nil),
		Args(MsgPack, []byte{0x20}).Rets([]any{32}, nil),
		Args(MsgPack, []byte{}).Rets([]any(nil), nil),
	)
	if h := hashcode.Hash(must.OK1(Decode(MsgPack, []byte{0x0a}))...); h != 41 {
		t.Errorf("hash of msgpack 10 is %v, want 41", h)
	}
}

func TestDecode_ScalarBecomesOneElement(t *testing.T) {
	tt.Test(t, Decode,
		Args(YAML, []byte("foo")).Rets([]any{"foo"}, nil),
		Args(JSON, []byte("12.5")).Rets([]any{12.5}, nil),
		Args(YAML, []byte("{a: 1}")).Rets([]any{map[string]any{"a": 1}}, nil),
		Args(YAML, []byte("{1: a}")).Rets([]any{map[string]any{"1": "a"}}, nil),
	)
}

func TestDecodeValue(t *testing.T) {
	tt.Test(t, DecodeValue,
		Args(YAML, []byte("")).Rets(nil, nil),
		Args(YAML, []byte("~")).Rets(nil, nil),
		Args(YAML, []byte("-1")).Rets(-1, nil),
		Args(YAML, []byte("[1, foo]")).Rets([]any{1, "foo"}, nil),
		Args(JSON, []byte("18446744073709551615")).Rets(1.8446744073709552e19, nil),
		Args(MsgPack, must.OK1(msgpack.Marshal(uint64(1<<63)))).Rets(uint64(1<<63), nil),
	)
}

func TestDecode_AbsentSequence(t *testing.T) {
	tt.Test(t, Decode,
		Args(YAML, []byte("")).Rets([]any(nil), nil),
		Args(YAML, []byte("  \n")).Rets([]any(nil), nil),
		Args(YAML, []byte("null")).Rets([]any(nil), nil),
		Args(JSON, []byte("null")).Rets([]any(nil), nil),
		Args(MsgPack, []byte{0xc0}).Rets([]any(nil), nil),
		Args(YAML, []byte("[]")).Rets([]any{}, nil),
	)
}

func TestDecode_Errors(t *testing.T) {
	tt.Test(t, Decode,
		Args(JSON, []byte("[1,")).Rets([]any(nil), tt.Any),
		Args(YAML, []byte("a: [")).Rets([]any(nil), tt.Any),
		Args(TOML, []byte("= 1")).Rets([]any(nil), tt.Any),
		Args(Format(10), []byte("1")).Rets([]any(nil), errorIs{ErrUnknownFormat}),

		Args(JSON, []byte("[1,2] garbage")).Rets([]any(nil), tt.Any),
		Args(JSON, []byte("[1] [2]")).Rets([]any(nil), errorIs{errTrailingData}),
		Args(JSON, []byte("[1, 2]\n  ")).Rets([]any{1, 2}, nil),
	)
	_, err := Decode(JSON, []byte("[1,"))
	if err == nil {
		t.Fatal("no error for malformed JSON")
	}
	if !strings.HasPrefix(err.Error(), "decode json: ") {
		t.Errorf("error message %q lacks format prefix", err)
	}
}

type errorIs struct{ want error }

func (e errorIs) Match(got tt.RetValue) bool {
	err, ok := got.(error)
	return ok && errors.Is(err, e.want)
}
