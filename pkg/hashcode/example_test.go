package hashcode_test

import (
	"fmt"

	"src.jhash.dev/pkg/hashcode"
)

type point struct {
	x, y  int32
	label string
}

func (p point) HashCode() int32 { return hashcode.Hash(p.x, p.y, p.label) }

func ExampleHash() {
	fmt.Println(hashcode.Hash(int32(1), int32(2)))
	fmt.Println(hashcode.Hash(nil, nil))
	fmt.Println(hashcode.Hash())
	// Output:
	// 994
	// 961
	// 1
}

func ExampleHash_hasher() {
	p := point{1, 2, "a"}
	fmt.Println(hashcode.Of(p) == hashcode.Hash(int32(1), int32(2), "a"))
	// Output: true
}

func ExampleBytes() {
	fmt.Println(hashcode.Bytes([]byte{1, 2, 3}))
	fmt.Println(hashcode.Bytes([]byte{}))
	fmt.Println(hashcode.Bytes(nil))
	// Output:
	// 30817
	// 1
	// 0
}

func ExampleChars() {
	fmt.Println(hashcode.Chars([]uint16{'a', 'b'}))
	fmt.Println(hashcode.Chars(nil))
	// Output:
	// 4066
	// 0
}
