package gdl_test

import (
	"errors"
	"fmt"

	"github.com/ava12/gdl"
	"github.com/ava12/gdl/langdef"
	"github.com/ava12/gdl/parser"
	"github.com/ava12/gdl/report"
	"github.com/ava12/gdl/source"
)

const numberList = `
entry: LIST
lexemes:
  - name: NUM
    pattern: '[0-9]+'
  - name: COMMA
    pattern: ','
    ignore: true
  - name: WS
    pattern: '[ \t]+'
    ignore: true
rules:
  - name: LIST
    options:
      - [NUM, LIST]
      - [NUM]
`

func Example() {
	g, entry, e := langdef.Parse([]byte(numberList))
	if e != nil {
		fmt.Println(e)
		return
	}

	src := source.New("numbers.txt", []byte("12, 7, 1984"))
	tree, e := parser.New(g).Parse(src, entry)
	if e != nil {
		fmt.Println(e)
		return
	}

	v, _ := tree.Value()
	fmt.Println(v)
	// Output: [12 7 1984]
}

func Example_failureReport() {
	g, entry, e := langdef.Parse([]byte(numberList))
	if e != nil {
		fmt.Println(e)
		return
	}

	src := source.New("numbers.txt", []byte("12 7 oops"))
	_, e = parser.New(g).Parse(src, entry)
	var pe *gdl.Error
	if errors.As(e, &pe) {
		fmt.Print(report.Format(pe, src))
	}
	// Output:
	// Parsing failed at numbers.txt:1:6: wrong char "o" (u+6f)
	// 12 7 oops
	//      ^
}
