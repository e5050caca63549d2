package rtlfix_test

import (
	"fmt"

	"github.com/npillmayer/rtlfix"
)

func ExampleProcessLeafText() {
	out := rtlfix.ProcessLeafText("ABC دنیا")
	fmt.Printf("%U\n", []rune(out))
	// Output: [U+FE8E U+FBFF U+FEE7 U+FEA9 U+0020 U+0041 U+0042 U+0043]
}

func ExampleProcessor() {
	p := rtlfix.NewProcessor(rtlfix.WithMode(rtlfix.ModeReverse))
	fmt.Println(p.Process("Press {0} سلام"))
	// Output: مالس {0} Press
}
