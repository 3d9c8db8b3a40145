package scan_test

import (
	"fmt"

	"github.com/keremsonmez/clippatch/pkg/scan"
)

func ExampleFindAll() {
	// Two metadata runs separated by binary bytes, as found in a clip file.
	clip := []byte("\x00\x01PLYR_mikey\x00\x02\x03qua_beach_run\x00")

	patterns := scan.CompileAll([]string{"qua_*", "mikey"}, false)
	for _, m := range scan.FindAll(clip, patterns) {
		fmt.Printf("%q at offset %d (pattern %q)\n", m.Text, m.Offset, m.Pattern)
	}

	// Output:
	// "qua_beach_run" at offset 15 (pattern "qua_*")
	// "mikey" at offset 7 (pattern "mikey")
}

func ExamplePattern_FindMatches() {
	p := scan.Compile("Test", true)

	for _, m := range p.FindMatches([]byte("a Test, a test and a TesT")) {
		fmt.Printf("%q at offset %d\n", m.Text, m.Offset)
	}

	// Output:
	// "Test" at offset 2
	// "test" at offset 10
}
