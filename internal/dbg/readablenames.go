package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary ids into random readable names, generated lazily
// and memoized. Helpful for telling triangles or arena slots apart when
// staring at debug output.

var memo map[int]string

func init() {
	memo = make(map[int]string)
	// Names are generated in order of demand, so make them nondeterministic
	// to remind the user that the same name doesn't refer to the same thing
	// between runs.
	petname.NonDeterministicMode()
}

func Name(id int) string {
	if r, ok := memo[id]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[id] = r
	return r
}
