package dbg

import (
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable labels for otherwise anonymous values. The demo CLI reads unnamed
// polygons off stdin; giving each one a two-word name makes the output (and
// any saved renderings) much easier to talk about than "polygon 3". Names are
// memoized per key but nondeterministic between runs, to remind the user they
// don't mean anything.

var memo map[interface{}]string

func init() {
	memo = make(map[interface{}]string)
	petname.NonDeterministicMode()
}

func Name(key interface{}) string {
	if r, ok := memo[key]; ok {
		return r
	}
	words := strings.Split(petname.Generate(2, " "), " ")
	for i, word := range words {
		words[i] = strings.Title(word)
	}
	r := strings.Join(words, "")
	memo[key] = r
	return r
}
