// Package process provides the string normalization layer used to decide when
// two labels are "the same".
//
// A [Transform] is a pure string-to-string function. A [Processor] is an
// immutable, ordered pipeline of transforms applied left to right:
//
//	p := process.New().Lower().RStrip()
//	p.Apply("HELLO  ") // "hello"
//
// Builders never mutate the receiver, so a processor can be shared and
// extended freely.
//
// Transforms also carry registry names so a pipeline can be declared in a
// table file and rebuilt with [Parse]:
//
//	p, err := process.Parse([]string{"lower", "rstrip"})
package process
