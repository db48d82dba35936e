/*
Package rbrepl/main provides an interactive command line tool (RB.REPL)
for experimenting with ordered sets of integers. Users create named sets,
insert keys, look them up, iterate in both directions and render the
underlying red-black tree on the terminal.

Commands are entered one per line, e.g.

    insert 5 3 8 1 4 7 9
    list
    tree

Enter 'help' for a list of commands.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rbset.repl'
func tracer() tracing.Trace {
	return tracing.Select("rbset.repl")
}
