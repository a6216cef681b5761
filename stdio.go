// Copyright (c) 2026 Yan Qianyu
//
// MIT License

package etable

import (
	"fmt"
	"io"
	"os"
)

// stats returns occupancy information about the table.
func (t *Table) stats() string {
	var kinds [4]int
	for _, s := range t.tables {
		kinds[s.kind]++
	}
	res := fmt.Sprintf("Sub-tables: %d\n", len(t.tables))
	res += fmt.Sprintf("Unary:      %d\n", kinds[unaryTable])
	res += fmt.Sprintf("Binary:     %d\n", kinds[binaryTable])
	res += fmt.Sprintf("Comm:       %d\n", kinds[commTable])
	res += fmt.Sprintf("Nary:       %d\n", kinds[naryTable])
	res += fmt.Sprintf("Entries:    %d", t.Count())
	return res
}

// Stats returns a textual report on the table: number of sub-tables per
// variant and total occupancy. Builds with the debug tag also report the
// number of insertions and how many of them found a congruent node.
func (t *Table) Stats() string {
	res := t.stats()
	if _DEBUG {
		res += fmt.Sprintf("\nAccesses:   %d\n", t.accesses)
		res += fmt.Sprintf("Hits:       %d\n", t.hits)
		res += fmt.Sprintf("Misses:     %d", t.misses)
	}
	return res
}

// PrintStats outputs the result of Stats on the standard output. Builds with
// the debug tag also dump the bucket structure of every sub-table.
func (t *Table) PrintStats() {
	fmt.Println("==============")
	fmt.Println(t.Stats())
	if _DEBUG {
		fmt.Println("==============")
		t.logTables()
	}
	fmt.Println("==============")
}

// ************************************************************

// Display writes a dump of the table on w, grouped by sub-table in
// allocation order, each keyed by its declaration. Entries print with the
// %v verb of their implementation. The format is meant for debugging and
// may change.
func (t *Table) Display(w io.Writer) {
	for _, s := range t.tables {
		fmt.Fprintf(w, "table %s (%s), %d entries:\n", s.decl, s.kind, s.set.count())
		s.set.each(func(n Node) {
			fmt.Fprintf(w, "\t%v\n", n)
		})
	}
}

// PrintAll writes the dump produced by Display on the standard output.
func (t *Table) PrintAll() {
	t.Display(os.Stdout)
}
