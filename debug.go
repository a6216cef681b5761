// Copyright (c) 2026 Yan Qianyu
//
// MIT License

//go:build debug

package etable

import (
	"log"
	"os"
)

const _DEBUG bool = true
const _LOGLEVEL int = 1

// ******************************************************************************************************

func init() {
	log.SetOutput(os.Stdout)
}

// ******************************************************************************************************

// logTables dumps the bucket structure of every sub-table, including the
// recorded hash of each bin, which Display does not show.
func (t *Table) logTables() {
	for id, s := range t.tables {
		log.Printf("table %-2d %s (%s), %d entries\n", id, s.decl, s.kind, s.set.count())
		for k, b := range s.set.bins {
			for ; b != nil; b = b.next {
				log.Printf("  bin %-4d #%-10d %v\n", k, b.hash, b.elt)
			}
		}
	}
}
