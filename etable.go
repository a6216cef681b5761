// Copyright (c) 2026 Yan Qianyu
//
// MIT License

package etable

import "log"

// Table is a congruence table: one sub-table per function declaration,
// allocated lazily and owned by the Table. Nodes are not owned; the table
// keeps handles and only ever writes the table id slot of a node. A Table is
// not safe for concurrent use.
type Table struct {
	tables    []*subtable      // sub-tables, indexed by the id stamped on nodes
	declid    map[*Decl]uint32 // declaration -> index in tables
	tablesize int              // initial bucket count of new sub-tables
	declsize  int              // capacity hint for declid
	tableStats
}

// tableStats stores status information about table usage. The counters are
// only incremented in debug builds.
type tableStats struct {
	accesses int // calls to Insert
	hits     int // insertions that found a congruent node
	misses   int // insertions that stored the node
}

// New returns an empty congruence table. See Tablesize and Declsize for the
// available configuration options.
func New(options ...func(*configs)) *Table {
	c := makeconfigs()
	for _, f := range options {
		f(c)
	}
	return &Table{
		declid:    make(map[*Decl]uint32, c.declsize),
		tablesize: c.tablesize,
		declsize:  c.declsize,
	}
}

// ************************************************************

// stamp allocates or finds the sub-table for the declaration of n and
// records its index in the table id slot of n.
func (t *Table) stamp(n Node) uint32 {
	d := n.Decl()
	id, ok := t.declid[d]
	if !ok {
		id = uint32(len(t.tables))
		t.tables = append(t.tables, newSubtable(d, t.tablesize))
		t.declid[d] = id
		if _LOGLEVEL > 0 {
			log.Printf("new %s sub-table for %s\n", t.tables[id].kind, d)
		}
	}
	n.SetTableID(id)
	return id
}

// subtableFor routes a node to its sub-table. Ids stamped before a Reset are
// out of range right after it and get re-stamped here, like fresh ones. Once
// sub-tables have been allocated again a stale id can be back in range; it is
// then used as is, and debug builds panic when it leads to a sub-table of
// another declaration.
func (t *Table) subtableFor(n Node) *subtable {
	id := n.TableID()
	if id == NoTableID || int(id) >= len(t.tables) {
		id = t.stamp(n)
	}
	s := t.tables[id]
	if _DEBUG && s.decl != n.Decl() {
		log.Panicf("table id %d routes %s node to a %s sub-table", id, n.Decl(), s.decl)
	}
	return s
}

// ************************************************************

// Insert adds n to the table unless a node congruent to n is already
// present. It returns n itself and false when n was stored, or the stored
// congruent node together with a flag telling whether the congruence needed
// to swap the arguments of a commutative symbol. Insert never changes
// equivalence classes.
func (t *Table) Insert(n Node) (Node, bool) {
	if _DEBUG {
		if n.NumArgs() < 1 {
			log.Panicf("insert of constant node in congruence table")
		}
		t.accesses++
	}
	r, m := t.subtableFor(n).set.insert(n)
	if _DEBUG {
		if m == mismatch {
			t.misses++
		} else {
			t.hits++
		}
	}
	return r, m == matchedSwapped
}

// Erase removes the node congruent to n from its sub-table. Erasing a node
// that is not present is a no-op. The argument roots of n must not have
// changed since the insertion, which is what the erase-merge-reinsert
// protocol of the engine guarantees.
func (t *Table) Erase(n Node) {
	if _DEBUG && n.TableID() == NoTableID {
		log.Panicf("erase of node with unset table id")
	}
	t.subtableFor(n).set.erase(n)
}

// Contains reports whether a node congruent to n is present.
func (t *Table) Contains(n Node) bool {
	return t.subtableFor(n).set.contains(n)
}

// Find returns the stored node congruent to n, or nil when there is none.
func (t *Table) Find(n Node) Node {
	r, m := t.subtableFor(n).set.find(n)
	if m == mismatch {
		return nil
	}
	return r
}

// ContainsPtr reports whether n itself, and not merely a node congruent to
// it, is the stored representative. The engine uses this to decide whether a
// node is canonical for its congruence class.
func (t *Table) ContainsPtr(n Node) bool {
	r, m := t.subtableFor(n).set.find(n)
	return m != mismatch && r == n
}

// Count returns the total number of nodes stored across all sub-tables.
func (t *Table) Count() int {
	res := 0
	for _, s := range t.tables {
		res += s.set.count()
	}
	return res
}

// Reset drops every sub-table and forgets every declaration. Table ids
// stamped on nodes before the call become invalid; routing detects them as
// out of range and re-stamps, so a lookup immediately after Reset reports
// the node absent.
func (t *Table) Reset() {
	t.tables = t.tables[:0]
	t.declid = make(map[*Decl]uint32, t.declsize)
}
