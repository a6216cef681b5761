// Copyright (c) 2026 Yan Qianyu
//
// MIT License

package etable

import "fmt"

// NoTableID is the initial value of the table id slot of a node. A node
// carrying this value has never been routed by a Table; the first operation
// on it allocates or finds the sub-table for its declaration and stamps the
// slot through SetTableID.
const NoTableID = ^uint32(0)

// Node is the view of an E-node consumed by the congruence table. The table
// never mutates a node except for its table id slot, of which it is the sole
// writer. Implementations must have pointer identity: two Node values are
// the same node exactly when they compare equal with ==.
type Node interface {
	// Decl returns the function declaration of the node. All nodes stored
	// in the same sub-table share the same declaration.
	Decl() *Decl

	// NumArgs returns the number of arguments of the node. Only nodes with
	// at least one argument belong in a congruence table; constants are
	// interned by pointer identity in the engine.
	NumArgs() int

	// Arg returns the i'th argument of the node.
	Arg(i int) Node

	// Root returns the representative of the node's current equivalence
	// class. It is pointer-equal across the class and changes over time as
	// the engine merges classes.
	Root() Node

	// Hash returns a precomputed hash of the node. The table only uses it
	// as a class fingerprint, through Arg(i).Root().Hash(), so the single
	// requirement is that nodes of the same class have roots with the same
	// hash.
	Hash() uint32

	// TableID returns the value of the table id slot, NoTableID if it was
	// never set.
	TableID() uint32

	// SetTableID stores id in the table id slot.
	SetTableID(id uint32)
}

// ************************************************************

// Decl is a function-symbol handle: an uninterpreted symbol with a fixed
// arity and a commutativity flag. Declarations are compared by pointer, so
// the engine must allocate exactly one Decl per symbol and reuse it for
// every application of that symbol.
type Decl struct {
	name  string
	arity int
	comm  bool
}

// NewDecl returns a fresh declaration handle. The name is only used for
// display. Commutative declarations must be binary.
func NewDecl(name string, arity int, commutative bool) *Decl {
	return &Decl{name: name, arity: arity, comm: commutative}
}

// Name returns the symbol name of the declaration.
func (d *Decl) Name() string { return d.name }

// Arity returns the number of arguments of the symbol.
func (d *Decl) Arity() int { return d.arity }

// Commutative reports whether the symbol was declared commutative.
func (d *Decl) Commutative() bool { return d.comm }

func (d *Decl) String() string {
	return fmt.Sprintf("%s/%d", d.name, d.arity)
}
