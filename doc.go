// Copyright (c) 2026 Yan Qianyu
//
// MIT License

/*
Package etable implements a congruence table: the associative data structure
at the heart of congruence closure over ground terms built from uninterpreted
function symbols. The table indexes E-nodes (applied terms f(a1,...,ak)) by
the equivalence-class roots of their arguments, so that two terms with the
same top symbol and pairwise-equal argument classes are detected as congruent
in amortized constant time.

Basics

The package exposes a single entry point, New, which returns an empty Table.
The table does not own terms, nor does it maintain equivalence classes; both
belong to the enclosing E-graph engine. Terms reach the table through the
Node interface, which is the exact contract the table consumes: a declaration
handle, the argument list, the current class root of each argument, and a
scratch "table id" slot that the table uses to route a node back to the same
physical sub-table even after its arguments changed class.

Internally the table keeps one hash set per function declaration, specialized
by arity and by commutativity: unary, binary, binary-commutative and n-ary
sub-tables share the same chained hash set and differ only in their hash and
equality functions. A sub-table is allocated the first time a declaration is
seen; its index is recorded on the node through SetTableID.

Insert either stores the node and returns it, or finds a congruent node
already present and returns that one. The second result of Insert tells
whether the match needed to swap the two arguments of a commutative symbol;
the engine uses this to produce explanations.

Interaction with class merges

Keys depend on argument roots, and roots change when the engine merges two
classes. The table never rehashes on its own. The engine must follow the
usual re-insertion protocol: erase every affected parent node, commit the
merge, then insert the parents back and compare each insertion result against
the current class representative. Between the erase and the matching insert
no lookup for that node's key may be performed. Erasing before the merge is
essential since an erase after the roots moved would probe the wrong bucket.

Use of build tags

Compiling with the build tag `debug` turns on internal assertions (fail-fast
on contract violations such as inserting a constant), counters for accesses,
hits and misses on the sub-tables, reported by Stats, and logging of
sub-table allocations and resizes.

The package is written in pure Go, without CGo or any other dependencies.
*/
package etable
