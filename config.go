// Copyright (c) 2026 Yan Qianyu
//
// MIT License

package etable

// _DEFAULTTABLESIZE is the default initial bucket count of a sub-table. The
// value is rounded up to a prime at allocation.
const _DEFAULTTABLESIZE int = 16

// _DEFAULTDECLSIZE is the default capacity hint for the declaration index.
const _DEFAULTDECLSIZE int = 64

// configs is used to store the values of the different parameters of the
// congruence table.
type configs struct {
	tablesize int // initial bucket count of each new sub-table
	declsize  int // capacity hint for the declaration index
}

func makeconfigs() *configs {
	return &configs{
		tablesize: _DEFAULTTABLESIZE,
		declsize:  _DEFAULTDECLSIZE,
	}
}

// Tablesize is a configuration option (function). Used as a parameter in New
// it sets the initial bucket count of every sub-table subsequently
// allocated. Sub-tables grow on their own when their load factor passes 3/4,
// so the value only matters for the allocation churn of the first few
// insertions; it is rounded up to a prime.
func Tablesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.tablesize = size
		}
	}
}

// Declsize is a configuration option (function). Used as a parameter in New
// it gives a capacity hint for the mapping from declarations to sub-tables,
// useful when the number of function symbols of the problem is known in
// advance. The default is 64.
func Declsize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.declsize = size
		}
	}
}
