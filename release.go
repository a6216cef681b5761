// Copyright (c) 2026 Yan Qianyu
//
// MIT License

//go:build !debug

package etable

const _DEBUG bool = false
const _LOGLEVEL int = 0

// logTables dumps the bucket structure of the sub-tables in debug builds; it
// does nothing here.
func (t *Table) logTables() {}
