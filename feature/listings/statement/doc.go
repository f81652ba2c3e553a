// Package statement renders listings as portable INSERT statements for the
// imoveis table, for offline loading and inspection.
package statement
