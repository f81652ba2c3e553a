// Package mapping turns feed listings into typed rows.
//
// The coercion rules live here once and are shared by the store and the SQL
// export: zero-valued numerics and counters become NULL, flags are true only
// for "1" or "true", feed dates are dd/mm/yyyy, the full address is synthesized
// from its parts, and coded classification values are mapped to labels.
package mapping
