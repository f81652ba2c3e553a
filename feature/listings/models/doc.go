// Package models holds the listing types shared by the source, mapping, store
// and statement packages.
//
// Listing is the string-typed record exactly as the feed delivers it after
// defaulting. Row is its typed, normalized form and doubles as the gorm model
// for the imoveis table. Row.Columns is the single ordered column list used by
// both the store and the SQL export, so the two cannot drift apart.
package models
