// Package source reads the external listing feed.
//
// Feed performs a single bounded GET through go-retryablehttp (retries are off
// unless configured) and hands the body to Parse. Parse accepts one or many
// <imovel> elements, directly under the root or inside <imoveis>, defaults
// every omitted field and drops entries that lack a code or a title.
package source
