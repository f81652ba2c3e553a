// Package utils provides common conversion helpers shared by the feed
// normalization and the listing mapping: tolerant boolean parsing, defaulting of
// optional values and joining of optional segments.
package utils
