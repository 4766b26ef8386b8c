// Package document provides guard.Document implementations: an in-memory
// Values map and an HTML page parsed with golang.org/x/net/html whose control
// lookup follows browser querySelector semantics.
package document
