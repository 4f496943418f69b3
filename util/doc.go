// Package util provides small generic helpers shared across prockit
// packages: slice membership checks, zero-value coalescing, string
// sanitization, and common validation helpers.
package util
