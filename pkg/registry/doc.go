// Package registry provides a generic, thread-safe registry of named items.
// Pluggable components such as clipboard strategies register themselves in
// one so configuration can refer to them by name.
package registry
