// Package app assembles registered module handlers behind a router and
// a configurable decorator chain.
package app
