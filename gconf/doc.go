/*
Package gconf keeps per-package configuration singletons in the
database.

Each package stores at most one configuration object, under the key
"_c:<package>". Initialization from genesis happens exactly once and any
further attempt fails with ErrInitialized.
*/
package gconf
