/*
Package x contains the modules of the ledger along with shared
authentication helpers.

Each module lives in its own subpackage with its messages, models and
handlers. Handlers receive an Authenticator so the signature scheme can
be swapped without touching module code.
*/
package x
