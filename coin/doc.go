/*
Package coin implements the token amounts moved around by the ledger.

Amounts are non-negative 128 bit integers. All arithmetic is checked and
reports overflow instead of wrapping.
*/
package coin
