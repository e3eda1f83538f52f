/*
Package custody implements a minimal custodial wallet.

The wallet holds a single pooled balance owned by one configured
address. Anyone can pay in, only the owner can pay out.
*/
package custody
