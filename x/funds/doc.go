/*
Package funds defines a simple single-token account model and the
controller other modules use to move value between accounts.

Every account is keyed by its address and holds one balance. The
Controller is the only place balances change, so all transfer rules
live here.
*/
package funds
