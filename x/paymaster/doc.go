/*
Package paymaster implements fee sponsorship with an allow-list.

The administrator maintains a list of sponsored addresses and a pooled
balance. Fees for allowed addresses are paid out of the pool on the
administrator's request.
*/
package paymaster
