/*
Package vault implements time-locked yield positions.

A depositor locks a principal for a chosen number of days. At creation
the current annual yield rate is frozen into the vault, so later rate
changes never affect it. Once the lock matures the owner withdraws
principal plus accrued yield in a single shot. Withdrawn vaults stay in
the store as an audit trail.

Funds are held by the module's own custody account and only move
through the funds controller.
*/
package vault
