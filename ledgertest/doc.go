// Package ledgertest provides mocks and helpers for testing modules.
package ledgertest
