/*

Package ledger defines the interfaces shared by every extension in this
repository: storage, transactions, messages, handlers and the context helpers
that carry the current block height and logger. Look into this package for a
brief overview of the building blocks the contract modules under x/ are
assembled from.

*/

package ledger
