/*
Package orm provides a light object layer over a KVStore.

State space is split into named buckets, each holding a single model
type under a reserved key prefix. Buckets can allocate sequential ids
for new entities and iterate over everything they hold.
*/
package orm
