/*
Package username implements a two-way name to address registry.

Each name resolves to exactly one address and each address holds at
most one name. Registration is first come first served. An optional
administrator can reclaim names.
*/
package username
