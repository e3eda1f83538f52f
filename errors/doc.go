/*

Package errors implements custom error kinds for the whole application.

Each returned error is built from a registered root error. The root carries a
unique code and a short description and is the value to test against using the
Is method. Errors created during runtime wrap a root error with additional
context:

  errors.Wrap(errors.ErrNotFound, "vault")

Extensions register their own root errors using the Register function with a
code from a range reserved for that package.

*/
package errors
