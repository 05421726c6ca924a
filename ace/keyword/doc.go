// Package keyword lists the statement pragmas, attribute pragmas, symbols and
// snippets of the ACE configuration language.
//
// Code must not depend on the order of a list: use the named constant
// (for example AttrTimeoutCycle) instead of indexing into a list.
package keyword
