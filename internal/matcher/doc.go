// Package matcher turns declarative matcher references (an id plus
// options) into field predicates.
//
// Each registered matcher is a factory: given the rule's options it returns
// a predicate closure, or an error when the options are malformed. Rules are
// compiled once per resolution call and the predicates are then evaluated
// for every field.
package matcher
