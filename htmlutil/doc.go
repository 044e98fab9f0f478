// Package htmlutil holds the stateless predicates shared by the streaming
// HTML and JavaScript helpers: character classes, attribute classification,
// regexp-prefix keywords, ASCII escaping and meta refresh URL detection.
//
// Every table in this package is built at program start and never mutated,
// so all functions are safe for concurrent use.
package htmlutil
