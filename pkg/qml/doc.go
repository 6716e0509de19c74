// Package qml parses a restricted, line-oriented subset of the QML syntax
// into a document tree that terminal frontends can walk.
//
// The parser is deliberately permissive: malformed lines are skipped,
// unmatched closing braces are tolerated, and ParseString never fails.
// Callers routinely feed it partially written documents, so degrading
// gracefully is part of the contract, not an oversight.
package qml
