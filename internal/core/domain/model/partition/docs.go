// Package partition provides the exclusive-ownership tables at the heart of
// the geographic service-area engine. It implements the Table aggregate root
// that maps region codes (provinces or cities) to the single warehouse
// authoritative for serving them.
//
// The package includes:
//   - Table: The aggregate root holding one kind's region→warehouse map,
//     mutated only through full-set Replace scoped to one warehouse
//   - Kind: The key-space selector (province vs city)
//   - ConflictError: A rejected write naming every region that collides with
//     another warehouse's existing ownership
//
// Key business rules:
//   - A region code maps to at most one warehouse at any time
//   - Replace is atomic and all-or-nothing against the committed state
//   - Conflicts report the complete collision list, never just the first
//   - Resubmitting an already-committed set succeeds and changes nothing
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package partition
