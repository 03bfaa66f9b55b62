// Package serializer synthesizes field adapters from document schemas.
//
// Overview
//   - Build: derive the adapter for a schema field given a depth budget and
//     override hooks. Embedded kinds produce nested serializers; scalar kinds
//     fall back to the standard-field path; a zero budget produces the
//     terminal Placeholder.
//   - Nested: the derived serializer mirroring a target schema's fields, each
//     embedded sub-field built with one less depth.
//   - EmbeddedField / GenericField / ListField: the adapters wrapping a
//     nested serializer for a single attribute, a polymorphic attribute
//     (dispatching by the "_cls" tag per conversion call), and an ordered
//     sequence with per-index error collection.
//   - Overrides: dependency-injected strategy substitution (custom adapter
//     classes, a custom nested-serializer builder, a custom scalar builder,
//     explicit per-field instances).
//
// Termination: self- and mutually-recursive schemas are safe because the
// depth budget strictly decreases at each embedding level and Build returns
// a Placeholder once it reaches zero.
//
// Write semantics: Nested.Internal always constructs a fresh value with every
// attribute at its schema default and copies in only what the payload
// provides. Updating an existing record therefore replaces the whole embedded
// subtree; nothing from the prior value leaks through.
package serializer
