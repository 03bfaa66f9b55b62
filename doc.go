// Package docser derives field serializers from document schemas so that
// schema-defined documents convert to and from plain key/value payloads with
// validation, nesting and replace-on-update semantics.
//
// The interesting part lives in the serializer package: given a schema field
// that embeds another document (fixed-type, polymorphic or recursive), it
// synthesizes a nested serializer automatically, bounded by an explicit depth
// budget and dispatching polymorphic values by their discriminator tag.
//
// Design policy:
// - Keep only public contracts in the root package (Adapter, the Issue error
//   model); put implementations under schema/, serializer/, codec/ and
//   docstore/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	reg := schema.NewRegistry()
//	// declare schemas, then compose a host serializer
//	ser, err := docstore.New(doc, reg, docstore.Options{Depth: 1})
//	val, err := ser.Validate(ctx, payload)
package docser
