// Package frame provides the in-memory data model the resolver works on:
// frames of equally long, named and typed fields.
//
// Frames are treated as read-only by the resolver. Resolution produces new
// Frame and Field values that share the underlying value vectors.
package frame
