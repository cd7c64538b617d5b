// Package documents loads study documents for flashcard generation.
//
// A source is either a local path or an s3://bucket/key URI. Only plain text
// (.txt) and Markdown (.md) documents are accepted.
package documents
