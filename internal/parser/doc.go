// Package parser implements the GraphQL value, type and directive grammar
// over a token stream.
//
// Productions are generic over the text policy of the nodes they build and
// backtrack by resetting the Stream to a Mark. A production that fails
// leaves the stream where it found it.
package parser
