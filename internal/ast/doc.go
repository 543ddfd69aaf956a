// Package ast defines the GraphQL value, type and directive nodes.
//
// All nodes are generic over a text.Text policy. A tree built over
// text.Borrowed aliases the source buffer; OwnValue, OwnType and
// OwnDirective produce an independent text.Owned copy. Nodes are immutable
// once the parser returns them.
package ast
