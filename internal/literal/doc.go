// Package literal decodes the raw text of GraphQL literal tokens: quoted
// strings, block strings, integers and floats. Functions are pure and never
// panic on malformed input; they return *Error instead.
package literal
