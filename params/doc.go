// Package params implements the coercion and validation engine at the core
// of paramtools.
//
// The engine is transport-agnostic: it knows nothing about HTTP requests,
// query strings, or routing. Callers (such as the binding package) extract a
// RawInput from their transport and pass it to Validate together with an
// immutable ParameterSpec; the engine returns either a strongly typed value
// or a structured failure from the paramerrors package.
//
// # Pipeline
//
// Validate runs three layers in strict order:
//
//  1. Configuration validation: the spec itself is checked before any input
//     is read. A bad spec is a *paramerrors.ConfigError regardless of input.
//  2. Presence resolution: an absent input either fails (required) or
//     short-circuits with the spec's Default, returned verbatim with no
//     coercion or constraint checking. An empty string is present, not
//     absent.
//  3. Coercion and constraint checking: the raw string is converted to the
//     spec's Kind and checked against its constraints. Array specs apply
//     MinItems/MaxItems to the sequence, then run the same single-value
//     procedure per element in order, failing fast on the first bad element.
//
// Constraint ordering is significant: conversion precedes range/length
// checks, which precede choices. When Choices is configured it fully
// supersedes the range/length checks rather than running alongside them,
// and a matching value is remapped through ChoicesMapping when one is set.
//
// # Concurrency
//
// The engine is stateless and purely synchronous. A ParameterSpec is safe
// to share across goroutines as long as it is not mutated after
// construction.
package params
