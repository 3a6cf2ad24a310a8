// Package extension provides the run-time registries that let the engine
// work with its execution backends and their Go input/output types.
//
// The registries are normally populated through the public APIs under the
// root tutor package, therefore most applications do not need to import
// this package directly.
package extension
