package snap

import "errors"

// Sentinel errors for the snap package.
//
// Connection errors report programming contract violations: a caller that
// attempts an illegal connection was expected to check compatibility first.
// They abort the attempted operation and are never retried.
var (
	// ErrSelfConnection is returned when connecting a block to itself.
	ErrSelfConnection = errors.New("snap: attempted to connect a block to itself")

	// ErrIncompatible is returned when the compatibility checker rejects
	// a connection pair.
	ErrIncompatible = errors.New("snap: connection checks are not compatible")

	// ErrWrongKind is returned when two connections of non-opposite kinds
	// are connected (for example, output to output).
	ErrWrongKind = errors.New("snap: connection kinds are not opposite")

	// ErrAlreadyConnected is returned when the inferior connection of a
	// pair already has a target. The superior side may be reconnected
	// (displacing its current child); the inferior side may not.
	ErrAlreadyConnected = errors.New("snap: connection is already connected")

	// ErrNotConnected is returned by Disconnect on an unconnected connection.
	ErrNotConnected = errors.New("snap: connection is not connected")

	// ErrShadowRespawn is returned when a shadow block fails to
	// materialize after a disconnect.
	ErrShadowRespawn = errors.New("snap: shadow block failed to respawn")

	// ErrDisposed is returned by operations on a disposed block.
	ErrDisposed = errors.New("snap: block has been disposed")
)
