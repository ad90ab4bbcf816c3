// Package engine implements the core of the chessplusplus chess engine:
// the piece and square model, the padded-grid position representation,
// Zobrist hashing, pseudo-legal/legal move generation, make/unmake, static
// evaluation, FEN interchange and a perft correctness harness.
//
// The board is represented as a 15x15 padded mailbox (225 cells) so that
// every ray direction — file, rank, diagonal or knight leap — is a single
// signed integer offset, and running off the playable 8x8 area is detected
// by colliding with a sentinel cell rather than bounds-checking rank/file
// separately. See Position for the mutable game state and Shift/Corner for
// how the inner board is addressed inside the padded frame.
package engine
