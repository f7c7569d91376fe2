// Package raid6 implements an EVENODD-family diagonal-plus-row parity
// erasure-coding engine: disk 0 holds diagonal parity, disk 1 holds row
// parity, disks 2..D-1 hold data, and up to two missing disks can be
// reconstructed in place from the survivors.
//
// The scheme relies only on XOR over a prime P (P = 2^n+1, reference
// configuration P=17) for diagonal closure; it never performs a
// Galois-field multiplication. An Engine owns a process-wide dispatch
// table, built once on first use, mapping (numDisk, miss1, miss2) to the
// stripe operator that recovers it.
package raid6
