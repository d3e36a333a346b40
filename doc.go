// Package ascon is the top-level module for a NIST SP 800-232 Ascon
// implementation: the 320-bit permutation (package permutation), its two
// sponge drivers (packages hashsponge and aeadsponge), and the four
// end-user schemes built on them (packages hash256, xof128, cxof128, and
// aead128). There is no code at this path; import the subpackage you
// need.
package ascon
