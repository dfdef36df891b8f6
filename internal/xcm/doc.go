// Package xcm decodes version-tagged cross-consensus messages.
//
// Ownership boundary:
// - version discriminant dispatch
// - decode limits
// - mapping decoder failures to DecodeError
//
// Per-version instruction sets live in the v2 and v3 subpackages.
package xcm
