package sparsecs

import (
	"math/bits"
	"strconv"
)

// Identifier is the set of integer types an entity handle can be built on.
// Any named type over uint32 or uint64 qualifies, and every distinct named
// type gets its own World inside a Universe.
//
// A 32-bit identifier packs a 20-bit index with a 12-bit version. A 64-bit
// identifier packs a 32-bit index with a 32-bit version.
type Identifier interface {
	~uint32 | ~uint64
}

// Entity is the base identifier type: 32-bit index, 32-bit version.
type Entity uint64

// Entity32 is the compact identifier type: 20-bit index, 12-bit version.
type Entity32 uint32

const (
	entity32IndexBits = 20
	entity64IndexBits = 32
)

// IndexBits returns the width of the index field for E.
func IndexBits[E Identifier]() uint {
	if bits.OnesCount64(uint64(^E(0))) == 32 {
		return entity32IndexBits
	}
	return entity64IndexBits
}

// IndexMask returns the all-ones index pattern for E. It doubles as the null
// index sentinel.
func IndexMask[E Identifier]() E {
	return E(1)<<IndexBits[E]() - 1
}

// VersionMask returns the all-ones version pattern for E.
func VersionMask[E Identifier]() E {
	return ^E(0) >> IndexBits[E]()
}

// IndexOf extracts the index field of v.
func IndexOf[E Identifier](v E) E {
	return v & IndexMask[E]()
}

// VersionOf extracts the version field of v.
func VersionOf[E Identifier](v E) E {
	return v >> IndexBits[E]()
}

// Construct packs an index and a version into one identifier. Both fields
// are truncated to their widths.
func Construct[E Identifier](index, version E) E {
	return (index & IndexMask[E]()) | ((version & VersionMask[E]()) << IndexBits[E]())
}

// NextVersion returns v with its version incremented. The all-ones version
// is never produced: the counter wraps to zero instead.
func NextVersion[E Identifier](v E) E {
	next := VersionOf(v) + 1
	if next == VersionMask[E]() {
		next = 0
	}
	return Construct(IndexOf(v), next)
}

// Null returns the null identifier: index and version both all-ones.
func Null[E Identifier]() E {
	return Construct(IndexMask[E](), VersionMask[E]())
}

// IsValid reports whether the index field of v is not the null sentinel.
func IsValid[E Identifier](v E) bool {
	return IndexOf(v) != IndexMask[E]()
}

// IsSame reports whether a and b are both valid and bit-identical. A stale
// handle never compares the same as the entity that recycled its index.
func IsSame[E Identifier](a, b E) bool {
	return IsValid(a) && IsValid(b) && a == b
}

// FormatEntity renders v as "index:version", or "null".
func FormatEntity[E Identifier](v E) string {
	if !IsValid(v) {
		return "null"
	}
	return strconv.FormatUint(uint64(IndexOf(v)), 10) + ":" + strconv.FormatUint(uint64(VersionOf(v)), 10)
}
