package store

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash/v2"
)

var seed = maphash.MakeSeed()

// hashKey returns the shard hash of a key.
//
// Strings and fixed-size scalars go through xxhash. Everything else
// (structs, arrays, pointers, channels, named types) falls back to
// maphash.Comparable, which agrees with == for every comparable type.
func hashKey[K comparable](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return xxhash.Sum64String(k)
	case int:
		return hashUint64(uint64(k))
	case int8:
		return hashUint64(uint64(k))
	case int16:
		return hashUint64(uint64(k))
	case int32:
		return hashUint64(uint64(k))
	case int64:
		return hashUint64(uint64(k))
	case uint:
		return hashUint64(uint64(k))
	case uint8:
		return hashUint64(uint64(k))
	case uint16:
		return hashUint64(uint64(k))
	case uint32:
		return hashUint64(uint64(k))
	case uint64:
		return hashUint64(k)
	case uintptr:
		return hashUint64(uint64(k))
	case float32:
		return hashFloat(float64(k))
	case float64:
		return hashFloat(k)
	case bool:
		if k {
			return hashUint64(1)
		}
		return hashUint64(0)
	default:
		return maphash.Comparable(seed, key)
	}
}

func hashUint64(v uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return xxhash.Sum64(buf[:])
}

// -0 == +0, so both must land on the same shard.
func hashFloat(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return hashUint64(math.Float64bits(f))
}

func getIndexByHash[K comparable](key K, mask uint64) int {
	return int(hashKey(key) & mask)
}
