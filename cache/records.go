// SPDX-License-Identifier: MIT

package cache

import (
	"context"
	"fmt"
	"math/big"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/zonotope/halfspace"
)

// volumeRecord stores a volume as numerator and denominator text.
type volumeRecord struct {
	Num string `msgpack:"num"`
	Den string `msgpack:"den"`
}

// hyperplaneRecord stores one integer halfspace.
type hyperplaneRecord struct {
	Offset      string   `msgpack:"o"`
	Normal      []string `msgpack:"n"`
	Combination []int    `msgpack:"c,omitempty"`
}

// halfspacesRecord stores a full facet list in its sorted order.
type halfspacesRecord struct {
	Planes []hyperplaneRecord `msgpack:"planes"`
}

// VolumeKey is the key of the volume of the generators with this digest.
func VolumeKey(digest string) Key {
	return Key{Namespace, "volume", digest}
}

// HalfspacesKey is the key of the facet list of the generators with this
// digest. Lists with and without combinations are stored separately.
func HalfspacesKey(digest string, withCombinations bool) Key {
	kind := "halfspaces"
	if withCombinations {
		kind = "halfspaces+comb"
	}

	return Key{Namespace, kind, digest}
}

// GetVolume loads a cached volume. It returns ErrNotFound on a miss and
// ErrCorrupt when the record cannot be decoded.
func GetVolume(ctx context.Context, s Store, digest string) (*big.Rat, error) {
	data, err := s.Get(ctx, VolumeKey(digest))
	if err != nil {
		return nil, err
	}
	var rec volumeRecord
	if err = msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: volume %s: %v", ErrCorrupt, digest, err)
	}
	num, ok := new(big.Int).SetString(rec.Num, 10)
	if !ok {
		return nil, fmt.Errorf("%w: volume %s: numerator %q", ErrCorrupt, digest, rec.Num)
	}
	den, ok := new(big.Int).SetString(rec.Den, 10)
	if !ok || den.Sign() == 0 {
		return nil, fmt.Errorf("%w: volume %s: denominator %q", ErrCorrupt, digest, rec.Den)
	}

	return new(big.Rat).SetFrac(num, den), nil
}

// PutVolume stores v under the digest.
func PutVolume(ctx context.Context, s Store, digest string, v *big.Rat) error {
	data, err := msgpack.Marshal(volumeRecord{Num: v.Num().String(), Den: v.Denom().String()})
	if err != nil {
		return fmt.Errorf("cache: encode volume: %w", err)
	}

	return s.Set(ctx, VolumeKey(digest), data)
}

// GetHalfspaces loads a cached facet list. It returns ErrNotFound on a
// miss and ErrCorrupt when the record cannot be decoded.
func GetHalfspaces(ctx context.Context, s Store, digest string, withCombinations bool) ([]halfspace.Hyperplane[*big.Int], error) {
	data, err := s.Get(ctx, HalfspacesKey(digest, withCombinations))
	if err != nil {
		return nil, err
	}
	var rec halfspacesRecord
	if err = msgpack.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: halfspaces %s: %v", ErrCorrupt, digest, err)
	}

	out := make([]halfspace.Hyperplane[*big.Int], len(rec.Planes))
	for i, p := range rec.Planes {
		off, ok := new(big.Int).SetString(p.Offset, 10)
		if !ok {
			return nil, fmt.Errorf("%w: halfspaces %s: plane %d offset %q", ErrCorrupt, digest, i, p.Offset)
		}
		normal := make([]*big.Int, len(p.Normal))
		for r, txt := range p.Normal {
			if normal[r], ok = new(big.Int).SetString(txt, 10); !ok {
				return nil, fmt.Errorf("%w: halfspaces %s: plane %d coordinate %d %q", ErrCorrupt, digest, i, r, txt)
			}
		}
		out[i] = halfspace.Hyperplane[*big.Int]{Offset: off, Normal: normal, Combination: p.Combination}
	}

	return out, nil
}

// PutHalfspaces stores a facet list under the digest, preserving its order.
func PutHalfspaces(ctx context.Context, s Store, digest string, withCombinations bool, hs []halfspace.Hyperplane[*big.Int]) error {
	rec := halfspacesRecord{Planes: make([]hyperplaneRecord, len(hs))}
	for i, h := range hs {
		normal := make([]string, len(h.Normal))
		for r, x := range h.Normal {
			normal[r] = x.String()
		}
		rec.Planes[i] = hyperplaneRecord{Offset: h.Offset.String(), Normal: normal, Combination: h.Combination}
	}
	data, err := msgpack.Marshal(rec)
	if err != nil {
		return fmt.Errorf("cache: encode halfspaces: %w", err)
	}

	return s.Set(ctx, HalfspacesKey(digest, withCombinations), data)
}
