// Package strictness maintains the open relation between lazy and strict
// representations of the same logical value. Each entry associates an
// ordered (lazy, strict) type pair with the isomorphism converting between
// them. New pairs are added by registration, not by modifying this package.
package strictness

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/optic_ive_go/optics/iso"
	"github.com/on-the-ground/optic_ive_go/shared/helper"
)

// ErrConflictingRegistration is returned when a (lazy, strict) pair is
// registered more than once.
var ErrConflictingRegistration = fmt.Errorf("conflicting strict/lazy registration")

// Entry is a snapshot of one registered pair, for diagnostics. Order of
// snapshots is unspecified.
type Entry struct {
	EntryId string
	Lazy    reflect.Type
	Strict  reflect.Type
}

type entry struct {
	entryId string
	lazy    reflect.Type
	strict  reflect.Type
	iso     any
}

var registry = struct {
	sync.RWMutex
	m map[uint64]entry
}{m: make(map[uint64]entry)}

// RegisterIso associates the ordered (L, S) type pair with the isomorphism
// whose forward direction materializes the lazy representation.
func RegisterIso[L, S any](l iso.Simple[L, S]) error {
	lazy, strict := typeOf[L](), typeOf[S]()
	key := pairKey(lazy, strict)

	registry.Lock()
	defer registry.Unlock()
	if prev, ok := registry.m[key]; ok {
		return fmt.Errorf("%w: %v/%v already held by entryId %s",
			ErrConflictingRegistration, lazy, strict, prev.entryId)
	}
	logger, _ := zap.NewProduction()
	e := entry{
		entryId: uuid.New().String(),
		lazy:    lazy,
		strict:  strict,
		iso:     l,
	}
	registry.m[key] = e
	logger.Sugar().Debugf("registered strict/lazy pair: entryId: %v, lazy: %v, strict: %v", e.entryId, lazy, strict)
	return nil
}

// MustRegisterIso is the panic-on-conflict variant of RegisterIso, for
// package init paths where a conflict means a wiring bug.
func MustRegisterIso[L, S any](l iso.Simple[L, S]) {
	if err := RegisterIso(l); err != nil {
		panic(err)
	}
}

// LookupIso returns the isomorphism registered for the ordered (L, S) pair.
// Go resolves the pair at run time, so an absent pair surfaces as ok ==
// false rather than as a compile failure; pairs registered in package init
// are always present by the time user code can ask.
func LookupIso[L, S any]() (iso.Simple[L, S], bool) {
	return helper.GetTypedValueOf2[iso.Simple[L, S]](func() (any, bool) {
		registry.RLock()
		defer registry.RUnlock()
		e, ok := registry.m[pairKey(typeOf[L](), typeOf[S]())]
		if !ok {
			return nil, false
		}
		return e.iso, true
	})
}

// Entries returns a snapshot of the registered pairs for diagnostics.
func Entries() []Entry {
	registry.RLock()
	defer registry.RUnlock()
	out := make([]Entry, 0, len(registry.m))
	for _, e := range registry.m {
		out = append(out, Entry{EntryId: e.entryId, Lazy: e.lazy, Strict: e.strict})
	}
	return out
}

// pairKey hashes the ordered type pair. The stored reflect.Types remain the
// source of truth; a colliding key fails the typed assertion on lookup.
func pairKey(lazy, strict reflect.Type) uint64 {
	return xxhash.Sum64String(lazy.String() + "->" + strict.String())
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
