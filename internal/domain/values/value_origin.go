package values

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// UndefinedValueOriginCaption is displayed for a value origin that carries no information.
const UndefinedValueOriginCaption = "Undefined"

const valueOriginSeparator = "-"

// ValueOrigin records the provenance of a quantity value: its source, how it was
// determined, and a free-text description.
//
// Equality, hashing and ordering are driven by an identity key derived from
// Source, Method and Description only. ID and Default never participate.
//
// The key is computed lazily and cleared by every setter. A ValueOrigin is not
// safe for concurrent mutation; concurrent reads of an instance nobody is
// mutating are safe.
type ValueOrigin struct {
	// ID references the catalog entry this origin was populated from, if any.
	ID *int

	// Default marks an unmodified default value rather than a user-entered one.
	Default bool

	source      ValueOriginSource
	method      ValueOriginDeterminationMethod
	description string

	key atomic.Pointer[string]
}

// NewValueOrigin creates a value origin from its semantic fields.
func NewValueOrigin(source ValueOriginSource, method ValueOriginDeterminationMethod, description string) *ValueOrigin {
	v := &ValueOrigin{}
	v.SetSource(source)
	v.SetMethod(method)
	v.SetDescription(description)
	return v
}

// Source returns the provenance category. The zero value reads as SourceUndefined.
func (v *ValueOrigin) Source() ValueOriginSource {
	if v.source == (ValueOriginSource{}) {
		return SourceUndefined
	}
	return v.source
}

// SetSource assigns the source and invalidates the identity key.
func (v *ValueOrigin) SetSource(source ValueOriginSource) {
	v.source = source
	v.resetKey()
}

// Method returns the determination method. The zero value reads as MethodUndefined.
func (v *ValueOrigin) Method() ValueOriginDeterminationMethod {
	if v.method == (ValueOriginDeterminationMethod{}) {
		return MethodUndefined
	}
	return v.method
}

// SetMethod assigns the determination method and invalidates the identity key.
func (v *ValueOrigin) SetMethod(method ValueOriginDeterminationMethod) {
	v.method = method
	v.resetKey()
}

// Description returns the free-text description.
func (v *ValueOrigin) Description() string {
	return v.description
}

// SetDescription assigns the description and invalidates the identity key.
func (v *ValueOrigin) SetDescription(description string) {
	v.description = description
	v.resetKey()
}

func (v *ValueOrigin) resetKey() {
	v.key.Store(nil)
}

// IsUndefined reports whether the origin carries no information at all.
func (v *ValueOrigin) IsUndefined() bool {
	return v.Source().ID == SourceUndefined.ID &&
		v.Method().ID == MethodUndefined.ID &&
		v.description == ""
}

// Key returns the identity key: source ID, method ID and description joined
// with "-", blank segments skipped. Undefined origins have an empty key.
func (v *ValueOrigin) Key() string {
	if cached := v.key.Load(); cached != nil {
		return *cached
	}

	key := ""
	if !v.IsUndefined() {
		key = joinNonBlank(
			strconv.Itoa(v.Source().ID),
			strconv.Itoa(v.Method().ID),
			v.description,
		)
	}

	v.key.Store(&key)
	return key
}

// DisplayStrategy renders a value origin as human-readable text.
type DisplayStrategy func(v *ValueOrigin) string

// DefaultDisplay joins the source display, method display and description with
// "-", or returns UndefinedValueOriginCaption for an undefined origin.
func DefaultDisplay(v *ValueOrigin) string {
	if v.IsUndefined() {
		return UndefinedValueOriginCaption
	}
	return joinNonBlank(v.Source().Display, v.Method().Display, v.description)
}

// Display renders the origin with DefaultDisplay.
func (v *ValueOrigin) Display() string {
	return DefaultDisplay(v)
}

// DisplayWith renders the origin with the given strategy, falling back to
// DefaultDisplay when strategy is nil.
func (v *ValueOrigin) DisplayWith(strategy DisplayStrategy) string {
	if strategy == nil {
		return DefaultDisplay(v)
	}
	return strategy(v)
}

// String implements fmt.Stringer
func (v *ValueOrigin) String() string {
	return v.Display()
}

// Clone returns an independent copy including ID and Default.
func (v *ValueOrigin) Clone() *ValueOrigin {
	clone := &ValueOrigin{}
	clone.UpdateFrom(v, true)
	return clone
}

// UpdateFrom copies Source, Method, Description and Default from other.
// ID is copied only when updateID is set; it is meant to change only when the
// origin is populated from a catalog. A nil other is a no-op.
func (v *ValueOrigin) UpdateFrom(other *ValueOrigin, updateID bool) {
	if other == nil {
		return
	}

	if updateID {
		v.ID = copyIntPtr(other.ID)
	}

	v.SetSource(other.Source())
	v.SetMethod(other.Method())
	v.SetDescription(other.description)
	v.Default = other.Default
}

// Equals reports whether both origins have the same identity key.
func (v *ValueOrigin) Equals(other *ValueOrigin) bool {
	if other == nil {
		return false
	}
	if v == other {
		return true
	}
	return v.Key() == other.Key()
}

// EqualsAny is Equals for an arbitrary value; anything that is not a
// *ValueOrigin is never equal.
func (v *ValueOrigin) EqualsAny(other any) bool {
	o, ok := other.(*ValueOrigin)
	if !ok {
		return false
	}
	return v.Equals(o)
}

// Hash returns a hash of the identity key, consistent with Equals.
func (v *ValueOrigin) Hash() uint64 {
	return xxhash.Sum64String(v.Key())
}

// Compare orders origins by ordinal comparison of their identity keys.
// A nil other sorts first.
func (v *ValueOrigin) Compare(other *ValueOrigin) int {
	if other == nil {
		return 1
	}
	return strings.Compare(v.Key(), other.Key())
}

// CompareTo is Compare for an arbitrary value. It fails with a
// *TypeMismatchError when other is not a non-nil *ValueOrigin.
func (v *ValueOrigin) CompareTo(other any) (int, error) {
	o, ok := other.(*ValueOrigin)
	if !ok || o == nil {
		return 0, &TypeMismatchError{Expected: "*values.ValueOrigin", Actual: fmt.Sprintf("%T", other)}
	}
	return v.Compare(o), nil
}

// TypeMismatchError indicates a comparison against an incompatible value.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func joinNonBlank(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		kept = append(kept, p)
	}
	return strings.Join(kept, valueOriginSeparator)
}

func copyIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
