// Package defaults resolves stored per-entity overrides against process-wide
// fallbacks. A value counts as defined when it is non-nil and not the zero
// value of its type, so an empty string never overrides a default.
package defaults

// Defined reports whether v carries a usable override.
func Defined[T comparable](v *T) bool {
	if v == nil {
		return false
	}
	var zero T
	return *v != zero
}

// Value returns *override when it is defined and fallback otherwise.
func Value[T comparable](override *T, fallback T) T {
	if Defined(override) {
		return *override
	}
	return fallback
}

// Apply copies update into *dst only when update is defined, leaving the
// previous value untouched otherwise. It reports whether dst changed.
func Apply[T comparable](dst **T, update *T) bool {
	if !Defined(update) {
		return false
	}
	v := *update
	*dst = &v
	return true
}
