package utilz

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"os"
	"reflect"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Seams for the fatal-exit path so tests can observe it.
var (
	exitFunc           = os.Exit
	stderr   io.Writer = os.Stderr
)

// fatal prints the diagnostic to stderr and terminates with a non-zero status.
// It never returns.
func fatal(msg string) {
	fmt.Fprintf(stderr, "[FATAL]: %s\n", msg)
	exitFunc(1)
}

// ============================================================================
// Option
// ============================================================================

// Option holds a value that may be absent.
// It carries the usual comma-ok idiom as a first-class value so callbacks and
// fallbacks can be chained onto it.
//
// Example:
//
//	user := LookupUser(id).
//	    IfSome(func(u User) { audit(u) }).
//	    OrDefault(guest)
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an absent Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// OptionOf wraps a comma-ok pair:
//
//	v, ok := cache[key]
//	opt := OptionOf(v, ok)
//
// For map lookups, Lookup does the indexing too.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IfSome calls f with the value if present and returns the Option unchanged.
func (o Option[T]) IfSome(f func(T)) Option[T] {
	if o.ok {
		f(o.value)
	}
	return o
}

// OrDefault returns the value if present, otherwise the fallback.
func (o Option[T]) OrDefault(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

// OrExit returns the value if present. If absent it prints "[FATAL]: msg" to
// standard error and terminates the process with status 1.
func (o Option[T]) OrExit(msg string) T {
	if !o.ok {
		fatal(msg)
	}
	return o.value
}

// ============================================================================
// Result
// ============================================================================

// Result holds either a value or an error, carrying the (T, error) pair as a
// first-class value so success and failure callbacks can be chained onto it.
//
// Example:
//
//	cfg := ResultOf(loadConfig(path)).
//	    IfErr(func(err error) { warn(err) }).
//	    OrExit("cannot start without config")
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed Result holding err.
func Err[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// ResultOf wraps a (value, error) pair, e.g. ResultOf(strconv.Atoi(s)).
func ResultOf[T any](v T, err error) Result[T] {
	return Result[T]{value: v, err: err}
}

// IsOk reports whether the Result holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Get returns the value and error.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// IfOk calls f with the value on success and returns the Result unchanged.
func (r Result[T]) IfOk(f func(T)) Result[T] {
	if r.err == nil {
		f(r.value)
	}
	return r
}

// IfErr calls f with the error on failure and returns the Result unchanged.
func (r Result[T]) IfErr(f func(error)) Result[T] {
	if r.err != nil {
		f(r.err)
	}
	return r
}

// OrExit returns the value on success. On failure it prints "[FATAL]: msg" to
// standard error and terminates the process with status 1.
func (r Result[T]) OrExit(msg string) T {
	if r.err != nil {
		fatal(msg)
	}
	return r.value
}

// ValueOrExit unwraps a (value, error) pair directly, exiting on error.
// Shorthand for ResultOf(v, err).OrExit(msg).
func ValueOrExit[T any](v T, err error, msg string) T {
	return ResultOf(v, err).OrExit(msg)
}

// ============================================================================
// Bool sugar
// ============================================================================

// Not returns the inverted boolean.
func Not(b bool) bool {
	return !b
}

// Toggle flips the boolean in place.
func Toggle(b *bool) {
	*b = !*b
}

// ThenVal returns Some(v) if cond is true, otherwise None.
func ThenVal[T any](cond bool, v T) Option[T] {
	if cond {
		return Some(v)
	}
	return None[T]()
}

// IfTrue calls f and returns its value as Some if cond is true, otherwise
// None. f is not called when cond is false.
func IfTrue[T any](cond bool, f func() T) Option[T] {
	if cond {
		return Some(f())
	}
	return None[T]()
}

// IfFalse calls f and returns its value as Some if cond is false, otherwise
// None. f is not called when cond is true.
func IfFalse[T any](cond bool, f func() T) Option[T] {
	return IfTrue(!cond, f)
}

// ============================================================================
// Slice sugar
// ============================================================================

// PushIf appends v to the slice if cond is true.
func PushIf[T any](s *[]T, v T, cond bool) {
	if cond {
		*s = append(*s, v)
	}
}

// PushIfWith appends the value produced by f if cond is true.
// f is only evaluated when cond holds.
func PushIfWith[T any](s *[]T, cond bool, f func() T) {
	if cond {
		*s = append(*s, f())
	}
}

// ============================================================================
// Map sugar
// ============================================================================

// GetOr returns the value stored under key, or the fallback if the key is
// absent.
func GetOr[K comparable, V any](m map[K]V, key K, fallback V) V {
	if v, ok := m[key]; ok {
		return v
	}
	return fallback
}

// InsertIf stores value under key if cond is true.
func InsertIf[K comparable, V any](m map[K]V, key K, value V, cond bool) {
	if cond {
		m[key] = value
	}
}

// Lookup returns the value stored under key as an Option, absent when the key
// is missing.
func Lookup[K comparable, V any](m map[K]V, key K) Option[V] {
	v, ok := m[key]
	return OptionOf(v, ok)
}

// ============================================================================
// String sugar
// ============================================================================

// ContainsAll reports whether s contains every one of the given substrings.
func ContainsAll(s string, parts ...string) bool {
	for _, part := range parts {
		if !strings.Contains(s, part) {
			return false
		}
	}
	return true
}

// ContainsAny reports whether s contains at least one of the given substrings.
func ContainsAny(s string, parts ...string) bool {
	for _, part := range parts {
		if strings.Contains(s, part) {
			return true
		}
	}
	return false
}

// ToTitleCase returns s with its first rune uppercased; the rest of the
// string, including any further words, is left untouched. The mapping is the
// locale-independent Unicode one, so multi-rune expansions apply ("ß" becomes
// "SS"). Strings whose first rune has no uppercase form are returned as-is.
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	// A Caser carries transform state and is not safe for concurrent use.
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}

// ============================================================================
// Reflection sugar
// ============================================================================

// TypeName returns the type name of v, or "<nil>" for an untyped nil.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// MemSize returns the in-memory size of v's type in bytes. An untyped nil has
// size zero.
func MemSize(v any) uintptr {
	t := reflect.TypeOf(v)
	if t == nil {
		return 0
	}
	return t.Size()
}

// View prints v's type and memory size to stdout.
func View(v any) {
	fmt.Printf("[view] Type: %s, Size: %d bytes\n", TypeName(v), MemSize(v))
}

// ============================================================================
// Conversion sugar
// ============================================================================

// Integer covers all built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// TryConvert narrows v to the target integer type, failing if the value does
// not fit.
//
// Example:
//
//	b, err := TryConvert[int8](200) // error: 200 overflows int8
func TryConvert[T, F Integer](v F) (T, error) {
	t := T(v)
	if F(t) != v || (t < 0) != (v < 0) {
		var zero T
		return zero, errors.Errorf("value %v does not fit in %s", v, TypeName(zero))
	}
	return t, nil
}

// Convert narrows v to the target integer type, returning None if the value
// does not fit.
func Convert[T, F Integer](v F) Option[T] {
	t, err := TryConvert[T](v)
	if err != nil {
		return None[T]()
	}
	return Some(t)
}

// ConvertOr narrows v to the target integer type, returning the fallback if
// the value does not fit.
func ConvertOr[T, F Integer](v F, fallback T) T {
	return Convert[T](v).OrDefault(fallback)
}

// ============================================================================
// Duration sugar
// ============================================================================

// Pretty renders a duration like "1h 2m 3s", omitting zero components.
// Sub-second precision is truncated; zero and negative durations render
// as "0s".
func Pretty(d time.Duration) string {
	total := int64(d / time.Second)
	if total <= 0 {
		return "0s"
	}
	hours := total / 3600
	mins := (total % 3600) / 60
	secs := total % 60

	parts := make([]string, 0, 3)
	PushIfWith(&parts, hours > 0, func() string { return fmt.Sprintf("%dh", hours) })
	PushIfWith(&parts, mins > 0, func() string { return fmt.Sprintf("%dm", mins) })
	PushIfWith(&parts, secs > 0, func() string { return fmt.Sprintf("%ds", secs) })
	return strings.Join(parts, " ")
}

// ============================================================================
// Clamp sugar
// ============================================================================

// ClampTo limits v to the range [lo, hi]. Inverted bounds are normalized by
// swapping, so ClampTo(v, hi, lo) behaves like ClampTo(v, lo, hi).
func ClampTo[T cmp.Ordered](v, lo, hi T) T {
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ============================================================================
// Parity and bitwise sugar
// ============================================================================

// IsEven reports whether v is divisible by two.
func IsEven[T Integer](v T) bool {
	return v%2 == 0
}

// IsOdd reports whether v is not divisible by two.
func IsOdd[T Integer](v T) bool {
	return v%2 != 0
}

// Xor returns the bitwise exclusive-or of a and b.
func Xor[T Integer](a, b T) T {
	return a ^ b
}

// ============================================================================
// Iterator sugar
// ============================================================================

// FindMapOr applies f to each element and returns the first mapped value, or
// the fallback if no element maps. It stops at the first match.
func FindMapOr[T, U any](items []T, f func(T) (U, bool), fallback U) U {
	for _, item := range items {
		if u, ok := f(item); ok {
			return u
		}
	}
	return fallback
}

// FindMapSeqOr is FindMapOr over an iterator sequence.
func FindMapSeqOr[T, U any](seq iter.Seq[T], f func(T) (U, bool), fallback U) U {
	for item := range seq {
		if u, ok := f(item); ok {
			return u
		}
	}
	return fallback
}

// ============================================================================
// Tap sugar
// ============================================================================

// Tap calls f with v for its side effect and returns v unchanged. Useful for
// peeking into the middle of an expression.
//
// Example:
//
//	total := Tap(compute(), func(n int) { fmt.Println("computed", n) })
func Tap[T any](v T, f func(T)) T {
	f(v)
	return v
}
