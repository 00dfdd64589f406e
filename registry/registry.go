// Package registry is the process-wide function registry the
// expression language compiles against: a mapping from mangled name
// (function name + '_' + one type-code letter per argument) to a
// built-in or client-registered Function. It is read-mostly after
// process init, matching the single-threaded table/view contract, but
// Register itself is safe to call concurrently thanks to singleflight
// deduplication of identical registrations.
package registry

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"

	"kmt/kmterr"
	"kmt/value"
)

// Fn is a built-in or custom function body. It receives exactly Arity
// values, already type-checked against ArgTypes by the expression
// compiler, and returns the function's result or a failure.
type Fn func(args []value.Value) (value.Value, error)

// Function is what a mangled name resolves to.
type Function struct {
	Name       string
	ArgTypes   []value.Kind
	ReturnType value.Kind
	Arity      int
	Call       Fn
}

var (
	mu    sync.RWMutex
	table = map[string]*Function{}
	sg    singleflight.Group
)

// Mangle builds the mangled lookup key: name + "_" + one type character
// per argument in declaration order. A zero-arg function's key ends in
// a bare "_".
func Mangle(name string, argTypes ...value.Kind) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('_')
	for _, k := range argTypes {
		b.WriteByte(k.TypeChar())
	}
	return b.String()
}

// Register installs fn under its mangled name. Concurrent Register
// calls for the same mangled name collapse into a single map write via
// singleflight, so a client that registers the same custom function
// from multiple goroutines at startup doesn't race.
func Register(name string, argTypes []value.Kind, returnType value.Kind, fn Fn) error {
	if fn == nil {
		return fmt.Errorf("registry: nil function body for %q: %w", name, kmterr.ErrInvalidArgument)
	}
	key := Mangle(name, argTypes...)

	_, err, _ := sg.Do(key, func() (any, error) {
		mu.Lock()
		defer mu.Unlock()
		table[key] = &Function{
			Name:       name,
			ArgTypes:   append([]value.Kind(nil), argTypes...),
			ReturnType: returnType,
			Arity:      len(argTypes),
			Call:       fn,
		}
		return nil, nil
	})
	return err
}

// Lookup finds the Function registered under a mangled name.
func Lookup(mangledName string) (*Function, bool) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := table[mangledName]
	return f, ok
}

// MustRegister panics on registration failure; used only by package
// init() for built-ins, where a failure means a programming error in
// this package, never client input.
func MustRegister(name string, argTypes []value.Kind, returnType value.Kind, fn Fn) {
	if err := Register(name, argTypes, returnType, fn); err != nil {
		panic(err)
	}
}
