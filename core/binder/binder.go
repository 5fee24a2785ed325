package binder

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/dmitrymomot/mvc/core/web"
)

var (
	requestType  = reflect.TypeFor[*web.Request]()
	responseType = reflect.TypeFor[*web.Response]()
	errorType    = reflect.TypeFor[error]()
)

// slot tells Call where the argument at one position comes from.
type slot uint8

const (
	slotZero slot = iota
	slotRequest
	slotResponse
)

// slotFor matches a declared parameter type by exact identity.
func slotFor(t reflect.Type) slot {
	switch t {
	case requestType:
		return slotRequest
	case responseType:
		return slotResponse
	}
	return slotZero
}

// Args builds the positional argument vector for the declared parameter
// types. A parameter typed exactly *web.Request or *web.Response receives
// the current instance; every other parameter receives its zero value.
func Args(params []reflect.Type, req *web.Request, res *web.Response) []reflect.Value {
	return buildArgs(slotsFor(params), params, req, res)
}

func slotsFor(params []reflect.Type) []slot {
	slots := make([]slot, len(params))
	for i, t := range params {
		slots[i] = slotFor(t)
	}
	return slots
}

// buildArgs fills one value per slot; slots and params have equal length.
func buildArgs(slots []slot, params []reflect.Type, req *web.Request, res *web.Response) []reflect.Value {
	if len(slots) == 0 {
		return nil
	}
	args := make([]reflect.Value, len(slots))
	for i, s := range slots {
		args[i] = valueFor(s, params[i], req, res)
	}
	return args
}

// ParamTypes returns the declared parameter types of a function type.
func ParamTypes(fn reflect.Type) []reflect.Type {
	params := make([]reflect.Type, fn.NumIn())
	for i := range params {
		params[i] = fn.In(i)
	}
	return params
}

func valueFor(s slot, t reflect.Type, req *web.Request, res *web.Response) reflect.Value {
	switch s {
	case slotRequest:
		if req != nil {
			return reflect.ValueOf(req)
		}
	case slotResponse:
		if res != nil {
			return reflect.ValueOf(res)
		}
	}
	return reflect.Zero(t)
}

// Func is a handler function whose argument plan was resolved once, at
// registration. Calling it does no type scanning.
type Func struct {
	name     string
	fn       reflect.Value
	params   []reflect.Type
	slots    []slot
	errIndex int // index of a trailing error result, -1 if none
}

// Compile resolves the argument plan of fn, which must be a non-variadic
// function. Method values (ctrl.show) work regardless of export status since
// the method is captured at the call site.
func Compile(fn any) (*Func, error) {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotFunc, fn)
	}
	return compile(funcName(v), v)
}

// Method resolves the exported method name on recv.
func Method(recv any, name string) (*Func, error) {
	rv := reflect.ValueOf(recv)
	if !rv.IsValid() || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
		return nil, fmt.Errorf("%w: %s", ErrNilReceiver, name)
	}

	m := rv.MethodByName(name)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s.%s", ErrMethodNotFound, rv.Type(), name)
	}
	return compile(rv.Type().String()+"."+name, m)
}

// MustCompile is like Compile but panics on error.
func MustCompile(fn any) *Func {
	f, err := Compile(fn)
	if err != nil {
		panic(err)
	}
	return f
}

func compile(name string, v reflect.Value) (*Func, error) {
	t := v.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("%w: %s", ErrVariadic, name)
	}

	f := &Func{
		name:     name,
		fn:       v,
		params:   ParamTypes(t),
		errIndex: -1,
	}
	f.slots = slotsFor(f.params)
	if n := t.NumOut(); n > 0 && t.Out(n-1) == errorType {
		f.errIndex = n - 1
	}
	return f, nil
}

// Name returns a human readable name for logs.
func (f *Func) Name() string {
	return f.name
}

// NumIn returns the number of declared parameters.
func (f *Func) NumIn() int {
	return len(f.params)
}

// Call invokes the function with arguments built from the precomputed plan.
// Results other than a trailing error are discarded.
func (f *Func) Call(req *web.Request, res *web.Response) error {
	out := f.fn.Call(buildArgs(f.slots, f.params, req, res))

	if f.errIndex < 0 {
		return nil
	}
	if errVal := out[f.errIndex]; !errVal.IsNil() {
		return errVal.Interface().(error)
	}
	return nil
}

func funcName(v reflect.Value) string {
	if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
		return fn.Name()
	}
	return v.Type().String()
}
