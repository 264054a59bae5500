package dtox

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/mohae/deepcopy"

	"github.com/Conversia-AI/craftable-convx/convx"
)

// Copier copies like-named exported fields between structs of different types
type Copier struct {
	opts Options
}

// NewCopier creates a copier; zero-valued options fall back to the defaults
func NewCopier(opts Options) *Copier {
	return &Copier{opts: opts.withDefaults()}
}

// Options returns the copier configuration
func (c *Copier) Options() Options {
	return c.opts
}

var defaultCopier = NewCopier(DefaultOptions())

// Copy copies from into to with the default options
func Copy(from, to any) error {
	return defaultCopier.Copy(from, to)
}

// Copy copies every non-transient field of from into the like-named,
// non-transient field of to. from must be a struct or a non-nil pointer to
// one, to a non-nil pointer to a struct.
//
// Assignable values are set directly. Other values go through the registry,
// then through numeric and named-type conversion, then through nested struct
// copy for structs sharing at least one field. What is left is a mismatch: an
// error in strict mode, a warning otherwise, and the destination field is left
// as it was. A pointer that leads back to a value already being copied into
// the same type is a mismatch too.
func (c *Copier) Copy(from, to any) error {
	dst := reflect.ValueOf(to)
	if dst.Kind() != reflect.Ptr || dst.IsNil() || dst.Elem().Kind() != reflect.Struct {
		return invalidArgument("to", to)
	}

	run := &copyRun{Copier: c, visiting: make(map[visit]bool)}
	src := reflect.ValueOf(from)
	for src.Kind() == reflect.Ptr || src.Kind() == reflect.Interface {
		if src.IsNil() {
			return invalidArgument("from", from)
		}
		if src.Kind() == reflect.Ptr {
			run.visiting[visit{ptr: src.Pointer(), typ: dst.Type()}] = true
		}
		src = src.Elem()
	}
	if src.Kind() != reflect.Struct {
		return invalidArgument("from", from)
	}

	return run.copyStruct(src, dst.Elem(), "")
}

var errCyclicReference = errors.New("cyclic reference")

// visit is a source pointer being copied into a destination type
type visit struct {
	ptr uintptr
	typ reflect.Type
}

// copyRun holds the state of a single Copy call
type copyRun struct {
	*Copier
	visiting map[visit]bool
}

func invalidArgument(name string, value any) error {
	return ErrorRegistry.New(ErrInvalidArgument).
		WithDetail("argument", name).
		WithDetail("type", fmt.Sprintf("%T", value))
}

func (c *copyRun) copyStruct(src, dst reflect.Value, path string) error {
	dstProps := propertiesOf(dst.Type(), c.opts.TagName)
	bySource := make(map[string][]property, len(dstProps))
	byName := make(map[string]property, len(dstProps))
	for _, p := range dstProps {
		bySource[p.source] = append(bySource[p.source], p)
		byName[p.name] = p
	}

	for _, sp := range propertiesOf(src.Type(), c.opts.TagName) {
		if sp.transient || c.opts.IgnoreFields[sp.name] {
			continue
		}

		targets := bySource[sp.name]
		if mapped, has := c.opts.FieldMappings[sp.name]; has {
			targets = nil
			if dp, ok := byName[mapped]; ok {
				targets = []property{dp}
			}
		}
		if len(targets) == 0 {
			if c.opts.FailOnMissing {
				return ErrorRegistry.New(ErrFieldNotFound).
					WithDetail("field", path+sp.name).
					WithDetail("type", dst.Type().String())
			}
			continue
		}

		sv, ok := fieldByIndex(src, sp.index)
		if !ok {
			continue
		}
		for _, dp := range targets {
			if err := c.copyField(dst, sv, dp, path); err != nil {
				return err
			}
		}
	}

	return nil
}

func (c *copyRun) copyField(dst, sv reflect.Value, dp property, path string) error {
	if dp.transient || c.opts.IgnoreFields[dp.name] {
		return nil
	}

	dv, ok := fieldByIndexAlloc(dst, dp.index)
	if !ok || !dv.CanSet() {
		if c.opts.Strict {
			return ErrorRegistry.New(ErrCannotSetField).
				WithDetail("field", path+dp.name).
				WithDetail("type", dst.Type().String())
		}
		return nil
	}

	_, err := c.assign(dv, sv, path+dp.name)
	return err
}

// assign reports whether dv was set
func (c *copyRun) assign(dv, sv reflect.Value, path string) (bool, error) {
	st, dt := sv.Type(), dv.Type()

	if st.AssignableTo(dt) {
		c.set(dv, sv)
		return true, nil
	}

	if c.opts.Registry != nil {
		if conv, ok := c.opts.Registry.Lookup(st, dt); ok {
			return c.assignConverted(dv, sv, conv, path)
		}
	}

	switch {
	case st.Kind() == reflect.Ptr || st.Kind() == reflect.Interface:
		if sv.IsNil() {
			dv.Set(reflect.Zero(dt))
			return true, nil
		}
		if st.Kind() == reflect.Ptr {
			key := visit{ptr: sv.Pointer(), typ: dt}
			if c.visiting[key] {
				return false, c.mismatch(path, st, dt, errCyclicReference)
			}
			c.visiting[key] = true
			defer delete(c.visiting, key)
		}
		return c.assign(dv, sv.Elem(), path)

	case dt.Kind() == reflect.Ptr:
		target := reflect.New(dt.Elem())
		ok, err := c.assign(target.Elem(), sv, path)
		if ok {
			dv.Set(target)
		}
		return ok, err

	case convertibleKinds(st, dt):
		dv.Set(sv.Convert(dt))
		return true, nil

	case st.Kind() == reflect.Struct && dt.Kind() == reflect.Struct && c.linked(st, dt):
		if err := c.copyStruct(sv, dv, path+"."); err != nil {
			return false, err
		}
		return true, nil

	case (st.Kind() == reflect.Slice || st.Kind() == reflect.Array) && dt.Kind() == reflect.Slice:
		return c.assignSlice(dv, sv, path)
	}

	return false, c.mismatch(path, st, dt, nil)
}

func (c *copyRun) assignConverted(dv, sv reflect.Value, conv convx.Converter, path string) (bool, error) {
	out, err := conv.Convert(sv.Interface())
	if err != nil {
		return false, c.mismatch(path, sv.Type(), dv.Type(), err)
	}

	ov := reflect.ValueOf(out)
	if !ov.IsValid() {
		dv.Set(reflect.Zero(dv.Type()))
		return true, nil
	}
	if !ov.Type().AssignableTo(dv.Type()) {
		return false, c.mismatch(path, sv.Type(), dv.Type(), nil)
	}
	dv.Set(ov)
	return true, nil
}

func (c *copyRun) assignSlice(dv, sv reflect.Value, path string) (bool, error) {
	if sv.Kind() == reflect.Slice && sv.IsNil() {
		dv.Set(reflect.Zero(dv.Type()))
		return true, nil
	}

	out := reflect.MakeSlice(dv.Type(), sv.Len(), sv.Len())
	for i := range sv.Len() {
		ok, err := c.assign(out.Index(i), sv.Index(i), fmt.Sprintf("%s[%d]", path, i))
		if err != nil || !ok {
			return false, err
		}
	}
	dv.Set(out)
	return true, nil
}

// linked reports whether copying st into dt would reach at least one
// destination field. Structs without exported fields on the destination side
// are always linked.
func (c *Copier) linked(st, dt reflect.Type) bool {
	dstProps := propertiesOf(dt, c.opts.TagName)
	if len(dstProps) == 0 {
		return true
	}

	bySource := make(map[string]bool, len(dstProps))
	byName := make(map[string]bool, len(dstProps))
	for _, dp := range dstProps {
		if dp.transient || c.opts.IgnoreFields[dp.name] {
			continue
		}
		bySource[dp.source] = true
		byName[dp.name] = true
	}

	for _, sp := range propertiesOf(st, c.opts.TagName) {
		if sp.transient || c.opts.IgnoreFields[sp.name] {
			continue
		}
		if mapped, has := c.opts.FieldMappings[sp.name]; has {
			if byName[mapped] {
				return true
			}
			continue
		}
		if bySource[sp.name] {
			return true
		}
	}
	return false
}

// set assigns sv, deep copying reference values when configured
func (c *Copier) set(dv, sv reflect.Value) {
	if !c.opts.DeepCopy {
		dv.Set(sv)
		return
	}

	switch sv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Ptr, reflect.Interface:
		if sv.IsNil() {
			dv.Set(reflect.Zero(dv.Type()))
			return
		}
		dv.Set(reflect.ValueOf(deepcopy.Copy(sv.Interface())))
	default:
		dv.Set(sv)
	}
}

func (c *Copier) mismatch(path string, st, dt reflect.Type, cause error) error {
	if c.opts.Strict {
		err := ErrorRegistry.New(ErrTypeConversion).
			WithDetail("field", path).
			WithDetail("source_type", st.String()).
			WithDetail("target_type", dt.String())
		if cause != nil {
			err = err.WithCause(cause)
		}
		return err
	}

	if cause != nil {
		c.opts.Logger.Warn("dtox: field %s of type %s is not compatible with %s: %v", path, st, dt, cause)
	} else {
		c.opts.Logger.Warn("dtox: field %s of type %s is not compatible with %s", path, st, dt)
	}
	return nil
}

type kindFamily int

const (
	familyNone kindFamily = iota
	familyNumber
	familyString
	familyBool
)

func familyOf(k reflect.Kind) kindFamily {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return familyNumber
	case reflect.String:
		return familyString
	case reflect.Bool:
		return familyBool
	}
	return familyNone
}

// convertibleKinds allows int to int64, float to int, named string types and
// the like, but never number to string
func convertibleKinds(st, dt reflect.Type) bool {
	f := familyOf(st.Kind())
	return f != familyNone && f == familyOf(dt.Kind()) && st.ConvertibleTo(dt)
}
