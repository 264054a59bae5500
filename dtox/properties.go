package dtox

import (
	"reflect"
	"strings"
	"sync"
)

type property struct {
	name      string
	source    string
	index     []int
	typ       reflect.Type
	transient bool
}

type propertyKey struct {
	typ reflect.Type
	tag string
}

var propertyCache sync.Map

// propertiesOf lists the exported fields of t in declaration order. Fields of
// embedded structs are promoted as Go promotes them.
func propertiesOf(t reflect.Type, tagName string) []property {
	key := propertyKey{typ: t, tag: tagName}
	if cached, ok := propertyCache.Load(key); ok {
		return cached.([]property)
	}

	var props []property
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		if f.Anonymous && indirectType(f.Type).Kind() == reflect.Struct {
			continue
		}

		p := property{name: f.Name, source: f.Name, index: f.Index, typ: f.Type}
		for _, part := range strings.Split(f.Tag.Get(tagName), ",") {
			part = strings.TrimSpace(part)
			switch {
			case part == "-" || part == "transient":
				p.transient = true
			case strings.HasPrefix(part, "name="):
				p.source = strings.TrimPrefix(part, "name=")
			}
		}
		props = append(props, p)
	}

	actual, _ := propertyCache.LoadOrStore(key, props)
	return actual.([]property)
}

func indirectType(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// fieldByIndex follows index through embedded pointers; a nil pointer on the
// way means the field has no value.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}

// fieldByIndexAlloc is fieldByIndex that allocates nil embedded pointers
func fieldByIndexAlloc(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Ptr {
			if v.IsNil() {
				if !v.CanSet() {
					return reflect.Value{}, false
				}
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}
