package validatex

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	playground "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cast"

	"github.com/Conversia-AI/craftable-convx/logx"
)

// ValidationFunc reports whether value satisfies the rule with the given parameter
type ValidationFunc func(value any, param string) bool

type rule struct {
	Name  string
	Param string
}

var (
	validationFuncsMu sync.RWMutex
	validationFuncs   = map[string]ValidationFunc{
		"required": validateRequired,
		"min":      validateMin,
		"max":      validateMax,
		"len":      validateLen,
		"regex":    validateRegex,
		"oneof":    validateOneOf,
		"email":    validatePlayground("email"),
		"url":      validatePlayground("url"),
		"uuid":     validateUUID,
		"alpha":    validateRunes(unicode.IsLetter),
		"alphanum": validateRunes(func(r rune) bool { return unicode.IsLetter(r) || unicode.IsDigit(r) }),
		"numeric":  validateRunes(unicode.IsDigit),
	}

	playgroundValidator = playground.New()
	regexCache          sync.Map
)

// RegisterValidationFunc registers a validation rule available to every validator
func RegisterValidationFunc(name string, fn ValidationFunc) {
	validationFuncsMu.Lock()
	defer validationFuncsMu.Unlock()
	validationFuncs[name] = fn
}

func getValidationFunc(name string) (ValidationFunc, bool) {
	validationFuncsMu.RLock()
	defer validationFuncsMu.RUnlock()
	fn, ok := validationFuncs[name]
	return fn, ok
}

// parseTag splits a tag into rules. regex must be the last rule: its
// parameter runs to the end of the tag and may contain commas.
func parseTag(tag string) []rule {
	var rules []rule
	rest := tag
	for {
		rest = strings.TrimLeft(rest, " ")
		if rest == "" {
			break
		}
		if strings.HasPrefix(rest, "regex=") {
			rules = append(rules, rule{Name: "regex", Param: rest[len("regex="):]})
			break
		}

		part := rest
		if i := strings.IndexByte(rest, ','); i >= 0 {
			part, rest = rest[:i], rest[i+1:]
		} else {
			rest = ""
		}

		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, param, _ := strings.Cut(part, "=")
		rules = append(rules, rule{Name: strings.TrimSpace(name), Param: strings.TrimSpace(param)})
	}
	return rules
}

func hasRule(rules []rule, name string) bool {
	for _, r := range rules {
		if r.Name == name {
			return true
		}
	}
	return false
}

// indirect dereferences pointers and interfaces; ok is false for nil
func indirect(value any) (reflect.Value, bool) {
	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, false
		}
		v = v.Elem()
	}
	return v, v.IsValid()
}

func isZero(value any) bool {
	v, ok := indirect(value)
	if !ok {
		return true
	}
	return v.IsZero()
}

func isNilPointer(value any) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func validateRequired(value any, _ string) bool {
	v, ok := indirect(value)
	if !ok {
		return false
	}
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() > 0
	case reflect.Bool:
		return true
	}
	return !v.IsZero()
}

// size returns the length of strings and collections or the numeric value of numbers
func size(value any) (float64, bool) {
	v, ok := indirect(value)
	if !ok {
		return 0, false
	}
	switch v.Kind() {
	case reflect.String:
		return float64(utf8.RuneCountInString(v.String())), true
	case reflect.Slice, reflect.Map, reflect.Array:
		return float64(v.Len()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func compareSize(value any, param string, cmp func(got, limit float64) bool) bool {
	limit, err := cast.ToFloat64E(param)
	if err != nil {
		logx.Warn("validatex: invalid numeric parameter %q", param)
		return false
	}
	got, ok := size(value)
	if !ok {
		return false
	}
	return cmp(got, limit)
}

func validateMin(value any, param string) bool {
	return compareSize(value, param, func(got, limit float64) bool { return got >= limit })
}

func validateMax(value any, param string) bool {
	return compareSize(value, param, func(got, limit float64) bool { return got <= limit })
}

func validateLen(value any, param string) bool {
	return compareSize(value, param, func(got, limit float64) bool { return got == limit })
}

// compileRegex compiles pattern anchored at both ends, so the whole value has
// to match
func compileRegex(pattern string) (*regexp.Regexp, error) {
	if re, ok := regexCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return nil, err
	}
	regexCache.Store(pattern, re)
	return re, nil
}

func validateRegex(value any, param string) bool {
	re, err := compileRegex(param)
	if err != nil {
		logx.Warn("validatex: invalid regular expression %q: %v", param, err)
		return false
	}
	v, ok := indirect(value)
	if !ok {
		return false
	}
	return re.MatchString(fmt.Sprint(v.Interface()))
}

func validateOneOf(value any, param string) bool {
	v, ok := indirect(value)
	if !ok {
		return false
	}
	s := fmt.Sprint(v.Interface())
	for _, option := range strings.Fields(param) {
		if s == option {
			return true
		}
	}
	return false
}

func validatePlayground(tag string) ValidationFunc {
	return func(value any, _ string) bool {
		v, ok := indirect(value)
		if !ok || v.Kind() != reflect.String {
			return false
		}
		return playgroundValidator.Var(v.String(), tag) == nil
	}
}

func validateUUID(value any, _ string) bool {
	v, ok := indirect(value)
	if !ok {
		return false
	}
	switch id := v.Interface().(type) {
	case uuid.UUID:
		return id != uuid.Nil
	case string:
		_, err := uuid.Parse(id)
		return err == nil
	}
	return false
}

func validateRunes(accept func(rune) bool) ValidationFunc {
	return func(value any, _ string) bool {
		v, ok := indirect(value)
		if !ok || v.Kind() != reflect.String {
			return false
		}
		s := v.String()
		if s == "" {
			return false
		}
		for _, r := range s {
			if !accept(r) {
				return false
			}
		}
		return true
	}
}
