package dtox

import (
	"reflect"
	"strings"

	"github.com/stoewer/go-strcase"
)

// MatchStrategy decides whether a DTO field corresponds to a model field
type MatchStrategy int

const (
	// ExactMatch pairs fields with identical names
	ExactMatch MatchStrategy = iota
	// SnakeToCamelMatch pairs a snake_case json name or field name with its CamelCase model field
	SnakeToCamelMatch
	// FlexibleMatch ignores case, underscores and initialism spelling (UserID, UserId, user_id)
	FlexibleMatch
)

// AutoMapFields adds field mappings for DTO fields that have no identically
// named model field but match one under the strategy. Explicit mappings win.
func (m *Mapper[TDto, TModel]) AutoMapFields(strategy MatchStrategy) *Mapper[TDto, TModel] {
	dtoType := indirectType(reflect.TypeFor[TDto]())
	modelType := indirectType(reflect.TypeFor[TModel]())
	if dtoType.Kind() != reflect.Struct || modelType.Kind() != reflect.Struct {
		return m
	}

	tag := m.options.TagName
	modelProps := propertiesOf(modelType, tag)
	modelNames := make(map[string]bool, len(modelProps))
	for _, p := range modelProps {
		modelNames[p.name] = true
	}

	for _, dp := range propertiesOf(dtoType, tag) {
		if _, mapped := m.fieldMappings[dp.name]; mapped || modelNames[dp.name] {
			continue
		}
		field := dtoType.FieldByIndex(dp.index)
		for _, mp := range modelProps {
			if matches(strategy, field, mp.name) {
				m.fieldMappings[dp.name] = mp.name
				break
			}
		}
	}
	return m
}

func matches(strategy MatchStrategy, dtoField reflect.StructField, modelName string) bool {
	switch strategy {
	case SnakeToCamelMatch:
		for _, candidate := range []string{jsonName(dtoField), dtoField.Name} {
			if candidate != "" && strcase.UpperCamelCase(candidate) == modelName {
				return true
			}
		}
		return false
	case FlexibleMatch:
		target := normalize(modelName)
		for _, candidate := range []string{jsonName(dtoField), dtoField.Name} {
			if candidate != "" && normalize(candidate) == target {
				return true
			}
		}
		return false
	default:
		return dtoField.Name == modelName
	}
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func normalize(name string) string {
	return strings.ReplaceAll(strcase.SnakeCase(name), "_", "")
}
