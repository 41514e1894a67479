package extract

import (
	"strings"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"github.com/getkin/kin-openapi/openapi3"
)

// Flatten renders the properties of a schema as "name:type" pairs joined by
// ", ", in declaration order. References are resolved against the registry
// first. Only the top level is walked: nested objects and referenced
// properties render as "object", arrays as "array".
func Flatten(s *domain.Schema, registry domain.Schemas) string {
	s = Resolve(s, registry)
	if s == nil || len(s.Properties) == 0 {
		return ""
	}

	fields := make([]string, 0, len(s.Properties))
	for _, p := range s.Properties {
		fields = append(fields, p.Name+":"+propertyType(p.Schema))
	}

	return strings.Join(fields, ", ")
}

func propertyType(s *domain.Schema) string {
	switch {
	case s == nil:
		return openapi3.TypeObject
	case s.Type == openapi3.TypeArray || s.Items != nil:
		return openapi3.TypeArray
	case s.Ref != "" || s.Type == "":
		return openapi3.TypeObject
	default:
		return s.Type
	}
}
