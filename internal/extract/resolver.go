// Package extract flattens OpenAPI operations into report rows.
package extract

import (
	"strings"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
)

// RefName returns the final path segment of a reference token.
func RefName(ref string) string {
	return ref[strings.LastIndex(ref, "/")+1:]
}

// Resolve returns the registry entry a reference points at, or s itself when
// it is not a reference. An unknown name resolves to nil.
//
// Resolution is one level deep: the returned schema's own references are
// left as they are.
func Resolve(s *domain.Schema, registry domain.Schemas) *domain.Schema {
	if s == nil || s.Ref == "" {
		return s
	}

	return registry[RefName(s.Ref)]
}

// component looks up a local reference in a component registry. Targets
// that are references themselves are not followed.
func component[T any](ref string, registry map[string]T, isRef func(T) bool) (T, bool) {
	var zero T

	target, ok := registry[RefName(ref)]
	if !ok || isRef(target) {
		return zero, false
	}

	return target, true
}

func resolveParameter(p domain.Parameter, c domain.Components) domain.Parameter {
	if p.Ref == "" {
		return p
	}

	target, _ := component(p.Ref, c.Parameters, func(t domain.Parameter) bool { return t.Ref != "" })

	return target
}

func resolveRequestBody(b *domain.RequestBody, c domain.Components) *domain.RequestBody {
	if b == nil || b.Ref == "" {
		return b
	}

	target, ok := component(b.Ref, c.RequestBodies, func(t domain.RequestBody) bool { return t.Ref != "" })
	if !ok {
		return nil
	}

	return &target
}

func resolveResponse(r domain.Response, c domain.Components) domain.Response {
	if r.Ref == "" {
		return r
	}

	target, _ := component(r.Ref, c.Responses, func(t domain.Response) bool { return t.Ref != "" })
	target.StatusCode = r.StatusCode

	return target
}
