package extract

import (
	"testing"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"github.com/stretchr/testify/assert"
)

const nestedSpec = `
openapi: 3.0.3
paths: {}
components:
  schemas:
    Foo:
      type: object
      properties:
        title:
          type: string
        bar:
          $ref: '#/components/schemas/Bar'
        tags:
          type: array
          items:
            $ref: '#/components/schemas/Bar'
        meta:
          type: object
          properties:
            created:
              type: string
        count:
          type: integer
        loose: {}
    Bar:
      type: object
      properties:
        secret:
          type: string
    Scalar:
      type: string
`

func TestFlatten(t *testing.T) {
	doc := decode(t, "nested.yaml", nestedSpec)
	registry := doc.Components.Schemas

	tests := []struct {
		name   string
		schema *domain.Schema
		want   string
	}{
		{
			name:   "reference is expanded one level only",
			schema: &domain.Schema{Ref: "#/components/schemas/Foo"},
			want:   "title:string, bar:object, tags:array, meta:object, count:integer, loose:object",
		},
		{
			name:   "inline object",
			schema: registry["Bar"],
			want:   "secret:string",
		},
		{
			name:   "unresolved reference",
			schema: &domain.Schema{Ref: "#/components/schemas/Missing"},
			want:   "",
		},
		{
			name:   "no properties",
			schema: &domain.Schema{Ref: "#/components/schemas/Scalar"},
			want:   "",
		},
		{
			name:   "nil schema",
			schema: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.schema, registry))
		})
	}
}

func TestFlatten_ArrayWithoutType(t *testing.T) {
	s := &domain.Schema{Properties: []domain.Property{
		{Name: "items", Schema: &domain.Schema{Items: &domain.Schema{Type: "string"}}},
		{Name: "missing", Schema: nil},
	}}

	assert.Equal(t, "items:array, missing:object", Flatten(s, nil))
}

func TestFlatten_MergedSchema(t *testing.T) {
	doc := decode(t, "merged.yaml", `
openapi: 3.0.3
paths: {}
components:
  schemas:
    Base: &base
      type: object
      properties:
        x: {type: string}
    Child:
      <<: *base
`)

	assert.Equal(t, "x:string", Flatten(&domain.Schema{Ref: "#/components/schemas/Child"}, doc.Components.Schemas))
}
