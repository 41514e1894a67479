package extract

import (
	"testing"

	"github.com/GabrielNunesIT/openapi-table/internal/adapters/loader"
	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"github.com/stretchr/testify/require"
)

const userServiceSpec = `
openapi: 3.0.3
servers:
  - url: http://localhost:8081/api/v1
  - url: https://api.tripgen.com/users/v1
paths:
  /users/{id}:
    get:
      summary: Get user
      parameters:
        - name: id
          in: path
          schema:
            type: string
      responses:
        '200':
          description: ok
          content:
            application/json:
              schema:
                type: array
                items:
                  $ref: '#/components/schemas/User'
components:
  schemas:
    User:
      type: object
      properties:
        id:
          type: string
        name:
          type: string
`

func decode(t *testing.T, name, spec string) *domain.Document {
	t.Helper()

	doc, err := loader.Decode(name, []byte(spec))
	require.NoError(t, err)

	return doc
}
