// Package domain provides core business models for the OpenAPI table generator.
package domain

// Document represents one decoded OpenAPI specification file.
// Every mapping that affects output order is kept as a slice in source order.
type Document struct {
	FileName   string
	Servers    []Server
	Paths      []PathItem
	Components Components
}

// Server represents an API server.
type Server struct {
	URL         string
	Description string
	Variables   map[string]string // variable name -> default value
}

// Components holds the named definitions a document can reference locally.
type Components struct {
	Schemas       Schemas
	Parameters    map[string]Parameter
	RequestBodies map[string]RequestBody
	Responses     map[string]Response
}

// Schemas is the schema registry (key is schema name).
type Schemas map[string]*Schema

// PathItem represents one entry of the path table.
type PathItem struct {
	Path    string
	Methods []MethodEntry // every mapping-valued key, in source order
}

// MethodEntry binds a raw path-item key to the operation decoded under it.
// Keys are kept verbatim; filtering to HTTP verbs happens at extraction.
type MethodEntry struct {
	Key       string
	Operation Operation
}

// Operation represents an HTTP operation on a path.
type Operation struct {
	Method      Method
	Path        string
	Summary     string
	Description string
	UserStory   string // x-user-story
	Controller  string // x-controller
	Parameters  []Parameter
	RequestBody *RequestBody
	Responses   []Response
}

// Parameter represents a request parameter.
type Parameter struct {
	Ref    string
	Name   string
	In     string // query, path, header, cookie
	Schema *Schema
}

// RequestBody represents a request body.
type RequestBody struct {
	Ref     string
	Content map[string]MediaType
}

// MediaType represents the content type and schema.
type MediaType struct {
	Schema *Schema
}

// Response represents an API response.
type Response struct {
	Ref         string
	StatusCode  string
	Description string
	Content     map[string]MediaType
}

// Schema represents a JSON schema for request/response bodies.
type Schema struct {
	Ref        string
	Type       string
	Format     string
	Properties []Property
	Items      *Schema
}

// Property is one named entry of an object schema.
type Property struct {
	Name   string
	Schema *Schema
}

// Response returns the response declared for the status code.
func (o Operation) Response(code string) (Response, bool) {
	for _, r := range o.Responses {
		if r.StatusCode == code {
			return r, true
		}
	}

	return Response{}, false
}
