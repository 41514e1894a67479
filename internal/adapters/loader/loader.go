// Package loader decodes OpenAPI YAML documents into the domain model.
//
// Decoding walks the yaml.Node tree instead of unmarshaling into maps so that
// the order of paths, verbs and schema properties survives into the report.
package loader

import (
	"errors"
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	errEmptyDocument = errors.New("empty document")
	errNotMapping    = errors.New("document root is not a mapping")
)

// Discover lists the .yaml/.yml files directly inside dir, in filename order.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string

	for _, entry := range entries {
		if entry.IsDir() || !IsYAML(entry.Name()) {
			continue
		}

		files = append(files, filepath.Join(dir, entry.Name()))
	}

	return files, nil
}

// IsYAML reports whether the file name carries a YAML extension.
func IsYAML(name string) bool {
	return strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")
}

// Load reads and decodes the document at path.
func Load(path string) (*domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Decode(filepath.Base(path), data)
}

// Decode decodes raw YAML (or JSON) into a Document named name.
func Decode(name string, data []byte) (*domain.Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%s: %w", name, errEmptyDocument)
	}

	top := mapping(root.Content[0])
	if top == nil {
		return nil, fmt.Errorf("%s: %w", name, errNotMapping)
	}

	doc := &domain.Document{FileName: name}

	for key, value := range pairs(top) {
		switch key {
		case "servers":
			doc.Servers = decodeServers(value)
		case "paths":
			doc.Paths = decodePaths(value)
		case "components":
			doc.Components = decodeComponents(value)
		}
	}

	return doc, nil
}

func decodeServers(n *yaml.Node) []domain.Server {
	var servers []domain.Server

	for _, item := range sequence(n) {
		m := mapping(item)
		if m == nil {
			continue
		}

		server := domain.Server{
			URL:         scalar(lookup(m, "url")),
			Description: scalar(lookup(m, "description")),
		}

		for name, variable := range pairs(lookup(m, "variables")) {
			if server.Variables == nil {
				server.Variables = make(map[string]string)
			}
			server.Variables[name] = scalar(lookup(variable, "default"))
		}

		servers = append(servers, server)
	}

	return servers
}

func decodePaths(n *yaml.Node) []domain.PathItem {
	var items []domain.PathItem

	for path, value := range pairs(n) {
		item := domain.PathItem{Path: path}

		for key, opNode := range pairs(value) {
			if mapping(opNode) == nil {
				continue
			}

			item.Methods = append(item.Methods, domain.MethodEntry{
				Key:       key,
				Operation: decodeOperation(path, opNode),
			})
		}

		items = append(items, item)
	}

	return items
}

func decodeOperation(path string, n *yaml.Node) domain.Operation {
	op := domain.Operation{Path: path}

	for key, value := range pairs(n) {
		switch key {
		case "summary":
			op.Summary = scalar(value)
		case "description":
			op.Description = scalar(value)
		case "x-user-story":
			op.UserStory = scalar(value)
		case "x-controller":
			op.Controller = scalar(value)
		case "parameters":
			for _, p := range sequence(value) {
				if mapping(p) != nil {
					op.Parameters = append(op.Parameters, decodeParameter(p))
				}
			}
		case "requestBody":
			if mapping(value) != nil {
				body := decodeRequestBody(value)
				op.RequestBody = &body
			}
		case "responses":
			for code, r := range pairs(value) {
				if mapping(r) != nil {
					op.Responses = append(op.Responses, decodeResponse(code, r))
				}
			}
		}
	}

	return op
}

func decodeParameter(n *yaml.Node) domain.Parameter {
	return domain.Parameter{
		Ref:    scalar(lookup(n, "$ref")),
		Name:   scalar(lookup(n, "name")),
		In:     scalar(lookup(n, "in")),
		Schema: decodeSchema(lookup(n, "schema")),
	}
}

func decodeRequestBody(n *yaml.Node) domain.RequestBody {
	return domain.RequestBody{
		Ref:     scalar(lookup(n, "$ref")),
		Content: decodeContent(lookup(n, "content")),
	}
}

func decodeResponse(code string, n *yaml.Node) domain.Response {
	return domain.Response{
		Ref:         scalar(lookup(n, "$ref")),
		StatusCode:  code,
		Description: scalar(lookup(n, "description")),
		Content:     decodeContent(lookup(n, "content")),
	}
}

func decodeContent(n *yaml.Node) map[string]domain.MediaType {
	if mapping(n) == nil {
		return nil
	}

	content := make(map[string]domain.MediaType)

	for mediaType, value := range pairs(n) {
		content[mediaType] = domain.MediaType{
			Schema: decodeSchema(lookup(value, "schema")),
		}
	}

	return content
}

func decodeComponents(n *yaml.Node) domain.Components {
	var c domain.Components

	for name, value := range pairs(lookup(n, "schemas")) {
		if c.Schemas == nil {
			c.Schemas = make(domain.Schemas)
		}
		c.Schemas[name] = decodeSchema(value)
	}

	for name, value := range pairs(lookup(n, "parameters")) {
		if c.Parameters == nil {
			c.Parameters = make(map[string]domain.Parameter)
		}
		c.Parameters[name] = decodeParameter(value)
	}

	for name, value := range pairs(lookup(n, "requestBodies")) {
		if c.RequestBodies == nil {
			c.RequestBodies = make(map[string]domain.RequestBody)
		}
		c.RequestBodies[name] = decodeRequestBody(value)
	}

	for name, value := range pairs(lookup(n, "responses")) {
		if c.Responses == nil {
			c.Responses = make(map[string]domain.Response)
		}
		c.Responses[name] = decodeResponse("", value)
	}

	return c
}

func decodeSchema(n *yaml.Node) *domain.Schema {
	n = mapping(n)
	if n == nil {
		return nil
	}

	schema := &domain.Schema{}

	for key, value := range pairs(n) {
		switch key {
		case "$ref":
			schema.Ref = scalar(value)
		case "type":
			schema.Type = schemaType(value)
		case "format":
			schema.Format = scalar(value)
		case "items":
			schema.Items = decodeSchema(value)
		case "properties":
			for name, prop := range pairs(value) {
				schema.Properties = append(schema.Properties, domain.Property{
					Name:   name,
					Schema: decodeSchema(prop),
				})
			}
		}
	}

	return schema
}

// schemaType accepts both the 3.0 scalar form and the 3.1 list form.
func schemaType(n *yaml.Node) string {
	seq := sequence(n)
	if seq == nil {
		return scalar(n)
	}

	for _, t := range seq {
		if v := scalar(t); v != "" && v != "null" {
			return v
		}
	}

	return ""
}

// deref follows aliases so callers only ever see concrete nodes.
func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}

	return n
}

func mapping(n *yaml.Node) *yaml.Node {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}

	return n
}

func sequence(n *yaml.Node) []*yaml.Node {
	n = deref(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}

	return n.Content
}

func scalar(n *yaml.Node) string {
	n = deref(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}

	return n.Value
}

func lookup(n *yaml.Node, key string) *yaml.Node {
	for k, v := range pairs(n) {
		if k == key {
			return v
		}
	}

	return nil
}

// pairs yields the key/value pairs of a mapping node in source order. Merge
// keys (<<) are expanded in place; explicit keys override merged ones and
// earlier merge sources override later ones.
func pairs(n *yaml.Node) iter.Seq2[string, *yaml.Node] {
	return func(yield func(string, *yaml.Node) bool) {
		m := mapping(n)
		if m == nil {
			return
		}

		explicit := make(map[string]bool, len(m.Content)/2)
		for i := 0; i+1 < len(m.Content); i += 2 {
			if !isMerge(m.Content[i]) {
				explicit[m.Content[i].Value] = true
			}
		}

		merged := make(map[string]bool)
		for i := 0; i+1 < len(m.Content); i += 2 {
			key, value := m.Content[i], m.Content[i+1]
			if !isMerge(key) {
				if !yield(key.Value, value) {
					return
				}
				continue
			}

			for _, src := range mergeSources(value) {
				for k, v := range pairs(src) {
					if explicit[k] || merged[k] {
						continue
					}
					merged[k] = true

					if !yield(k, v) {
						return
					}
				}
			}
		}
	}
}

func isMerge(key *yaml.Node) bool {
	return key.Kind == yaml.ScalarNode && key.ShortTag() == "!!merge"
}

// mergeSources returns the mappings a merge value refers to: a single
// mapping or a sequence of mappings.
func mergeSources(value *yaml.Node) []*yaml.Node {
	if m := mapping(value); m != nil {
		return []*yaml.Node{m}
	}

	var sources []*yaml.Node
	for _, item := range sequence(value) {
		if m := mapping(item); m != nil {
			sources = append(sources, m)
		}
	}

	return sources
}
