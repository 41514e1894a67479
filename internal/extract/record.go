package extract

import (
	"maps"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/GabrielNunesIT/openapi-table/internal/domain"
	"github.com/getkin/kin-openapi/openapi3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	jsonMediaType = "application/json"
	defaultParam  = openapi3.TypeString
	listSeparator = ", "
	apiSuffix     = "-api"
	preferredHost = "api.tripgen.com"
)

// successCodes are checked in order for the response DTO.
var successCodes = []string{"200", "201"}

// DefaultServiceNames maps service identifiers to their display labels.
var DefaultServiceNames = map[string]string{
	"user-service":     "사용자 서비스",
	"trip-service":     "여행 서비스",
	"ai-service":       "AI 서비스",
	"location-service": "장소 서비스",
}

// Source identifies the document an operation came from.
type Source struct {
	FileName   string
	Server     *domain.Server
	Components domain.Components
}

// Builder turns operations into report rows.
type Builder struct {
	serviceNames    map[string]string
	preferredServer string
	titleCaser      cases.Caser
}

// Option configures a Builder.
type Option func(*Builder)

// WithServiceNames replaces the service label table.
func WithServiceNames(names map[string]string) Option {
	return func(b *Builder) {
		b.serviceNames = maps.Clone(names)
	}
}

// WithPreferredServer sets the substring that selects the base-path server.
func WithPreferredServer(match string) Option {
	return func(b *Builder) {
		b.preferredServer = match
	}
}

// NewBuilder creates a new row builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		serviceNames:    maps.Clone(DefaultServiceNames),
		preferredServer: preferredHost,
		titleCaser:      cases.Title(language.English, cases.NoLower),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Rows builds one row per supported operation of the document.
func (b *Builder) Rows(doc *domain.Document) []domain.Row {
	src := Source{
		FileName:   doc.FileName,
		Server:     SelectServer(doc.Servers, b.preferredServer),
		Components: doc.Components,
	}

	var rows []domain.Row
	for op := range Operations(doc) {
		rows = append(rows, b.Build(src, op))
	}

	return rows
}

// Build maps one operation onto a row. Missing pieces become empty strings.
func (b *Builder) Build(src Source, op domain.Operation) domain.Row {
	var row domain.Row

	row[domain.ColService] = b.ServiceName(src.FileName)
	row[domain.ColMicroservice] = MicroserviceName(src.FileName)
	row[domain.ColUserStoryID] = op.UserStory
	row[domain.ColUserStoryTitle] = op.Summary
	row[domain.ColController] = op.Controller
	row[domain.ColPurpose] = purpose(op)
	row[domain.ColMethod] = string(op.Method)
	row[domain.ColBasePath] = BasePath(src.Server)
	row[domain.ColPath] = op.Path
	row[domain.ColPathVariables] = variables(op.Parameters, openapi3.ParameterInPath, src.Components)
	row[domain.ColQueryVariables] = variables(op.Parameters, openapi3.ParameterInQuery, src.Components)

	req := requestDTO(op, src.Components)
	row[domain.ColRequestDTO] = req.name
	row[domain.ColRequestIsArray] = strconv.FormatBool(req.isArray)
	row[domain.ColRequestStructure] = req.structure

	resp := responseDTO(op, src.Components)
	row[domain.ColResponseDTO] = resp.name
	row[domain.ColResponseIsArray] = strconv.FormatBool(resp.isArray)
	row[domain.ColResponseStructure] = resp.structure

	return row
}

// ServiceName returns the display name for a document file name.
func (b *Builder) ServiceName(fileName string) string {
	id := strings.TrimSuffix(MicroserviceName(fileName), apiSuffix)
	if label, ok := b.serviceNames[id]; ok {
		return label
	}

	return b.titleCaser.String(strings.ReplaceAll(id, "-", " "))
}

// MicroserviceName strips the YAML extension from a file name.
func MicroserviceName(fileName string) string {
	switch ext := filepath.Ext(fileName); ext {
	case ".yaml", ".yml":
		return strings.TrimSuffix(fileName, ext)
	default:
		return fileName
	}
}

// SelectServer picks the first server whose URL contains match, falling back
// to the first server. It returns nil when there are none.
func SelectServer(servers []domain.Server, match string) *domain.Server {
	if len(servers) == 0 {
		return nil
	}

	if match != "" {
		for i := range servers {
			if strings.Contains(servers[i].URL, match) {
				return &servers[i]
			}
		}
	}

	return &servers[0]
}

// BasePath returns the escaped path component of the server URL, with server
// variables replaced by their defaults. A URL with no path yields "/". Text
// that is neither an absolute URL nor a rooted path is returned verbatim.
func BasePath(server *domain.Server) string {
	if server == nil || server.URL == "" {
		return ""
	}

	names, err := openapi3.Server{URL: server.URL}.ParameterNames()
	if err != nil {
		return server.URL
	}

	raw := server.URL
	for _, name := range names {
		if def, ok := server.Variables[name]; ok {
			raw = strings.ReplaceAll(raw, "{"+name+"}", def)
		}
	}

	u, err := url.Parse(raw)
	switch {
	case err != nil, u.Opaque != "":
		return server.URL
	case !u.IsAbs() && !strings.HasPrefix(raw, "/"):
		return server.URL
	}

	if path := u.EscapedPath(); path != "" {
		return path
	}

	return "/"
}

func purpose(op domain.Operation) string {
	if op.Description != "" {
		return op.Description
	}

	return op.Summary
}

func variables(params []domain.Parameter, in string, c domain.Components) string {
	var vars []string

	for _, p := range params {
		p = resolveParameter(p, c)
		if p.In != in {
			continue
		}

		typ := defaultParam
		if p.Schema != nil && p.Schema.Type != "" {
			typ = p.Schema.Type
		}

		vars = append(vars, typ+" "+p.Name)
	}

	return strings.Join(vars, listSeparator)
}

type dto struct {
	name      string
	isArray   bool
	structure string
}

func requestDTO(op domain.Operation, c domain.Components) dto {
	body := resolveRequestBody(op.RequestBody, c)
	if body == nil {
		return dto{}
	}

	return contentDTO(body.Content, c.Schemas)
}

func responseDTO(op domain.Operation, c domain.Components) dto {
	for _, code := range successCodes {
		if r, ok := op.Response(code); ok {
			return contentDTO(resolveResponse(r, c).Content, c.Schemas)
		}
	}

	return dto{}
}

func contentDTO(content map[string]domain.MediaType, registry domain.Schemas) dto {
	media, ok := content[jsonMediaType]
	if !ok || media.Schema == nil {
		return dto{}
	}

	var d dto

	target := media.Schema
	if target.Type == openapi3.TypeArray {
		d.isArray = true
		target = target.Items
		if target != nil && target.Ref != "" {
			d.name = RefName(target.Ref)
		}
	} else if target.Ref != "" {
		d.name = RefName(target.Ref)
	}

	d.structure = Flatten(target, registry)

	return d
}
