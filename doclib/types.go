package doclib

import (
	"github.com/getkin/kin-openapi/openapi3"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Doc describes one route, filled in by the route's Docs func
type Doc struct {
	Summary     string
	Description string
	Params      []Parameter
	Req         any
	Resp        any
	// Overrides the component name derived from the Resp type
	RespName string

	// Set by uapi
	Tags    []string
	Pattern string
	OpId    string
	Method  string
}

type Openapi struct {
	OpenAPI    string                               `json:"openapi"`
	Info       Info                                 `json:"info"`
	Servers    []Server                             `json:"servers"`
	Components Component                            `json:"components"`
	Paths      *orderedmap.OrderedMap[string, Path] `json:"paths"`
	Tags       []Tag                                `json:"tags,omitempty"`
}

type Server struct {
	URL         string         `json:"url"`
	Description string         `json:"description"`
	Variables   map[string]any `json:"variables"`
}

type Component struct {
	Schemas       map[string]any     `json:"schemas"`
	RequestBodies map[string]ReqBody `json:"requestBodies"`
}

type ReqBody struct {
	Description string             `json:"description,omitempty"`
	Required    bool               `json:"required"`
	Content     map[string]Content `json:"content"`
}

type Content struct {
	Schema *openapi3.SchemaRef `json:"schema"`
}

type Path struct {
	Summary     string     `json:"summary,omitempty"`
	Description string     `json:"description,omitempty"`
	Get         *Operation `json:"get,omitempty"`
	Post        *Operation `json:"post,omitempty"`
	Put         *Operation `json:"put,omitempty"`
	Patch       *Operation `json:"patch,omitempty"`
	Delete      *Operation `json:"delete,omitempty"`
	Head        *Operation `json:"head,omitempty"`
}

type Operation struct {
	Tags        []string            `json:"tags"`
	Summary     string              `json:"summary"`
	Description string              `json:"description"`
	ID          string              `json:"operationId"`
	Parameters  []Parameter         `json:"parameters"`
	RequestBody *Schema             `json:"requestBody,omitempty"`
	Responses   map[string]Response `json:"responses"`
}

type Response struct {
	Description string                `json:"description"`
	Content     map[string]SchemaResp `json:"content"`
}

type SchemaResp struct {
	Schema Schema `json:"schema"`
}

// Schema is a $ref to a component
type Schema struct {
	Ref string `json:"$ref"`
}

type Parameter struct {
	Name        string              `json:"name"`
	In          string              `json:"in"`
	Description string              `json:"description"`
	Required    bool                `json:"required"`
	Schema      *openapi3.SchemaRef `json:"schema"`
}

type Tag struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Info struct {
	Title          string  `json:"title"`
	TermsOfService string  `json:"termsOfService,omitempty"`
	Description    string  `json:"description"`
	Version        string  `json:"version"`
	Contact        Contact `json:"contact"`
	License        License `json:"license"`
}

type Contact struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Email string `json:"email,omitempty"`
}

type License struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
