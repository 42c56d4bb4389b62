// Package doclib builds the OpenAPI document served at /openapi from the
// Docs func of every route.
package doclib

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type SetupData struct {
	URL             string
	ErrorStruct     any
	Info            Info
	errorStructName string
}

var (
	DocsSetupData *SetupData
	stringType    = openapi3.Types([]string{"string"})
)

func Setup() {
	if DocsSetupData == nil {
		panic("DocsSetupData is nil")
	}

	var err error

	badRequestSchema, err = openapi3gen.NewSchemaRefForValue(DocsSetupData.ErrorStruct, nil, SchemaInject(DocsSetupData.ErrorStruct))

	if err != nil {
		panic(err)
	}

	DocsSetupData.errorStructName = schemaNameOf(DocsSetupData.ErrorStruct)

	IdSchema, err = openapi3gen.NewSchemaRefForValue("d3b07384-d113-4ec6-a3e4-6f3c5b2b7a1e", nil)

	if err != nil {
		panic(err)
	}

	StringSchema, err = openapi3gen.NewSchemaRefForValue("", nil)

	if err != nil {
		panic(err)
	}

	api.Components = Component{
		Schemas:       map[string]any{DocsSetupData.errorStructName: badRequestSchema},
		RequestBodies: map[string]ReqBody{},
	}

	api.Info = DocsSetupData.Info
	api.Servers[0].URL = DocsSetupData.URL
	api.Paths = orderedmap.New[string, Path]()
	api.Tags = nil
}

var api = Openapi{
	OpenAPI: "3.1.0",
	Servers: []Server{
		{
			Description: "Insta-clone screen API",
			Variables:   map[string]any{},
		},
	},
}

var badRequestSchema *openapi3.SchemaRef

// IdSchema documents screen ids, StringSchema every other free-form param
var IdSchema *openapi3.SchemaRef
var StringSchema *openapi3.SchemaRef

// schemaNameOf strips package paths so generic results get readable names
func schemaNameOf(v any) string {
	name := reflect.TypeOf(v).String()

	if i := strings.Index(name, "["); i >= 0 {
		args := name[i+1 : len(name)-1]
		list := strings.HasPrefix(args, "[]")

		args = strings.TrimPrefix(args[strings.LastIndex(args, "/")+1:], "[]")
		if list {
			args += "List"
		}

		name = name[:i] + "_" + args
	}

	return strings.ReplaceAll(name, "docs.", "")
}

func AddTag(name, description string) {
	api.Tags = append(api.Tags, Tag{
		Name:        name,
		Description: description,
	})
}

func SchemaInject(s any) openapi3gen.Option {
	return openapi3gen.SchemaCustomizer(func(name string, ft reflect.Type, tag reflect.StructTag, schema *openapi3.Schema) error {
		if tag.Get("description") != "" {
			schema.Description = tag.Get("description")
		}

		if tag.Get("enum") != "" {
			enumVals := strings.Split(tag.Get("enum"), ",")

			schema.Enum = []any{}

			for _, val := range enumVals {
				schema.Enum = append(schema.Enum, val)
			}
		}

		if tag.Get("validate") != "" {
			validateVals := strings.Split(tag.Get("validate"), ",")

			for _, val := range validateVals {
				key := strings.Split(val, "=")[0]
				switch key {
				case "required":
					schema.Nullable = false
				case "oneof":
					enumVals := strings.Split(val, "=")[1]

					var enum []any

					for _, val := range strings.Split(enumVals, " ") {
						enum = append(enum, val)
					}

					schema.Enum = enum
				}
			}
		}

		switch ft.Name() {
		case "Duration":
			schema.Type = &stringType
			schema.Format = "duration"
		case "Time":
			schema.Type = &stringType
			schema.Format = "date-time"
		case "UUID":
			schema.Type = &stringType
			schema.Format = "uuid"
		}

		if tag.Get("type") != "" {
			typ := openapi3.Types([]string{tag.Get("type")})
			schema.Type = &typ
		}

		return nil
	})
}

func Route(doc *Doc) {
	if len(doc.Params) == 0 {
		doc.Params = []Parameter{}
	}

	if len(doc.Tags) == 0 {
		panic("no tags set in route: " + doc.Pattern)
	}

	for _, param := range doc.Params {
		if param.In == "" {
			panic("no in set in route: " + doc.Pattern)
		}

		if param.Name == "" {
			panic("no name set in route: " + doc.Pattern)
		}

		if param.Schema == nil {
			panic("no schema set in route: " + doc.Pattern)
		}

		if param.Description == "" {
			panic("no description set in route: " + doc.Pattern)
		}
	}

	if doc.OpId == "" {
		panic("no opId set in route: " + doc.Pattern)
	}

	if doc.Pattern == "" {
		panic("no path set in route: " + doc.OpId)
	}

	if doc.Resp == nil {
		doc.Resp = DocsSetupData.ErrorStruct
	}

	schemaName := doc.RespName
	if schemaName == "" {
		schemaName = schemaNameOf(doc.Resp)
	}

	if schemaName != DocsSetupData.errorStructName {
		if os.Getenv("DEBUG") == "true" {
			fmt.Println(schemaName)
		}

		if _, ok := api.Components.Schemas[schemaName]; !ok {
			schemaRef, err := openapi3gen.NewSchemaRefForValue(doc.Resp, nil, SchemaInject(doc.Resp))

			if err != nil {
				panic(err)
			}

			api.Components.Schemas[schemaName] = schemaRef
		}
	}

	var reqBodyRef *Schema
	if doc.Req != nil {
		schemaRef, err := openapi3gen.NewSchemaRefForValue(doc.Req, nil, SchemaInject(doc.Req))

		if err != nil {
			panic(err)
		}

		reqSchemaName := schemaNameOf(doc.Req)

		if os.Getenv("DEBUG") == "true" {
			fmt.Println("REQUEST:", reqSchemaName)
		}

		api.Components.RequestBodies[doc.Method+"_"+reqSchemaName] = ReqBody{
			Required: true,
			Content: map[string]Content{
				"application/json": {
					Schema: schemaRef,
				},
			},
		}

		reqBodyRef = &Schema{Ref: "#/components/requestBodies/" + doc.Method + "_" + reqSchemaName}
	}

	operationData := &Operation{
		Tags:        doc.Tags,
		Summary:     doc.Summary,
		Description: doc.Description,
		ID:          doc.OpId,
		Parameters:  doc.Params,
		RequestBody: reqBodyRef,
		Responses: map[string]Response{
			"200": {
				Description: "Success",
				Content: map[string]SchemaResp{
					"application/json": {
						Schema: Schema{
							Ref: "#/components/schemas/" + schemaName,
						},
					},
				},
			},
			"400": {
				Description: "Bad Request",
				Content: map[string]SchemaResp{
					"application/json": {
						Schema: Schema{
							Ref: "#/components/schemas/" + DocsSetupData.errorStructName,
						},
					},
				},
			},
		},
	}

	op, _ := api.Paths.Get(doc.Pattern)

	switch strings.ToLower(doc.Method) {
	case "head":
		op.Head = operationData
	case "get":
		op.Get = operationData
	case "post":
		op.Post = operationData
	case "put":
		op.Put = operationData
	case "patch":
		op.Patch = operationData
	case "delete":
		op.Delete = operationData
	default:
		panic("unknown method: " + doc.Method)
	}

	api.Paths.Set(doc.Pattern, op)
}

func GetSchema() Openapi {
	return api
}
