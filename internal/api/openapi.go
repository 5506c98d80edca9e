package api

import (
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/isaqu3d/star-wars-wiki-api/internal/api/shared"
	"github.com/isaqu3d/star-wars-wiki-api/internal/domain"
)

// NewOpenAPIDocument returns an OpenAPI 3 document with no paths.
func NewOpenAPIDocument(version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Star Wars Wiki API",
			Description: "Characters, planets, films, starships and vehicles of the Star Wars universe.",
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// DescribeResource adds the CRUD and relation paths of resource.
func DescribeResource[T any](doc *openapi3.T, resource *domain.Resource[T], relations ...domain.Relation) {
	entity := structSchema(reflect.TypeOf((*T)(nil)).Elem())
	payload := structSchema(reflect.TypeOf(resource.NewInput()).Elem())
	created := structSchema(reflect.TypeOf(resource.NewInput()).Elem())
	created.Required = append([]string(nil), resource.Required...)

	collection := "/" + resource.Plural
	item := collection + "/{id}"
	wrapped := openapi3.NewObjectSchema().WithProperty(resource.Singular, entity)

	sortable := make([]any, 0, len(resource.SortColumns))
	for _, c := range resource.SortColumns {
		sortable = append(sortable, c)
	}

	list := operation(resource.Plural+"List", "List "+resource.Plural,
		http.StatusOK, listSchema(resource.Plural, entity), http.StatusBadRequest)
	list.Parameters = openapi3.Parameters{
		{Value: openapi3.NewQueryParameter("search").
			WithDescription("Case-insensitive substring of " + resource.SearchColumn).
			WithSchema(openapi3.NewStringSchema().WithMaxLength(MaxSearchLength))},
		{Value: openapi3.NewQueryParameter("orderBy").
			WithSchema(openapi3.NewStringSchema().WithEnum(sortable...))},
		{Value: openapi3.NewQueryParameter("page").
			WithSchema(openapi3.NewIntegerSchema().WithMin(1))},
		{Value: openapi3.NewQueryParameter("limit").
			WithSchema(openapi3.NewIntegerSchema().WithMin(1).WithMax(100))},
	}

	create := operation(resource.Plural+"Create", "Create a "+resource.Singular,
		http.StatusCreated, wrapped, http.StatusBadRequest, http.StatusMethodNotAllowed)
	create.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(created),
	}

	get := operation(resource.Plural+"Get", "Get a "+resource.Singular,
		http.StatusOK, wrapped, http.StatusBadRequest, http.StatusNotFound)
	get.Parameters = idParameter()

	update := operation(resource.Plural+"Update", "Update a "+resource.Singular,
		http.StatusOK, wrapped, http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed)
	update.Parameters = idParameter()
	update.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(payload),
	}

	del := operation(resource.Plural+"Delete", "Delete a "+resource.Singular,
		http.StatusNoContent, nil, http.StatusNotFound, http.StatusMethodNotAllowed)
	del.Parameters = idParameter()

	doc.Paths.Set(collection, &openapi3.PathItem{Get: list, Post: create})
	doc.Paths.Set(item, &openapi3.PathItem{Get: get, Put: update, Delete: del})

	for _, rel := range relations {
		op := operation(resource.Plural+"_"+rel.Name, "List "+rel.Name+" of a "+resource.Singular,
			http.StatusOK, listSchema(rel.Name, openapi3.NewObjectSchema()),
			http.StatusBadRequest, http.StatusNotFound)
		op.Parameters = idParameter()
		doc.Paths.Set(item+"/"+rel.Name, &openapi3.PathItem{Get: op})
	}
}

// DescribeCharacterImage adds the character image upload path.
func DescribeCharacterImage(doc *openapi3.T) {
	character := structSchema(reflect.TypeOf(domain.Character{}))
	op := operation("charactersImageUpload", "Upload a character image",
		http.StatusOK, openapi3.NewObjectSchema().WithProperty(domain.Characters.Singular, character),
		http.StatusBadRequest, http.StatusNotFound, http.StatusServiceUnavailable)
	op.Parameters = idParameter()

	form := openapi3.NewObjectSchema().
		WithProperty(ImageFormField, openapi3.NewStringSchema().WithFormat("binary"))
	form.Required = []string{ImageFormField}
	op.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().WithRequired(true).WithContent(openapi3.Content{
			"multipart/form-data": openapi3.NewMediaType().WithSchema(form),
		}),
	}
	doc.Paths.Set("/characters/{id}/image", &openapi3.PathItem{Put: op})
}

// OpenAPIHandler serves doc as JSON.
func OpenAPIHandler(doc *openapi3.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, doc)
	}
}

// operation builds an operation whose success response carries schema
// (or no body when schema is nil) plus JSON error responses.
func operation(id, summary string, status int, schema *openapi3.Schema, errorStatuses ...int) *openapi3.Operation {
	success := openapi3.NewResponse().WithDescription(http.StatusText(status))
	if schema != nil {
		success = success.WithJSONSchema(schema)
	}

	op := openapi3.NewOperation()
	op.OperationID = id
	op.Summary = summary
	op.Responses = openapi3.NewResponses(openapi3.WithStatus(status, &openapi3.ResponseRef{Value: success}))
	for _, s := range append(errorStatuses, http.StatusInternalServerError) {
		op.Responses.Set(strconv.Itoa(s), &openapi3.ResponseRef{Value: errorResponse(s)})
	}
	return op
}

func idParameter() openapi3.Parameters {
	return openapi3.Parameters{
		{Value: openapi3.NewPathParameter("id").
			WithSchema(openapi3.NewIntegerSchema().WithMin(1).WithMax(MaxID))},
	}
}

func listSchema(key string, items *openapi3.Schema) *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty(key, openapi3.NewArraySchema().WithItems(items)).
		WithProperty("total", openapi3.NewIntegerSchema())
}

func errorResponse(status int) *openapi3.Response {
	schema := openapi3.NewObjectSchema().
		WithProperty("error", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("code", openapi3.NewStringSchema()).
		WithProperty("statusCode", openapi3.NewIntegerSchema()).
		WithProperty("timestamp", openapi3.NewDateTimeSchema()).
		WithProperty("path", openapi3.NewStringSchema()).
		WithProperty("trace_id", openapi3.NewStringSchema()).
		WithProperty("details", openapi3.NewObjectSchema().WithAdditionalProperties(openapi3.NewStringSchema()))
	return openapi3.NewResponse().WithDescription(http.StatusText(status)).WithJSONSchema(schema)
}

// structSchema describes the JSON form of a flat struct of strings and
// integers. Pointer fields are nullable.
func structSchema(t reflect.Type) *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			for name, prop := range structSchema(f.Type).Properties {
				schema.Properties[name] = prop
			}
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		ft := f.Type
		nullable := ft.Kind() == reflect.Pointer
		if nullable {
			ft = ft.Elem()
		}

		var prop *openapi3.Schema
		switch ft.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			prop = openapi3.NewIntegerSchema()
		default:
			prop = openapi3.NewStringSchema()
		}
		if nullable {
			prop = prop.WithNullable()
		}
		schema = schema.WithProperty(name, prop)
	}
	return schema
}
