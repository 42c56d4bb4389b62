package interactions

import (
	docs "github.com/stevenson0/Insta-clone/doclib"
)

func idParam() docs.Parameter {
	return docs.Parameter{
		Name:        "id",
		In:          "path",
		Description: "The id returned when the screen was mounted",
		Required:    true,
		Schema:      docs.IdSchema,
	}
}

func pathParam(name, description string) docs.Parameter {
	return docs.Parameter{
		Name:        name,
		In:          "path",
		Description: description,
		Required:    true,
		Schema:      docs.StringSchema,
	}
}
