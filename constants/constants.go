package constants

import "time"

const (
	ResourceNotFound    = `{"message":"That screen or item does not exist, it may have been unmounted"}`
	EndpointNotFound    = `{"message":"This endpoint does not exist"}`
	BadRequest          = `{"message":"The request is invalid"}`
	Conflict            = `{"message":"The screen is not ready for this action yet"}`
	InternalServerError = `{"message":"Something went wrong on our end"}`
	MethodNotAllowed    = `{"message":"That method is not allowed for this endpoint"}`
	BodyRequired        = `{"message":"A body is required for this endpoint"}`
)

// How often idle screens are looked for
const SweepInterval = time.Minute
