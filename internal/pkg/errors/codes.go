package errors

import "net/http"

var (
	ErrActivityNotFound = New(
		"ACTIVITY_NOT_FOUND",
		"Activity not found",
		http.StatusNotFound,
	)

	ErrBuildingNotFound = New(
		"BUILDING_NOT_FOUND",
		"Building not found",
		http.StatusNotFound,
	)

	ErrOrganizationNotFound = New(
		"ORGANIZATION_NOT_FOUND",
		"Organization not found",
		http.StatusNotFound,
	)

	ErrDepthLimit = New(
		"ACTIVITY_DEPTH_LIMIT",
		"Not possible to choice parent activity with third level depth",
		http.StatusBadRequest,
	)

	ErrReparentWithChildren = New(
		"ACTIVITY_HAS_CHILDREN",
		"Not possible to change parent activity while the activity has children activities",
		http.StatusBadRequest,
	)

	ErrSelfParent = New(
		"ACTIVITY_SELF_PARENT",
		"Not possible to choice the same activity as a parent",
		http.StatusBadRequest,
	)

	ErrGeoParamsIncomplete = New(
		"GEO_PARAMS_INCOMPLETE",
		"Fields latitude, longitude, radius should be specified together or not specified at all",
		http.StatusBadRequest,
	)

	ErrInvalidShape = New(
		"INVALID_SHAPE",
		"Invalid shape: must be one of circle, square",
		http.StatusBadRequest,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Invalid or missing authorization token",
		http.StatusUnauthorized,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

// ErrEmptyPhones - организация обязана сохранять хотя бы один номер телефона
var ErrEmptyPhones = Validation(FieldError{
	Field:   "phones",
	Message: "Organization should have at least one phone number",
})
