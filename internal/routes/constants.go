package routes

var (
	UserCreateDurationSecondsBuckets = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	TodoDurationSecondsBuckets       = []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10}
)

const (
	// API route constants
	MetricsRouteAPI    = "/metrics"
	CreateUserRouteAPI = "POST /users"
	ListTodosRouteAPI  = "GET /todos"
	CreateTodoRouteAPI = "POST /todos"
	GetTodoRouteAPI    = "GET /todos/{id}"
	UpdateTodoRouteAPI = "PUT /todos/{id}"
	DeleteTodoRouteAPI = "DELETE /todos/{id}"

	// Content-Type constants
	ContentType     = "Content-Type"
	ContentTypeJson = "application/json"

	// Query/form parameter names
	ParamUsername  = "username"
	ParamPassword  = "password"
	ParamTitle     = "title"
	ParamCompleted = "completed"
	ParamSkip      = "skip"
	ParamLimit     = "limit"

	// List paging defaults
	DefaultSkip  = 0
	DefaultLimit = 100

	// Message constants
	MsgTodoDeleted = "Todo item deleted successfully"

	// Error messages
	ErrMissingCredentials     = "username and password parameters are required"
	ErrMissingTitle           = "title parameter is required"
	ErrInvalidTodoID          = "invalid todo id"
	ErrInvalidPaging          = "skip and limit must be non-negative integers"
	ErrInvalidCompleted       = "completed must be a boolean"
	ErrTodoNotFound           = "Todo not found"
	ErrFailedToCreateUser     = "Failed to create user"
	ErrFailedToEncodeResponse = "Failed to encode response"
	ErrInternalServer         = "Internal server error"

	// Metrics constants
	UserCreateRequestsTotal       = "user_create_requests_total"
	UserCreateRequestsTotalHelp   = "Total number of user creation requests received"
	UserCreateErrorsTotal         = "user_create_errors_total"
	UserCreateErrorsTotalHelp     = "Total number of errors during user creation requests"
	UserCreateDurationSeconds     = "user_create_duration_seconds"
	UserCreateDurationSecondsHelp = "Duration of user creation requests in seconds"
	TodoRequestsTotal             = "todo_requests_total"
	TodoRequestsTotalHelp         = "Total number of todo requests received by operation"
	TodoErrorsTotal               = "todo_errors_total"
	TodoErrorsTotalHelp           = "Total number of failed todo requests by operation"
	TodoNotFoundTotal             = "todo_not_found_total"
	TodoNotFoundTotalHelp         = "Total number of todo requests referencing an absent id"
	TodoDurationSeconds           = "todo_request_duration_seconds"
	TodoDurationSecondsHelp       = "Duration of todo requests in seconds by operation"

	// Metric label values for todo operations
	OpList   = "list"
	OpCreate = "create"
	OpGet    = "get"
	OpUpdate = "update"
	OpDelete = "delete"
)
