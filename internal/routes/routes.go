package routes

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	structValidator "github.com/go-playground/validator/v10"

	"github.com/avator7/todoapi/internal/interfaces"
	"github.com/avator7/todoapi/internal/models/dto"
)

type Route struct {
	Metrics     interfaces.Metrics
	UserService interfaces.UserService
	TodoService interfaces.TodoService
	validator   *structValidator.Validate
}

// NewRoute creates a new Route instance.
func NewRoute(metrics interfaces.Metrics, userService interfaces.UserService,
	todoService interfaces.TodoService, validator *structValidator.Validate,
) *Route {
	return &Route{
		Metrics:     metrics,
		UserService: userService,
		TodoService: todoService,
		validator:   validator,
	}
}

// CreateUser handles POST /users. Credentials arrive as query or form
// parameters; the response carries the created record without the digest.
// No authentication is required on this endpoint.
func (r *Route) CreateUser(w http.ResponseWriter, req *http.Request) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(UserCreateRequestsTotal)
	}

	if err := req.ParseForm(); err != nil {
		r.errorResponse(w, http.StatusBadRequest, err, ErrMissingCredentials)
		r.countError(UserCreateErrorsTotal)
		return
	}

	createRequest := &dto.CreateUserRequestDTO{
		Username: req.Form.Get(ParamUsername),
		Password: req.Form.Get(ParamPassword),
	}
	if err := r.validator.Struct(createRequest); err != nil {
		r.errorResponse(w, http.StatusBadRequest, err, ErrMissingCredentials)
		r.countError(UserCreateErrorsTotal)
		return
	}

	startTime := time.Now()
	user, err := r.UserService.RegisterUser(req.Context(), createRequest.Username, createRequest.Password)
	if err != nil {
		r.errorResponse(w, http.StatusInternalServerError, err, ErrFailedToCreateUser)
		r.countError(UserCreateErrorsTotal)
		return
	}
	if r.Metrics != nil {
		r.Metrics.ObserveHistogram(UserCreateDurationSeconds, time.Since(startTime).Seconds())
	}

	r.jsonResponse(w, http.StatusOK, user)
}

// ListTodos handles GET /todos with skip/limit paging.
func (r *Route) ListTodos(w http.ResponseWriter, req *http.Request) {
	r.countOp(OpList)

	skip, limit, err := parsePaging(req)
	if err != nil {
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidPaging)
		r.countOpError(OpList)
		return
	}

	startTime := time.Now()
	todos, err := r.TodoService.ListTodos(req.Context(), skip, limit)
	if err != nil {
		r.errorResponse(w, http.StatusInternalServerError, err, ErrInternalServer)
		r.countOpError(OpList)
		return
	}
	r.observeOp(OpList, startTime)

	r.jsonResponse(w, http.StatusOK, todos)
}

// CreateTodo handles POST /todos. The title arrives as a query or form
// parameter; the created item always starts with completed=false.
func (r *Route) CreateTodo(w http.ResponseWriter, req *http.Request) {
	r.countOp(OpCreate)

	if err := req.ParseForm(); err != nil || !req.Form.Has(ParamTitle) {
		r.errorResponse(w, http.StatusBadRequest, err, ErrMissingTitle)
		r.countOpError(OpCreate)
		return
	}

	startTime := time.Now()
	todo, err := r.TodoService.CreateTodo(req.Context(), req.Form.Get(ParamTitle))
	if err != nil {
		r.errorResponse(w, http.StatusInternalServerError, err, ErrInternalServer)
		r.countOpError(OpCreate)
		return
	}
	r.observeOp(OpCreate, startTime)

	r.jsonResponse(w, http.StatusOK, todo)
}

// GetTodo handles GET /todos/{id}.
func (r *Route) GetTodo(w http.ResponseWriter, req *http.Request) {
	r.countOp(OpGet)

	id, err := parseTodoID(req)
	if err != nil {
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidTodoID)
		r.countOpError(OpGet)
		return
	}

	startTime := time.Now()
	todo, err := r.TodoService.GetTodo(req.Context(), id)
	if err != nil {
		r.errorResponse(w, http.StatusInternalServerError, err, ErrInternalServer)
		r.countOpError(OpGet)
		return
	}
	if todo == nil {
		r.notFoundResponse(w, OpGet)
		return
	}
	r.observeOp(OpGet, startTime)

	r.jsonResponse(w, http.StatusOK, todo)
}

// UpdateTodo handles PUT /todos/{id}. Title and completed are each
// optional; an omitted parameter leaves the stored value unchanged while a
// supplied one overwrites it, zero values included.
func (r *Route) UpdateTodo(w http.ResponseWriter, req *http.Request) {
	r.countOp(OpUpdate)

	id, err := parseTodoID(req)
	if err != nil {
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidTodoID)
		r.countOpError(OpUpdate)
		return
	}

	update, err := parseTodoUpdate(req)
	if err != nil {
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidCompleted)
		r.countOpError(OpUpdate)
		return
	}

	startTime := time.Now()
	todo, err := r.TodoService.UpdateTodo(req.Context(), id, update.Title, update.Completed)
	if err != nil {
		r.errorResponse(w, http.StatusInternalServerError, err, ErrInternalServer)
		r.countOpError(OpUpdate)
		return
	}
	if todo == nil {
		r.notFoundResponse(w, OpUpdate)
		return
	}
	r.observeOp(OpUpdate, startTime)

	r.jsonResponse(w, http.StatusOK, todo)
}

// DeleteTodo handles DELETE /todos/{id}.
func (r *Route) DeleteTodo(w http.ResponseWriter, req *http.Request) {
	r.countOp(OpDelete)

	id, err := parseTodoID(req)
	if err != nil {
		r.errorResponse(w, http.StatusBadRequest, err, ErrInvalidTodoID)
		r.countOpError(OpDelete)
		return
	}

	startTime := time.Now()
	deleted, err := r.TodoService.DeleteTodo(req.Context(), id)
	if err != nil {
		r.errorResponse(w, http.StatusInternalServerError, err, ErrInternalServer)
		r.countOpError(OpDelete)
		return
	}
	if !deleted {
		r.notFoundResponse(w, OpDelete)
		return
	}
	r.observeOp(OpDelete, startTime)

	r.jsonResponse(w, http.StatusOK, dto.DeleteTodoResponseDTO{Detail: MsgTodoDeleted})
}

func parseTodoID(req *http.Request) (int64, error) {
	return strconv.ParseInt(req.PathValue("id"), 10, 64)
}

func parsePaging(req *http.Request) (skip int64, limit int64, err error) {
	skip, limit = DefaultSkip, DefaultLimit
	query := req.URL.Query()

	if raw := query.Get(ParamSkip); raw != "" {
		skip, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || skip < 0 {
			return 0, 0, strconv.ErrSyntax
		}
	}
	if raw := query.Get(ParamLimit); raw != "" {
		limit, err = strconv.ParseInt(raw, 10, 64)
		if err != nil || limit < 0 {
			return 0, 0, strconv.ErrSyntax
		}
	}
	return skip, limit, nil
}

func parseTodoUpdate(req *http.Request) (*dto.UpdateTodoRequestDTO, error) {
	if err := req.ParseForm(); err != nil {
		return nil, err
	}

	update := &dto.UpdateTodoRequestDTO{}
	if req.Form.Has(ParamTitle) {
		title := req.Form.Get(ParamTitle)
		update.Title = &title
	}
	if req.Form.Has(ParamCompleted) {
		completed, err := strconv.ParseBool(req.Form.Get(ParamCompleted))
		if err != nil {
			return nil, err
		}
		update.Completed = &completed
	}
	return update, nil
}

func (r *Route) jsonResponse(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(statusCode)
	// Status is already written; an encode failure has nowhere to go.
	_ = json.NewEncoder(w).Encode(body)
}

func (r *Route) notFoundResponse(w http.ResponseWriter, op string) {
	if r.Metrics != nil {
		r.Metrics.IncCounterVec(TodoNotFoundTotal, op)
	}
	r.errorResponse(w, http.StatusNotFound, nil, ErrTodoNotFound)
}

func (r *Route) errorResponse(w http.ResponseWriter, statusCode int, err error, message string) {
	w.Header().Set(ContentType, ContentTypeJson)
	w.WriteHeader(statusCode)
	body := dto.ErrorResponseDTO{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	_ = json.NewEncoder(w).Encode(body)
}

func (r *Route) countOp(op string) {
	if r.Metrics != nil {
		r.Metrics.IncCounterVec(TodoRequestsTotal, op)
	}
}

func (r *Route) countOpError(op string) {
	if r.Metrics != nil {
		r.Metrics.IncCounterVec(TodoErrorsTotal, op)
	}
}

func (r *Route) observeOp(op string, startTime time.Time) {
	if r.Metrics != nil {
		r.Metrics.ObserveHistogramVec(TodoDurationSeconds, time.Since(startTime).Seconds(), op)
	}
}

func (r *Route) countError(name string) {
	if r.Metrics != nil {
		r.Metrics.IncCounter(name)
	}
}
