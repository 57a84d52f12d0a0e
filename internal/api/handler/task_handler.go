package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/api/metrics"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// TaskHandler handles HTTP requests for task operations.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Create handles POST /api/record/tasks — creates a self-owned task.
//
// @Summary      Create a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        body  body      createTaskRequest  true  "Task details"
// @Success      201   {object}  createTaskResponse
// @Failure      400   {object}  messageResponse
// @Router       /api/record/tasks [post]
func (h *TaskHandler) Create(c echo.Context) error {
	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	deadline, err := parseDeadline(req.DeadLine)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Create(c.Request().Context(), ports.CreateTaskInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Category:    req.Category,
		DueDate:     deadline,
		Email:       req.Email,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues("self").Inc()
	return c.JSON(http.StatusCreated, createTaskResponse{
		Message: "task created successfully",
		TaskID:  task.ID,
	})
}

// ListMine handles GET /api/tasks — tasks owned by the token's email. The
// scope always comes from verified claims, never from a query parameter.
//
// @Summary      List my tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Task
// @Failure      401  {object}  messageResponse
// @Router       /api/tasks [get]
func (h *TaskHandler) ListMine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListOwned(c.Request().Context(), claims.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// Edit handles PUT /api/edit/tasks/:id — full-field update.
//
// @Summary      Edit a task
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Task id"
// @Param        body  body      editTaskRequest  true  "Task fields"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/edit/tasks/{id} [put]
func (h *TaskHandler) Edit(c echo.Context) error {
	var req editTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	deadline, err := parseDeadline(req.DeadLine)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Edit(c.Request().Context(), ports.EditTaskInput{
		ID:          c.Param("id"),
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Category:    req.Category,
		DueDate:     deadline,
		Email:       req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// UpdateStatus handles PUT /api/tasks/status/:id — partial status update.
//
// @Summary      Update task status
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Task id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  domain.Task
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/tasks/status/{id} [put]
func (h *TaskHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, task)
}

// Delete handles DELETE /api/delete/tasks/:id. An unknown id yields 404.
//
// @Summary      Delete a task
// @Tags         tasks
// @Produce      json
// @Param        id  path  string  true  "Task id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/delete/tasks/{id} [delete]
func (h *TaskHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "task deleted successfully"})
}

// Assign handles POST /api/record/user/task — assigns a task to a member of
// the named group. The assigner is always the acting user from claims.
//
// @Summary      Assign a task to a group member
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignTaskRequest  true  "Assignment details"
// @Success      201   {object}  domain.Task
// @Failure      400   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/record/user/task [post]
func (h *TaskHandler) Assign(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req assignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	deadline, err := parseDeadline(req.DeadLine)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	task, err := h.service.Assign(c.Request().Context(), ports.AssignTaskInput{
		Name:          req.Name,
		Description:   req.Description,
		Status:        req.Status,
		Category:      req.Category,
		DueDate:       deadline,
		Assignee:      req.Assignee,
		GroupName:     req.GroupName,
		AssignerEmail: claims.Email,
	})
	if err != nil {
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues("group").Inc()
	return c.JSON(http.StatusCreated, task)
}

// ListAssigned handles GET /api/user/group/tasks — tasks assigned to the
// token's email.
//
// @Summary      List tasks assigned to me
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Task
// @Failure      401  {object}  messageResponse
// @Router       /api/user/group/tasks [get]
func (h *TaskHandler) ListAssigned(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	tasks, err := h.service.ListAssigned(c.Request().Context(), claims.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}

// ListGroup handles GET /api/groups/:groupName/tasks.
//
// @Summary      List a group's tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Param        groupName  path  string  true  "Group name"
// @Success      200  {array}   domain.Task
// @Failure      401  {object}  messageResponse
// @Router       /api/groups/{groupName}/tasks [get]
func (h *TaskHandler) ListGroup(c echo.Context) error {
	if _, err := ctxClaims(c); err != nil {
		return err
	}

	tasks, err := h.service.ListGroup(c.Request().Context(), c.Param("groupName"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tasks)
}
