package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/taskboard-api/internal/api/metrics"
	"github.com/taskboard/taskboard-api/internal/core/ports"
)

// GroupHandler handles HTTP requests for group operations.
type GroupHandler struct {
	service ports.GroupService
}

func NewGroupHandler(service ports.GroupService) *GroupHandler {
	return &GroupHandler{service: service}
}

// Create handles POST /api/create/groups.
//
// @Summary      Create a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        body  body      createGroupRequest  true  "Group details"
// @Success      201   {object}  domain.Group
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/create/groups [post]
func (h *GroupHandler) Create(c echo.Context) error {
	var req createGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group, err := h.service.Create(c.Request().Context(), ports.CreateGroupInput{
		Name:        req.Name,
		Description: req.Description,
		CreatedBy:   req.CreatedBy,
		Members:     req.Members,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, group)
}

// ListMine handles GET /api/groups — groups created by the token's email.
//
// @Summary      List groups I created
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Group
// @Failure      401  {object}  messageResponse
// @Router       /api/groups [get]
func (h *GroupHandler) ListMine(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	groups, err := h.service.ListCreatedBy(c.Request().Context(), claims.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groups)
}

// MyGroup handles GET /api/user/group — the group containing the token's
// email, or null when the user is ungrouped.
//
// @Summary      Get my group
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Group
// @Failure      401  {object}  messageResponse
// @Router       /api/user/group [get]
func (h *GroupHandler) MyGroup(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	group, err := h.service.MyGroup(c.Request().Context(), claims.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, group)
}

// AddMembers handles PUT /api/groups/add-users — union-merges members into
// the named group. The merge is idempotent; a member already in another
// group is rejected with 409.
//
// @Summary      Add members to a group
// @Tags         groups
// @Accept       json
// @Produce      json
// @Param        body  body      addMembersRequest  true  "Group name and members"
// @Success      200   {object}  domain.Group
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /api/groups/add-users [put]
func (h *GroupHandler) AddMembers(c echo.Context) error {
	var req addMembersRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	group, err := h.service.AddMembers(c.Request().Context(), req.GroupName, req.Members)
	if err != nil {
		return err
	}

	metrics.GroupMembersMergedTotal.Inc()
	return c.JSON(http.StatusOK, group)
}

// List handles GET /api/admin/groups — every group, for administration.
//
// @Summary      List all groups
// @Tags         groups
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Group
// @Failure      401  {object}  messageResponse
// @Failure      403  {object}  messageResponse
// @Router       /api/admin/groups [get]
func (h *GroupHandler) List(c echo.Context) error {
	groups, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, groups)
}
