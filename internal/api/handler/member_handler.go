package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fitengage/gym-manager/internal/api/metrics"
	"github.com/fitengage/gym-manager/internal/core/domain"
	"github.com/fitengage/gym-manager/internal/core/ports"
)

// MemberHandler serves members and the membership-type catalog.
type MemberHandler struct {
	service ports.MembershipService
}

func NewMemberHandler(service ports.MembershipService) *MemberHandler {
	return &MemberHandler{service: service}
}

// List handles GET /members.
//
// @Summary      List members
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        search  query     string  false  "Case-insensitive name filter"
// @Success      200     {object}  membersResponse
// @Failure      401     {object}  envelope
// @Failure      503     {object}  membersResponse
// @Router       /members [get]
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.service.ListMembers(c.Request().Context(), ports.MemberFilter{Search: c.QueryParam("search")})
	if err != nil {
		return listFailure(c, err, membersResponse{envelope: failed(err), Members: []domain.Member{}})
	}
	return c.JSON(http.StatusOK, membersResponse{envelope: succeeded, Members: members})
}

// ListTypes handles GET /membership-types.
//
// @Summary      List membership types
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  membershipTypesResponse
// @Failure      401  {object}  envelope
// @Failure      503  {object}  membershipTypesResponse
// @Router       /membership-types [get]
func (h *MemberHandler) ListTypes(c echo.Context) error {
	types, err := h.service.ListMembershipTypes(c.Request().Context())
	if err != nil {
		return listFailure(c, err, membershipTypesResponse{envelope: failed(err), MembershipTypes: []domain.MembershipType{}})
	}
	return c.JSON(http.StatusOK, membershipTypesResponse{envelope: succeeded, MembershipTypes: types})
}

// Create handles POST /members.
//
// @Summary      Add a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      memberRequest  true  "Member fields"
// @Success      201   {object}  memberCreatedResponse
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	in, err := bindMember(c)
	if err != nil {
		return err
	}
	id, err := h.service.AddMember(c.Request().Context(), in)
	if err != nil {
		return err
	}
	metrics.MembersWrittenTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, memberCreatedResponse{envelope: succeeded, MemberID: id})
}

// Update handles PUT /members/:id. Every field is overwritten.
//
// @Summary      Update a member
// @Tags         members
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Member ID"
// @Param        body  body      memberRequest  true  "Member fields"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	in, err := bindMember(c)
	if err != nil {
		return err
	}
	if err := h.service.UpdateMember(c.Request().Context(), id, in); err != nil {
		return err
	}
	metrics.MembersWrittenTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, succeeded)
}

// Delete handles DELETE /members/:id. Unknown ids succeed.
//
// @Summary      Delete a member
// @Tags         members
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Member ID"
// @Success      200  {object}  envelope
// @Router       /members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteMember(c.Request().Context(), id); err != nil {
		return err
	}
	metrics.MembersWrittenTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, succeeded)
}

func bindMember(c echo.Context) (ports.MemberInput, error) {
	var req memberRequest
	if err := c.Bind(&req); err != nil {
		return ports.MemberInput{}, echo.NewHTTPError(http.StatusBadRequest, "Invalid payload.")
	}
	if err := c.Validate(&req); err != nil {
		return ports.MemberInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.MemberInput{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		MembershipTypeID: req.MembershipTypeID,
		MembershipStart:  req.MembershipStart,
		MembershipEnd:    req.MembershipEnd,
		Notes:            req.Notes,
	}, nil
}
