package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"retail_hub_v1_202608/internal/api/dto"
	"retail_hub_v1_202608/internal/service"
	"retail_hub_v1_202608/internal/validation"
)

type UserController struct {
	userSvc *service.UserService
}

func NewUserController(userSvc *service.UserService) *UserController {
	return &UserController{
		userSvc: userSvc,
	}
}

// ListUsers 获取用户列表
// @Summary 获取用户列表
// @Description 返回全部未删除用户
// @Tags User (用户管理)
// @Produce json
// @Success 200 {array} dto.UserResp "用户列表"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userSvc.ListUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserRespList(users))
}

// GetUser 获取用户详情
// @Summary 获取用户详情
// @Description 软删除的用户等同于不存在，返回 404
// @Tags User (用户管理)
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} dto.UserResp "用户详情"
// @Failure 404 {object} map[string]string "用户不存在"
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "user id")
	if !ok {
		return
	}

	user, err := c.userSvc.GetUser(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResp(user))
}

// CreateUser 新建用户
// @Summary 新建用户
// @Tags User (用户管理)
// @Accept json
// @Produce json
// @Param request body dto.UserSaveReq true "用户字段"
// @Success 201 {object} dto.UserResp "新建的用户"
// @Failure 400 {object} map[string]string "缺少必填字段"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	data := bindLooseJSON(ctx)
	if ok, msg := validation.UserData(data); !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	user, err := c.userSvc.CreateUser(ctx.Request.Context(), dto.UserSaveReq{
		Name:        asString(data["name"]),
		PhoneNumber: asString(data["phone_number"]),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewUserResp(user))
}

// UpdateUser 更新用户
// @Summary 更新用户
// @Tags User (用户管理)
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param request body dto.UserSaveReq true "用户字段"
// @Success 200 {object} dto.UserResp "更新后的用户"
// @Failure 400 {object} map[string]string "缺少必填字段"
// @Failure 404 {object} map[string]string "用户不存在"
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "user id")
	if !ok {
		return
	}

	// 存在性守卫先于请求体校验
	if _, err := c.userSvc.GetUser(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	data := bindLooseJSON(ctx)
	if ok, msg := validation.UserData(data); !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	user, err := c.userSvc.UpdateUser(ctx.Request.Context(), id, dto.UserSaveReq{
		Name:        asString(data["name"]),
		PhoneNumber: asString(data["phone_number"]),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResp(user))
}

// DeleteUser 删除用户（软删除）
// @Summary 删除用户
// @Description 只打删除标记不删行，重复删除返回 404
// @Tags User (用户管理)
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} map[string]string "删除确认"
// @Failure 404 {object} map[string]string "用户不存在"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "user id")
	if !ok {
		return
	}

	if err := c.userSvc.DeleteUser(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// ModifyRole 修改用户在店铺的角色
// @Summary 修改用户角色
// @Description 以 (user_id, shop_id) 为自然键 upsert，同一用户同一店铺只保留一行
// @Tags User (用户管理)
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param request body dto.UserRoleModifyReq true "角色字段，role 取值 staff/admin"
// @Success 200 {object} dto.UserRoleResp "最终的角色行"
// @Failure 400 {object} map[string]string "缺少必填字段或角色取值非法"
// @Failure 404 {object} map[string]string "用户不存在"
// @Router /users/{id}/roles [put]
func (c *UserController) ModifyRole(ctx *gin.Context) {
	id, ok := parseID(ctx, "id", "user id")
	if !ok {
		return
	}

	// 存在性守卫先于请求体校验
	if _, err := c.userSvc.GetUser(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	data := bindLooseJSON(ctx)
	if ok, msg := validation.UserRoleData(data); !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	role, err := c.userSvc.ModifyRole(ctx.Request.Context(), id, dto.UserRoleModifyReq{
		ShopID: asInt64(data["shop_id"]),
		Role:   asString(data["role"]),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserRoleResp(role))
}
