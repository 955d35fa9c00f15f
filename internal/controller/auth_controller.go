package controller

import (
	"errors"
	"net/http"
	"recon_backend/internal/service"
	"recon_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	IsRelease   bool // 是否为生产环境
}

func NewAuthController(authService *service.AuthService, isRelease bool) *AuthController {
	return &AuthController{
		AuthService: authService,
		IsRelease:   isRelease,
	}
}

// RegisterRequest defines model for registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines model for login
// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary 注册新用户
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "用户注册信息"
// @Success 201 {object} object "创建成功"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 409 {object} util.ErrorResponse "邮箱已被注册"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(ctx.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrEmailRegistered) {
			util.Error(ctx, http.StatusConflict, "Email already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID})
}

// Login godoc
// @Summary 用户登录
// @Description 返回 JWT，同时写入 token Cookie
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录信息"
// @Success 200 {object} object "token 与用户信息"
// @Failure 400 {object} util.ErrorResponse "请求参数错误"
// @Failure 401 {object} util.ErrorResponse "账号或密码错误"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Error(ctx, http.StatusUnauthorized, "Invalid credentials")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	maxAge := int(c.AuthService.Cfg.JWT.ExpireTime.Seconds())
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(util.ContextTokenKey, token, maxAge, "/", "", c.IsRelease, true)

	util.Success(ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout godoc
// @Summary 注销
// @Description 当前 token 加入黑名单直至过期
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} object
// @Failure 401 {object} util.ErrorResponse "未登录"
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.AuthService.Logout(ctx.Request.Context(), claims); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.SetCookie(util.ContextTokenKey, "", -1, "/", "", c.IsRelease, true)
	util.Success(ctx, gin.H{"success": true})
}

// Me godoc
// @Summary 当前用户身份
// @Tags 认证
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} model.Identity
// @Failure 401 {object} util.ErrorResponse "未登录"
// @Router /api/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	identity, err := c.AuthService.CurrentIdentity(ctx.Request.Context(), util.GetUserID(ctx))
	if err != nil {
		if errors.Is(err, util.ErrUnauthorized) {
			util.Unauthorized(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, identity)
}
