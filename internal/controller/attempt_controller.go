package controller

import (
	"errors"
	"recon_backend/internal/service"
	"recon_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
}

func NewAttemptController(attemptService *service.AttemptService) *AttemptController {
	return &AttemptController{AttemptService: attemptService}
}

// SubmitAttemptRequest 提交答案请求
// swagger:model SubmitAttemptRequest
type SubmitAttemptRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Selected   string `json:"selected" binding:"required"`
}

// SubmitAttempt godoc
// @Summary 提交答案
// @Description 选择题自动判分（去除首尾空白、区分大小写），其他题型 isCorrect 为 null 等待人工批改。每次提交都会新增一条记录。
// @Tags 答题
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SubmitAttemptRequest true "题目ID与所选答案"
// @Success 200 {object} model.AttemptResult
// @Failure 400 {object} util.ErrorResponse "缺少参数"
// @Failure 401 {object} util.ErrorResponse "未登录"
// @Failure 404 {object} util.ErrorResponse "题目不存在"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/attempt [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	userID := util.GetUserID(ctx)
	if userID == "" {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, util.ErrBadRequest.Error())
		return
	}

	result, err := c.AttemptService.SubmitAttempt(ctx.Request.Context(), userID, req.QuestionID, req.Selected)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrUnauthorized):
			util.Unauthorized(ctx)
		case errors.Is(err, util.ErrBadRequest):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, "Question not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// ListAttempts godoc
// @Summary 我的答题记录
// @Description 按提交时间倒序分页返回当前用户的答题记录
// @Tags 答题
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} model.AttemptPage
// @Failure 401 {object} util.ErrorResponse "未登录"
// @Router /api/attempts [get]
func (c *AttemptController) ListAttempts(ctx *gin.Context) {
	userID := util.GetUserID(ctx)
	if userID == "" {
		util.Unauthorized(ctx)
		return
	}

	page, limit := util.ParsePagination(ctx.Query("page"), ctx.Query("limit"))
	result, err := c.AttemptService.ListAttempts(ctx.Request.Context(), userID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
