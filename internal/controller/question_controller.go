package controller

import (
	"errors"
	"recon_backend/internal/service"
	"recon_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// GetRandomQuestion godoc
// @Summary 随机获取一道题目
// @Description 从题库中均匀随机选取一道题，选择题的 options 为有序字符串列表，其余题型为 null
// @Tags 题目
// @Produce json
// @Success 200 {object} model.QuestionResponse
// @Failure 404 {object} util.ErrorResponse "题库为空"
// @Failure 500 {object} util.ErrorResponse "服务器内部错误"
// @Router /api/questions [get]
func (c *QuestionController) GetRandomQuestion(ctx *gin.Context) {
	question, err := c.QuestionService.GetRandomQuestion(ctx.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, util.ErrNoQuestions):
			util.NotFound(ctx, "No questions available")
		case errors.Is(err, util.ErrQuestionNotFound):
			util.NotFound(ctx, "Question not found")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, question)
}
