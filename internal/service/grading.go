package service

import (
	"recon_backend/internal/model"
	"strings"
)

// Grade 只对设置了标准答案的选择题判分：去除首尾空白后区分大小写比较。
// 其他题型返回 nil，留待人工批改。
func Grade(question *model.Question, selected string) *bool {
	if !question.Gradable() {
		return nil
	}
	correct := strings.TrimSpace(selected) == strings.TrimSpace(*question.CorrectAnswer)
	return &correct
}
