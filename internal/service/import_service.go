package service

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"recon_backend/internal/model"
	"recon_backend/internal/util"
	"recon_backend/pkg/logger"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// QuestionRow 题库文件中的一行
type QuestionRow struct {
	ID            string   `yaml:"id"`
	Number        string   `yaml:"number"`
	Type          string   `yaml:"type"`
	Topic         string   `yaml:"topic"`
	SpecPoint     string   `yaml:"specPoint"`
	QuestionText  string   `yaml:"questionText"`
	Options       []string `yaml:"options"`
	CorrectAnswer string   `yaml:"correctAnswer"`
	Marks         *int     `yaml:"marks"`
	MarkScheme    string   `yaml:"markScheme"`
	ImageURL      string   `yaml:"imageUrl"`
	DataExtract   string   `yaml:"dataExtract"`
}

type QuestionWriter interface {
	Upsert(ctx context.Context, question *model.Question) error
}

type ImportService struct {
	Questions QuestionWriter
	Storage   *StorageService
}

func NewImportService(questions QuestionWriter, storage *StorageService) *ImportService {
	return &ImportService{
		Questions: questions,
		Storage:   storage,
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// ToQuestion 规范化一行数据：去除空白，空串转为 null，非选择题清空选项和答案
func (r QuestionRow) ToQuestion() (*model.Question, error) {
	qType := model.QuestionType(strings.ToUpper(strings.TrimSpace(r.Type)))
	if !qType.Valid() {
		return nil, fmt.Errorf("%w: unknown type %q", util.ErrInvalidQuestion, r.Type)
	}
	text := strings.TrimSpace(r.QuestionText)
	if text == "" {
		return nil, fmt.Errorf("%w: questionText is required", util.ErrInvalidQuestion)
	}
	topic := strings.TrimSpace(r.Topic)
	if topic == "" {
		return nil, fmt.Errorf("%w: topic is required", util.ErrInvalidQuestion)
	}

	q := &model.Question{
		ID:           strings.TrimSpace(r.ID),
		Number:       optional(r.Number),
		Type:         qType,
		QuestionText: text,
		Topic:        topic,
		SpecPoint:    optional(r.SpecPoint),
		MarkScheme:   optional(r.MarkScheme),
		Marks:        r.Marks,
		ImageURL:     optional(r.ImageURL),
		DataExtract:  optional(r.DataExtract),
	}
	if qType == model.QuestionMCQ {
		if r.Options != nil {
			q.SetOptions(r.Options)
		}
		q.CorrectAnswer = optional(r.CorrectAnswer)
	}
	return q, nil
}

// ImportFile 读取 YAML 题库并写入，返回导入条数
func (s *ImportService) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read question file: %w", err)
	}

	var rows []QuestionRow
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return 0, fmt.Errorf("parse question file: %w", err)
	}

	logger.Log.Info("Importing questions", zap.String("file", path), zap.Int("rows", len(rows)))

	baseDir := filepath.Dir(path)
	imported := 0
	for i, row := range rows {
		q, err := row.ToQuestion()
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", i+1, err)
		}
		if q.ID == "" {
			q.ID = model.GenerateUUID()
		}

		if q.ImageURL != nil {
			url, err := s.uploadImage(ctx, baseDir, q.ID, *q.ImageURL)
			if err != nil {
				return imported, fmt.Errorf("row %d: upload image: %w", i+1, err)
			}
			q.ImageURL = &url
		}

		if err := s.Questions.Upsert(ctx, q); err != nil {
			return imported, fmt.Errorf("row %d: save question: %w", i+1, err)
		}
		imported++
	}

	logger.Log.Info("Finished importing questions", zap.Int("imported", imported))
	return imported, nil
}

// uploadImage 本地图片上传到存储，远程地址原样保留
func (s *ImportService) uploadImage(ctx context.Context, baseDir, questionID, ref string) (string, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") || s.Storage == nil {
		return ref, nil
	}

	localPath := ref
	if !filepath.IsAbs(localPath) {
		localPath = filepath.Join(baseDir, ref)
	}
	if !fileExists(localPath) {
		// 已经是服务端路径，例如 /uploads/...
		if filepath.IsAbs(ref) {
			return ref, nil
		}
		return "", fmt.Errorf("image %s not found", localPath)
	}

	ext := strings.ToLower(filepath.Ext(localPath))
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return s.Storage.UploadFile(ctx, filepath.Join("questions", questionID+ext), localPath, contentType)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
