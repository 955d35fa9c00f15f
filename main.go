// @title Recon 练习后端 API
// @version 1.0
// @description 随机出题、提交答案与自动判分的练习服务。

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"context"
	"flag"
	"log"
	"recon_backend/internal/app"
	"recon_backend/internal/config"
	"recon_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件所在目录")
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	importFile := flag.String("import", "", "导入 YAML 题库文件，完成后退出")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 设置运行时标志，导入前也要保证表结构存在
	cfg.ForceMigrate = *migrate || *migrateOnly || *importFile != ""
	cfg.MigrateOnly = *migrateOnly
	cfg.ImportFile = *importFile

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer logger.Log.Sync()

	// 迁移完成后直接退出
	if cfg.MigrateOnly {
		logger.Log.Info("Database migration finished, exiting")
		application.Close()
		return
	}

	if cfg.ImportFile != "" {
		n, err := application.ImportQuestions(context.Background(), cfg.ImportFile)
		application.Close()
		if err != nil {
			logger.Log.Fatal("Failed to import questions", zap.String("file", cfg.ImportFile), zap.Int("imported", n), zap.Error(err))
		}
		logger.Log.Info("Questions imported", zap.Int("count", n))
		return
	}

	if err := application.Run(); err != nil {
		logger.Log.Fatal("Server stopped with error", zap.Error(err))
	}
}
