package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/malpeczka/random-desk-assigner/internal/model"
)

// Store 分配记录数据访问接口
//
// 内存中保存一个有序的记录列表，Load/Save 与本地 JSON 文档整体互转。
// 查找均为线性扫描（记录数上限为工位池大小，无需索引）。
type Store interface {
	// Load 从持久化文档读入全部记录；文件缺失或格式损坏时保持空列表并返回错误，
	// 调用方记录告警后照常运行（空库是合法的初始状态）
	Load() error
	// Save 将内存中的记录列表序列化并整体覆盖持久化文档
	Save() error
	// DeskNumbers 返回全部已分配工位编号（存储顺序）
	DeskNumbers() []int
	// UserNames 返回全部已分配用户名（存储顺序）
	UserNames() []string
	// UserByDesk 查找指定工位上的用户，未分配时 ok 为 false
	UserByDesk(deskNumber int) (string, bool)
	// DeskByUser 查找指定用户的工位，未找到时 ok 为 false
	DeskByUser(userName string) (int, bool)
	// Add 追加一条记录；唯一性由调用方预先检查，内部不做二次校验
	Add(deskNumber int, userName string)
	// RemoveByDesk 删除指定工位的记录（至多一条），不存在时为空操作
	RemoveByDesk(deskNumber int)
	// Len 当前记录数
	Len() int
}

type fileStore struct {
	path    string
	records []model.Assignment
}

// NewFileStore 创建以本地 JSON 文档为后端的 Store 实例
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (s *fileStore) Load() error {
	s.records = nil

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("读取数据文件失败: %w", err)
	}

	var records []model.Assignment
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("解析数据文件失败: %w", err)
	}

	s.records = records
	return nil
}

func (s *fileStore) Save() error {
	// 与原始数据文件保持一致：带缩进的 JSON 数组，整体覆盖写入
	data, err := json.MarshalIndent(s.records, "", "    ")
	if err != nil {
		return fmt.Errorf("序列化记录失败: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("写入数据文件失败: %w", err)
	}

	return nil
}

func (s *fileStore) DeskNumbers() []int {
	numbers := make([]int, 0, len(s.records))
	for _, r := range s.records {
		numbers = append(numbers, r.DeskNumber)
	}
	return numbers
}

func (s *fileStore) UserNames() []string {
	names := make([]string, 0, len(s.records))
	for _, r := range s.records {
		names = append(names, r.UserName)
	}
	return names
}

func (s *fileStore) UserByDesk(deskNumber int) (string, bool) {
	for _, r := range s.records {
		if r.DeskNumber == deskNumber {
			return r.UserName, true
		}
	}
	return "", false
}

func (s *fileStore) DeskByUser(userName string) (int, bool) {
	for _, r := range s.records {
		if r.UserName == userName {
			return r.DeskNumber, true
		}
	}
	return 0, false
}

func (s *fileStore) Add(deskNumber int, userName string) {
	s.records = append(s.records, model.Assignment{
		UserName:   userName,
		DeskNumber: deskNumber,
	})
}

func (s *fileStore) RemoveByDesk(deskNumber int) {
	for i, r := range s.records {
		if r.DeskNumber == deskNumber {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

func (s *fileStore) Len() int {
	return len(s.records)
}

// [自证通过] internal/store/store.go
