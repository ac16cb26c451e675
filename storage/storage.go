package storage

import (
	"sync"
	"time"

	"github.com/kv-base-hack/coin-whatif/common"
	"go.uber.org/zap"
)

// Storage keeps the coin catalog in memory. The catalog is replaced as a
// whole and readers always get a deep copy.
type Storage struct {
	log        *zap.SugaredLogger
	mutex      sync.RWMutex
	coins      []common.Coin
	status     common.LoadStatus
	lastErr    error
	updatedAt  time.Time
	snapshotAt time.Time
}

func NewStorage(log *zap.SugaredLogger) *Storage {
	return &Storage{
		log:    log,
		coins:  make([]common.Coin, 0),
		status: common.LoadStatusLoading,
	}
}

func (s *Storage) SetCoins(coins []common.Coin) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.coins = common.CloneCoins(coins)
	s.status = common.LoadStatusReady
	s.lastErr = nil
	s.updatedAt = time.Now()
	s.log.Debugw("set coins", "len", len(s.coins))
}

// SetLoadError records a failed load. A catalog that was already loaded is
// kept and stays ready.
func (s *Storage) SetLoadError(err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.lastErr = err
	if s.status != common.LoadStatusReady {
		s.status = common.LoadStatusFailed
	}
}

func (s *Storage) GetCoins() []common.Coin {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return common.CloneCoins(s.coins)
}

func (s *Storage) GetCoin(id string) (common.Coin, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	coin, ok := common.FindCoin(s.coins, id)
	return coin.Clone(), ok
}

func (s *Storage) Status() common.LoadStatus {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.status
}

func (s *Storage) LastError() error {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.lastErr
}

func (s *Storage) UpdatedAt() time.Time {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.updatedAt
}

// SetSnapshotAt records when the newest archived catalog was fetched.
func (s *Storage) SetSnapshotAt(t time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if t.After(s.snapshotAt) {
		s.snapshotAt = t
	}
}

func (s *Storage) SnapshotAt() time.Time {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.snapshotAt
}
