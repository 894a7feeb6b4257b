package memory

import (
	"context"
	"sync"

	"github.com/paylinehq/payroll-engine-go/internal/pkg/database"
)

type txManagerImpl struct {
	mu sync.Mutex
}

// NewTxManager returns a TxManager that serializes units of work with a
// mutex. There is no rollback; callers get atomicity through mutual
// exclusion only, which is enough for the in-memory stores.
func NewTxManager() database.TxManager {
	return &txManagerImpl{}
}

func (m *txManagerImpl) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}
