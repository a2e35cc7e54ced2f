package repository

import "gorm.io/gorm"

// TransactionManager runs repository work inside one gorm transaction
type TransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates a new transaction manager
func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// Do opens a transaction, hands transaction-bound repositories to fn, and
// commits only when fn returns nil. Any error rolls everything back.
func (m *TransactionManager) Do(fn func(repos TxRepos) error) error {
	return m.db.Transaction(func(tx *gorm.DB) error {
		return fn(&txRepos{tx: tx})
	})
}

type txRepos struct {
	tx *gorm.DB
}

func (r *txRepos) Periods() PeriodRepositoryInterface {
	return NewPeriodRepository(r.tx)
}

func (r *txRepos) DayEntries() DayEntryRepositoryInterface {
	return NewDayEntryRepository(r.tx)
}

func (r *txRepos) DayExpectations() DayExpectationRepositoryInterface {
	return NewDayExpectationRepository(r.tx)
}
