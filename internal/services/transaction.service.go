package services

import (
	"context"
	"fmt"

	contextutil "showbill/internal/context"
	"showbill/internal/database"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

// TransactionService handles database transactions using context injection
type TransactionService struct {
	db  database.DB
	log logger.Logger
}

func NewTransactionService(db database.DB) *TransactionService {
	return &TransactionService{
		db:  db,
		log: logger.New("TransactionService"),
	}
}

// Execute runs the provided function within a database transaction. The
// function receives a context carrying the transaction, so repositories used
// inside automatically participate. Commit on success, rollback on error or
// panic; the underlying connection is released either way.
func (ts *TransactionService) Execute(
	ctx context.Context,
	fn func(context.Context) error,
) (err error) {
	log := ts.log.Function("Execute")

	tx := ts.db.SQLWithContext(ctx).Begin()
	if tx.Error != nil {
		return log.Err("failed to begin transaction", tx.Error)
	}

	txCtx := contextutil.WithTransaction(ctx, tx)

	defer func() {
		if r := recover(); r != nil {
			panicErr := log.ErrMsg("panic during transaction: " + fmt.Sprintf("%v", r))

			if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
				// Data integrity at risk, crash service
				log.Er("CRITICAL: failed to rollback after panic", rollbackErr, "panic", r)
				panic(fmt.Sprintf(
					"transaction rollback failed: %v (original panic: %v)",
					rollbackErr,
					r,
				))
			}

			log.Info("transaction rolled back successfully after panic")
			err = panicErr
		}
	}()

	if err = fn(txCtx); err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			return log.Error(
				"transaction rollback failed",
				"rollbackError", rollbackErr,
				"originalError", err,
			)
		}
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return log.Err("failed to commit transaction", err)
	}

	return nil
}

// ExecuteWithDB is a variant for callers that need the raw transaction handle.
func (ts *TransactionService) ExecuteWithDB(
	ctx context.Context,
	fn func(context.Context, *gorm.DB) error,
) error {
	return ts.Execute(ctx, func(txCtx context.Context) error {
		tx, _ := contextutil.GetTransaction(txCtx)
		return fn(txCtx, tx)
	})
}
