package db

import (
	"context"
	"time"

	"github.com/prasetyowira/qrgen/constant"
	"github.com/prasetyowira/qrgen/domain/generator"
	appLogger "github.com/prasetyowira/qrgen/infrastructure/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// SQLiteRepository implements generator.History
type SQLiteRepository struct {
	db *gorm.DB
}

// GenerationModel is the GORM model for a generation record
type GenerationModel struct {
	ID        uint   `gorm:"primaryKey"`
	URL       string `gorm:"not null"`
	Path      string `gorm:"not null"`
	Color     string
	Shape     string
	Format    string
	CreatedAt time.Time
}

// GormLogger implements GORM's logger.Interface
type GormLogger struct{}

// LogMode implements the log.Interface method
func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	return l
}

// Info logs info messages
func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	appLogger.CtxInfo(ctx, msg, appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Data: map[string]interface{}{
			constant.DataData: data,
		},
	})
}

// Warn logs warn messages
func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	appLogger.CtxWarn(ctx, msg, appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Data: map[string]interface{}{
			constant.DataData: data,
		},
	})
}

// Error logs error messages
func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	appLogger.CtxError(ctx, msg, appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Error: &appLogger.CustomError{
			Code:    constant.ErrCodeDBGeneral,
			Message: msg,
			Type:    constant.ErrTypeDB,
		},
		Data: map[string]interface{}{
			constant.DataData: data,
		},
	})
}

// Trace logs SQL operations
func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil {
		appLogger.CtxError(ctx, "SQL error", appLogger.LoggerInfo{
			ContextFunction: constant.CtxDB,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBGeneral,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataElapsed: elapsed.String(),
				constant.DataRows:    rows,
				constant.DataSQL:     sql,
			},
		})
		return
	}

	// Only log SQL queries if in debug mode
	appLogger.CtxDebug(ctx, "SQL query", appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Data: map[string]interface{}{
			constant.DataElapsed: elapsed.String(),
			constant.DataRows:    rows,
			constant.DataSQL:     sql,
		},
	})
}

// NewSQLiteRepository creates a new SQLite generation-history repository
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	ctx := appLogger.NewRequestContext()

	appLogger.CtxDebug(ctx, "Opening SQLite database", appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Data: map[string]interface{}{
			constant.DataPath: dbPath,
		},
	})

	dbLogger := &GormLogger{}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: dbLogger,
	})
	if err != nil {
		appLogger.CtxError(ctx, "Failed to open database", appLogger.LoggerInfo{
			ContextFunction: constant.CtxDB,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBOpen,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataPath: dbPath,
			},
		})
		return nil, err
	}

	// Auto-migrate the schema
	if err := db.AutoMigrate(&GenerationModel{}); err != nil {
		appLogger.CtxError(ctx, "Failed to migrate database schema", appLogger.LoggerInfo{
			ContextFunction: constant.CtxDB,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBMigrate,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
		})
		return nil, err
	}

	appLogger.CtxInfo(ctx, "Database initialized successfully", appLogger.LoggerInfo{
		ContextFunction: constant.CtxDB,
		Data: map[string]interface{}{
			constant.DataPath: dbPath,
		},
	})

	return &SQLiteRepository{db: db}, nil
}

// Record persists one generation to the database
func (r *SQLiteRepository) Record(ctx context.Context, gen *generator.Generation) error {
	model := GenerationModel{
		URL:       gen.URL,
		Path:      gen.Path,
		Color:     gen.Color,
		Shape:     gen.Shape,
		Format:    gen.Format,
		CreatedAt: gen.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&model)
	if result.Error != nil {
		appLogger.CtxError(ctx, "Error inserting generation record", appLogger.LoggerInfo{
			ContextFunction: constant.CtxRecord,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBInsert,
				Message: result.Error.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataPath: gen.Path,
			},
		})
		return result.Error
	}
	gen.ID = model.ID

	appLogger.CtxDebug(ctx, "Generation recorded", appLogger.LoggerInfo{
		ContextFunction: constant.CtxRecord,
		Data: map[string]interface{}{
			constant.DataPath:         gen.Path,
			constant.DataRowsAffected: result.RowsAffected,
		},
	})

	return nil
}

// Recent returns the latest generations, newest first
func (r *SQLiteRepository) Recent(ctx context.Context, limit int) ([]generator.Generation, error) {
	if limit <= 0 {
		limit = 20
	}

	var models []GenerationModel
	err := r.db.WithContext(ctx).
		Raw(`SELECT * FROM generation_models ORDER BY created_at DESC, id DESC LIMIT ?`, limit).
		Scan(&models).Error
	if err != nil {
		appLogger.CtxError(ctx, "Error querying generation history", appLogger.LoggerInfo{
			ContextFunction: constant.CtxRecent,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBLookup,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
			Data: map[string]interface{}{
				constant.DataLimit: limit,
			},
		})
		return nil, err
	}

	generations := make([]generator.Generation, 0, len(models))
	for _, m := range models {
		generations = append(generations, generator.Generation{
			ID:        m.ID,
			URL:       m.URL,
			Path:      m.Path,
			Color:     m.Color,
			Shape:     m.Shape,
			Format:    m.Format,
			CreatedAt: m.CreatedAt,
		})
	}

	return generations, nil
}

// Close closes the underlying database connection
func (r *SQLiteRepository) Close() error {
	ctx := appLogger.NewRequestContext()

	sqlDB, err := r.db.DB()
	if err != nil {
		appLogger.CtxError(ctx, "Error getting database handle", appLogger.LoggerInfo{
			ContextFunction: constant.CtxClose,
			Error: &appLogger.CustomError{
				Code:    constant.ErrCodeDBClose,
				Message: err.Error(),
				Type:    constant.ErrTypeDB,
			},
		})
		return err
	}

	return sqlDB.Close()
}
