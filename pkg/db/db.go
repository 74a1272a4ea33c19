package db

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// PoolSize is the fixed size of the process-wide connection pool. Requests
// beyond this number queue inside database/sql for a free connection.
const PoolSize = 5

// Config holds MySQL connection configuration.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Charset  string
	// LogSQL enables GORM query logging.
	LogSQL bool
}

// DSN renders the go-sql-driver connection string. parseTime is required so
// DATE columns scan into time.Time.
func (c Config) DSN() string {
	charset := c.Charset
	if charset == "" {
		charset = "utf8mb4"
	}
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Database, charset,
	)
}

// Connect establishes a GORM connection over MySQL and sizes the underlying
// connection pool.
func Connect(cfg Config) (*gorm.DB, error) {
	logMode := gormlogger.Silent
	if cfg.LogSQL {
		logMode = gormlogger.Info
	}

	gormDB, err := gorm.Open(
		mysql.Open(cfg.DSN()),
		&gorm.Config{
			Logger: gormlogger.Default.LogMode(logMode),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(PoolSize)
	sqlDB.SetMaxIdleConns(PoolSize)

	return gormDB, nil
}

// ConnectWithRetry calls Connect up to attempts times with a fixed delay
// between tries, to ride out a co-located MySQL container that is still
// starting up. Retries happen only here, never at request time.
func ConnectWithRetry(cfg Config, attempts int, delay time.Duration) (*gorm.DB, error) {
	var lastErr error
	for i := 1; i <= attempts; i++ {
		gormDB, err := Connect(cfg)
		if err == nil {
			if pingErr := ping(gormDB); pingErr == nil {
				logrus.Infof("connected to MySQL at %s:%d", cfg.Host, cfg.Port)
				return gormDB, nil
			} else {
				err = pingErr
			}
		}
		lastErr = err
		logrus.Warnf("connection attempt %d/%d failed: %v", i, attempts, err)
		if i < attempts {
			time.Sleep(delay)
		}
	}
	return nil, fmt.Errorf("could not connect to MySQL after %d attempts: %w", attempts, lastErr)
}

func ping(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
