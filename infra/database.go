package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	repoaccount "github.com/autoconnect/backend/infra/repository/account"
	repocategory "github.com/autoconnect/backend/infra/repository/category"
	repouser "github.com/autoconnect/backend/infra/repository/user"
	"github.com/autoconnect/backend/pkg/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens a GORM connection for the postgres or sqlite driver.
// appEnv "development" turns on SQL logging.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var dialector gorm.Dialector
	switch cnf.Driver {
	case "", "postgres":
		dialector = postgres.Open(cnf.Url)
	case "sqlite":
		dialector = sqlite.Open(cnf.Url)
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", cnf.Driver)
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cnf.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cnf.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cnf.ConnMaxLifetime)

	return connection, nil
}

// AutoMigrate creates the tables from the GORM models. Postgres deployments
// use the SQL migrations instead; this serves sqlite and tests.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&repouser.User{}, &repoaccount.Account{}, &repocategory.Category{})
}

// NewMongoDatabase connects to MongoDB and returns the configured database.
func NewMongoDatabase(ctx context.Context, cnf *config.DB) (*mongo.Database, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(cnf.Url).
		SetMaxPoolSize(uint64(max(cnf.MaxOpenConns, 1))))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client.Database(cnf.Name), nil
}
