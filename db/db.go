package db

import (
	"firmsite/config"
	"firmsite/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres and applies the pool settings from config.
// TranslateError is on so unique-constraint violations surface as
// gorm.ErrDuplicatedKey, which the blog service relies on for its
// bounded slug retry.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqldb, err := gdb.DB()
	if err != nil {
		return nil, err
	}

	sqldb.SetMaxOpenConns(cfg.MaxOpenConns)
	sqldb.SetMaxIdleConns(cfg.MaxIdleConns)
	sqldb.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqldb.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Post{},
		&models.Testimonial{},
		&models.ContactMessage{},
		&models.NewsletterSubscriber{},
	)
}

func Close(gdb *gorm.DB) error {
	sqldb, err := gdb.DB()
	if err != nil {
		return err
	}
	return sqldb.Close()
}
