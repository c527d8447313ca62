package database

import (
	"fmt"
	"log"

	"gigbook/config"
	"gigbook/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the MySQL connection, migrates the schema and seeds defaults
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Entry{},
		&models.Client{},
		&models.Category{},
		&models.KeywordRule{},
	); err != nil {
		return err
	}

	// legacy rows predate the status column; unlock them so owners can log in
	_ = DB.Model(&models.User{}).
		Where("status IS NULL OR status = ''").
		Update("status", models.UserStatusActive).Error

	// seed default categories once, styled from the legacy lookup table
	var catCount int64
	DB.Model(&models.Category{}).Count(&catCount)
	if catCount == 0 {
		var cats []models.Category
		for i, name := range models.DefaultCategoryNames() {
			style, _ := models.LookupCategoryStyle(name)
			cats = append(cats, models.Category{
				Name:  name,
				Color: style.Color,
				Icon:  style.Icon,
				Sort:  (i + 1) * 10,
			})
		}
		if len(cats) > 0 {
			_ = DB.Create(&cats).Error
		}
	}

	log.Println("database initialized")
	return nil
}

// GetDB returns the database handle
func GetDB() *gorm.DB {
	return DB
}
