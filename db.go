package main

import (
	"fintrack/logging"
	"fintrack/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	db, err = gorm.Open(postgres.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		logging.Logger.Fatalf("failed to connect postgres database: %v", err)
	}
	if !cfg.AutoMigrate {
		return
	}
	// Migrate models individually so a failure on one doesn't block others
	if err := db.AutoMigrate(&models.User{}); err != nil {
		logging.Logger.Warnf("migration warning (users): %v", err)
	}
	if err := db.AutoMigrate(&models.Expense{}); err != nil {
		logging.Logger.Warnf("migration warning (expenses): %v", err)
	}
	if err := db.AutoMigrate(&models.Income{}); err != nil {
		logging.Logger.Warnf("migration warning (incomes): %v", err)
	}
	if err := db.AutoMigrate(&models.Budget{}); err != nil {
		logging.Logger.Warnf("migration warning (budgets): %v", err)
	}
}
