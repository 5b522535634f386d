package main

import (
	"log"

	"fraudtriage/internal/config"
	"fraudtriage/internal/repositories"
	"fraudtriage/internal/services/triage"

	"gorm.io/gorm"
)

// openStore connects the assessment store. An unreachable database is not
// fatal: triage keeps serving and assessments are simply not recorded.
func openStore(cfg *config.Config) (*gorm.DB, triage.AssessmentStore) {
	if !cfg.DBEnabled {
		log.Println("⚠️ DB_ENABLED=false, assessments will not be recorded")
		return nil, nil
	}

	db, err := repositories.InitDB(cfg)
	if err != nil {
		log.Printf("⚠️ Database unavailable, assessments will not be recorded: %v", err)
		return nil, nil
	}
	return db, repositories.NewAssessmentRepository(db)
}
