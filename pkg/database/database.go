package database

import (
	"fmt"
	"log"
	"obe_backend/internal/config"
	"obe_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate runs AutoMigrate for every model, parents before children so
// foreign keys resolve.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Faculty{},
		&model.Department{},
		&model.Teacher{},
		&model.Program{},
		&model.Student{},
		&model.Course{},
		&model.PEO{},
		&model.PLO{},
		&model.CLO{},
		&model.CLOPLOMapping{},
		&model.PLOPEOMapping{},
		&model.CourseContent{},
		&model.LessonPlan{},
		&model.Assignment{},
		&model.AssignmentSubmission{},
		&model.AttendanceRecord{},
		&model.ExamMark{},
		&model.SupportQuestion{},
		&model.SupportAnswer{},
		&model.ModerationCommittee{},
		&model.ModerationCommitteeMember{},
		&model.ExamQuestion{},
		&model.ExamQuestionItem{},
	)
}

// seed creates the bootstrap admin account when the users table is empty.
func seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:     "Administrator",
		Email:    "admin@obe.local",
		Password: string(hash),
		Role:     model.RoleAdmin,
	}
	return db.Create(admin).Error
}
