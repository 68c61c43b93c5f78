package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"lingopath/cmd/seed_initial_data/internal/seedmodels"
	"lingopath/internal/config"
	"lingopath/internal/database"
	"lingopath/internal/logger"
	"lingopath/internal/repository/models"
	"lingopath/internal/util"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const seedFilePath = "configs/seed_data/initial_content.json"

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process")
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	byteValue, err := os.ReadFile(seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", seedFilePath), zap.Error(err))
	}

	var content seedmodels.SeedContent
	if err := json.Unmarshal(byteValue, &content); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Seed data loaded",
		zap.Int("exams", len(content.Exams)),
		zap.Int("materials", len(content.Materials)),
		zap.Int("missions", len(content.Missions)))

	if err := seedContent(ctx, db, log, content); err != nil {
		log.Fatal("Seeding failed, transaction rolled back", zap.Error(err))
	}
	log.Info("Initial data seeding process completed")
}

// seedContent inserts all content in a single transaction. Existing slugs
// are skipped so reruns are safe.
func seedContent(ctx context.Context, db *sqlx.DB, log *zap.Logger, content seedmodels.SeedContent) (err error) {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error("Failed to rollback transaction", zap.Error(rbErr))
			}
		} else {
			err = tx.Commit()
		}
	}()

	for i, seedExam := range content.Exams {
		if err = seedOneExam(ctx, tx, log, seedExam, i); err != nil {
			return err
		}
	}
	for i, seedMaterial := range content.Materials {
		if err = seedOneMaterial(ctx, tx, log, seedMaterial, i); err != nil {
			return err
		}
	}
	for i, seedMission := range content.Missions {
		if err = seedOneMission(ctx, tx, log, seedMission, i); err != nil {
			return err
		}
	}
	return nil
}

func slugExists(ctx context.Context, tx *sqlx.Tx, table, slug string) (bool, error) {
	var count int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE slug = :1", table)
	if err := tx.GetContext(ctx, &count, query, slug); err != nil {
		return false, err
	}
	return count > 0, nil
}

func seedOneExam(ctx context.Context, tx *sqlx.Tx, log *zap.Logger, seedExam seedmodels.SeedExam, orderIndex int) error {
	exists, err := slugExists(ctx, tx, models.Exam{}.TableName(), seedExam.Slug)
	if err != nil {
		return fmt.Errorf("error checking exam %s: %w", seedExam.Slug, err)
	}
	if exists {
		log.Info("Exam exists, skipping", zap.String("slug", seedExam.Slug))
		return nil
	}

	now := time.Now()
	exam := models.Exam{
		ID:          util.NewULID(),
		Slug:        seedExam.Slug,
		Title:       seedExam.Title,
		Description: util.StringToNullString(seedExam.Description),
		HTMLContent: util.StringToNullString(seedExam.HTMLContent),
		OrderIndex:  orderIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO exams (id, slug, title, description, html_content, order_index, created_at, updated_at)
		VALUES (:id, :slug, :title, :description, :html_content, :order_index, :created_at, :updated_at)`, exam); err != nil {
		return fmt.Errorf("failed to insert exam %s: %w", seedExam.Slug, err)
	}

	for i, q := range seedExam.Questions {
		question := models.ExamQuestion{
			ID:                 util.NewULID(),
			ExamID:             exam.ID,
			QuestionNumber:     i + 1,
			QType:              q.Type,
			Text:               q.Text,
			Options:            models.StringSlice(q.Options),
			CorrectAnswer:      util.StringToNullString(q.CorrectAnswer),
			CorrectOptionIndex: util.IntToNullInt64(q.CorrectOptionIndex, q.Type == "radio"),
		}
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO exam_questions (id, exam_id, question_number, qtype, text, options, correct_answer, correct_option_index)
			VALUES (:id, :exam_id, :question_number, :qtype, :text, :options, :correct_answer, :correct_option_index)`, question); err != nil {
			return fmt.Errorf("failed to insert question %d of exam %s: %w", i+1, seedExam.Slug, err)
		}
	}

	log.Info("Seeded exam", zap.String("slug", seedExam.Slug), zap.Int("questions", len(seedExam.Questions)))
	return nil
}

func seedOneMaterial(ctx context.Context, tx *sqlx.Tx, log *zap.Logger, seedMaterial seedmodels.SeedMaterial, orderIndex int) error {
	exists, err := slugExists(ctx, tx, models.Material{}.TableName(), seedMaterial.Slug)
	if err != nil {
		return fmt.Errorf("error checking material %s: %w", seedMaterial.Slug, err)
	}
	if exists {
		log.Info("Material exists, skipping", zap.String("slug", seedMaterial.Slug))
		return nil
	}

	now := time.Now()
	material := models.Material{
		ID:          util.NewULID(),
		Slug:        seedMaterial.Slug,
		Title:       seedMaterial.Title,
		Description: util.StringToNullString(seedMaterial.Description),
		ContentHTML: seedMaterial.ContentHTML,
		OrderIndex:  orderIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO materials (id, slug, title, description, content_html, order_index, created_at, updated_at)
		VALUES (:id, :slug, :title, :description, :content_html, :order_index, :created_at, :updated_at)`, material); err != nil {
		return fmt.Errorf("failed to insert material %s: %w", seedMaterial.Slug, err)
	}

	log.Info("Seeded material", zap.String("slug", seedMaterial.Slug))
	return nil
}

func seedOneMission(ctx context.Context, tx *sqlx.Tx, log *zap.Logger, seedMission seedmodels.SeedMission, orderIndex int) error {
	exists, err := slugExists(ctx, tx, models.Mission{}.TableName(), seedMission.Slug)
	if err != nil {
		return fmt.Errorf("error checking mission %s: %w", seedMission.Slug, err)
	}
	if exists {
		log.Info("Mission exists, skipping", zap.String("slug", seedMission.Slug))
		return nil
	}

	now := time.Now()
	mission := models.Mission{
		ID:          util.NewULID(),
		Slug:        seedMission.Slug,
		Title:       seedMission.Title,
		Description: util.StringToNullString(seedMission.Description),
		OrderIndex:  orderIndex,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := tx.NamedExecContext(ctx, `
		INSERT INTO missions (id, slug, title, description, order_index, created_at, updated_at)
		VALUES (:id, :slug, :title, :description, :order_index, :created_at, :updated_at)`, mission); err != nil {
		return fmt.Errorf("failed to insert mission %s: %w", seedMission.Slug, err)
	}

	for i, q := range seedMission.Questions {
		question := models.MissionQuestion{
			ID:                 util.NewULID(),
			MissionID:          mission.ID,
			QuestionNumber:     i + 1,
			Text:               q.Text,
			Options:            models.StringSlice(q.Options),
			CorrectOptionIndex: q.CorrectOptionIndex,
		}
		if _, err := tx.NamedExecContext(ctx, `
			INSERT INTO mission_questions (id, mission_id, question_number, text, options, correct_option_index)
			VALUES (:id, :mission_id, :question_number, :text, :options, :correct_option_index)`, question); err != nil {
			return fmt.Errorf("failed to insert question %d of mission %s: %w", i+1, seedMission.Slug, err)
		}
	}

	log.Info("Seeded mission", zap.String("slug", seedMission.Slug), zap.Int("questions", len(seedMission.Questions)))
	return nil
}
