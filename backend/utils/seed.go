package utils

import (
	"coursehub/backend/config"
	"coursehub/backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// EnsureAdmin creates the bootstrap administrator when credentials are
// configured and no user with that email exists yet.
func EnsureAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("email = ? OR username = ?", cfg.AdminEmail, cfg.AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Username:     cfg.AdminUsername,
		Email:        cfg.AdminEmail,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	return db.Create(&admin).Error
}

// SeedDemoCourses loads a small demo catalog into an empty database.
func SeedDemoCourses(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Course{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	courses := []models.Course{
		{
			Title:       "Microsoft Word - Do Básico ao Avançado",
			Description: "Aprenda a usar o Microsoft Word de forma profissional, desde o básico até recursos avançados.",
			Price:       197.00,
			Level:       models.LevelBeginner,
			Duration:    20,
			Image:       "word-course.jpg",
			IsFeatured:  true,
			Modules: []models.Module{
				{
					Title:       "Introdução ao Word",
					Description: "Conheça a interface e as ferramentas básicas do Word.",
					Position:    1,
					Lessons: []models.Lesson{
						{Title: "Conhecendo a interface", Content: "Visão geral da faixa de opções e dos menus.", Position: 1, Duration: 12},
						{Title: "Criando o primeiro documento", Content: "Criação, salvamento e abertura de documentos.", Position: 2, Duration: 15},
					},
				},
				{
					Title:       "Formatação de Texto",
					Description: "Aprenda a formatar textos de forma profissional.",
					Position:    2,
					Lessons: []models.Lesson{
						{Title: "Fontes e parágrafos", Content: "Estilos de fonte, espaçamento e alinhamento.", Position: 1, Duration: 18},
					},
				},
			},
		},
		{
			Title:       "Canva - Design Gráfico para Iniciantes",
			Description: "Crie designs profissionais com o Canva, mesmo sem experiência em design gráfico.",
			Price:       147.00,
			Level:       models.LevelBeginner,
			Duration:    15,
			Image:       "canva-course.jpg",
			Modules: []models.Module{
				{
					Title:    "Primeiros passos",
					Position: 1,
					Lessons: []models.Lesson{
						{Title: "Criando sua conta", Content: "Cadastro e tour pela plataforma.", Position: 1, Duration: 8},
					},
				},
			},
		},
		{
			Title:       "Inteligência Artificial para Negócios",
			Description: "Entenda como aplicar IA em seu negócio e aumentar sua produtividade.",
			Price:       297.00,
			Level:       models.LevelIntermediate,
			Duration:    25,
			Image:       "ai-course.jpg",
			IsFeatured:  true,
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for i := range courses {
			if err := tx.Create(&courses[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
