package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/icemanhv/forum/internal/config"
	"github.com/icemanhv/forum/internal/db"
	"github.com/icemanhv/forum/internal/model"
	"github.com/icemanhv/forum/internal/repository"
)

var seedTags = []string{"go", "databases", "web"}

var seedBlogs = []struct {
	title   string
	content string
	tags    []string
}{
	{
		title:   "Welcome",
		content: "First post. More to come.",
		tags:    []string{"web"},
	},
	{
		title:   "Notes on relational schemas",
		content: "Tables, foreign keys, and why join rows beat array columns.",
		tags:    []string{"go", "databases"},
	},
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	log.Info().Msg("starting seed script")

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := gormDB.SetupJoinTable(&model.Blog{}, "Tags", &model.BlogTag{}); err != nil {
		log.Fatal().Err(err).Msg("setup join table")
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Blog{},
		&model.Tag{},
		&model.BlogTag{},
		&model.Comment{},
	); err != nil {
		log.Fatal().Err(err).Msg("run migrations")
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	blogRepo := repository.NewBlogRepository(gormDB)
	tagRepo := repository.NewTagRepository(gormDB)
	blogTagRepo := repository.NewBlogTagRepository(gormDB)

	admin, err := seedAdmin(ctx, userRepo, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin user")
	}
	log.Info().Str("email", admin.Email).Msg("admin user ready")

	tagsByName, err := ensureTags(ctx, tagRepo, seedTags)
	if err != nil {
		log.Fatal().Err(err).Msg("seed tags")
	}
	log.Info().Int("count", len(tagsByName)).Msg("tags ready")

	created, err := seedSampleBlogs(ctx, blogRepo, blogTagRepo, admin.ID, tagsByName)
	if err != nil {
		log.Fatal().Err(err).Msg("seed blogs")
	}
	log.Info().Int("created", created).Msg("seed completed")
}

// seedAdmin creates the administrator account unless it already exists.
func seedAdmin(ctx context.Context, repo repository.UserRepository, email, password string) (*model.User, error) {
	existing, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check admin: %w", err)
	}

	admin := &model.User{
		Name:    "Administrator",
		Email:   email,
		IsAdmin: true,
	}
	if err := admin.SetPassword(password); err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

func ensureTags(ctx context.Context, repo repository.TagRepository, names []string) (map[string]*model.Tag, error) {
	out := make(map[string]*model.Tag, len(names))
	for _, name := range names {
		existing, err := repo.FindByName(ctx, name)
		if err == nil {
			out[name] = existing
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check tag %q: %w", name, err)
		}
		tag := &model.Tag{Name: name}
		if err := repo.Create(ctx, tag); err != nil {
			return nil, fmt.Errorf("create tag %q: %w", name, err)
		}
		out[name] = tag
	}
	return out, nil
}

// seedSampleBlogs inserts the sample articles, linking tags through
// blog_tags join rows. Runs only against an empty blog table.
func seedSampleBlogs(ctx context.Context, blogRepo repository.BlogRepository, blogTagRepo repository.BlogTagRepository, authorID uint, tags map[string]*model.Tag) (int, error) {
	total, err := blogRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count blogs: %w", err)
	}
	if total > 0 {
		return 0, nil
	}

	created := 0
	for _, sample := range seedBlogs {
		blog := &model.Blog{
			Title:   sample.title,
			Content: sample.content,
			UserID:  authorID,
		}
		if err := blogRepo.Create(ctx, blog); err != nil {
			return created, fmt.Errorf("create blog %q: %w", sample.title, err)
		}
		for _, tagName := range sample.tags {
			tag, ok := tags[tagName]
			if !ok {
				continue
			}
			link := &model.BlogTag{BlogID: blog.ID, TagID: tag.ID}
			if err := blogTagRepo.Create(ctx, link); err != nil {
				return created, fmt.Errorf("link blog %q to tag %q: %w", sample.title, tagName, err)
			}
		}
		created++
	}
	return created, nil
}
