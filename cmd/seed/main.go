package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cathub/internal/config"
	"cathub/internal/db"
	apperrors "cathub/internal/errors"
	"cathub/internal/logger"
	"cathub/internal/model"
	"cathub/internal/repository"
)

// seedUser pairs a fixture user with the cats it owns. Password hashes are
// fixed bcrypt digests of "changeme"; hashing itself lives upstream.
type seedUser struct {
	user model.PostUser
	cats []model.PostCat
}

const seedHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

func fixtures() []seedUser {
	birthdate := func(value string) time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return t
	}
	return []seedUser{
		{
			user: model.PostUser{UserName: "Admin", Email: "admin@cathub.test", PasswordHash: seedHash, Role: model.RoleAdmin},
		},
		{
			user: model.PostUser{UserName: "Anna Astro", Email: "anna@cathub.test", PasswordHash: seedHash, Role: model.RoleUser},
			cats: []model.PostCat{
				{CatName: "Musti", Weight: 4.2, Filename: "musti.jpg", Birthdate: birthdate("2019-01-01"), Lat: 60.1699, Lng: 24.9384},
				{CatName: "Mirri", Weight: 3.7, Filename: "mirri.jpg", Birthdate: birthdate("2021-06-15"), Lat: 60.2055, Lng: 24.6559},
			},
		},
		{
			user: model.PostUser{UserName: "Ben Backer", Email: "ben@cathub.test", PasswordHash: seedHash, Role: model.RoleUser},
			cats: []model.PostCat{
				{CatName: "Rontti", Weight: 5.1, Filename: "rontti.jpg", Birthdate: birthdate("2018-11-30"), Lat: 61.4978, Lng: 23.7610},
			},
		},
	}
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	log, cleanup := logger.New(cfg.LogLevel, cfg.LogJSON)
	defer cleanup()

	log.Info("starting seed")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, log)
	if err != nil {
		log.Fatal("database init", zap.Error(err))
	}
	defer func() { _ = db.Close(gormDB) }()

	if err := repository.AutoMigrate(gormDB); err != nil {
		log.Fatal("auto-migrate", zap.Error(err))
	}
	log.Info("migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	catRepo := repository.NewCatRepository(gormDB)
	ctx := context.Background()

	var createdUsers, createdCats int
	for _, fixture := range fixtures() {
		ownerID, created, err := ensureUser(ctx, userRepo, fixture.user)
		if err != nil {
			log.Fatal("seed user", zap.String("email", fixture.user.Email), zap.Error(err))
		}
		if created {
			createdUsers++
		}
		for _, cat := range fixture.cats {
			cat.Owner = model.OwnerID(ownerID)
			ok, err := ensureCat(ctx, catRepo, cat, ownerID)
			if err != nil {
				log.Fatal("seed cat", zap.String("cat", cat.CatName), zap.Error(err))
			}
			if ok {
				createdCats++
			}
		}
	}

	log.Info("seed completed",
		zap.Int("users_created", createdUsers),
		zap.Int("cats_created", createdCats),
	)
}

// ensureUser creates the user unless its email already exists. Returns the
// user id either way.
func ensureUser(ctx context.Context, repo repository.UserRepository, user model.PostUser) (uint, bool, error) {
	existing, err := repo.FindByEmail(ctx, user.Email)
	if err == nil {
		return existing.UserID, false, nil
	}
	if !apperrors.IsNotFound(err) {
		return 0, false, err
	}
	id, err := repo.Create(ctx, &user)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// ensureCat creates the cat unless the owner already has one with the same
// name, keeping repeated seed runs idempotent.
func ensureCat(ctx context.Context, repo repository.CatRepository, cat model.PostCat, ownerID uint) (bool, error) {
	cats, err := repo.List(ctx)
	if err != nil && !apperrors.IsNotFound(err) {
		return false, err
	}
	for _, existing := range cats {
		if existing.CatName == cat.CatName && existing.Owner.ID() == ownerID {
			return false, nil
		}
	}
	if _, err := repo.Create(ctx, &cat); err != nil {
		return false, err
	}
	return true, nil
}
