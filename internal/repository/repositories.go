package repository

import "github.com/user/tripmate/internal/config"

// Repositories 仓库集合
type Repositories struct {
	Catalog *CatalogRepository
	User    *UserRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(cfg *config.Config) *Repositories {
	return &Repositories{
		Catalog: NewCatalogRepository(cfg.PlacesPath, cfg.HotelsPath),
		User:    NewUserRepository(cfg.UsersPath),
	}
}
