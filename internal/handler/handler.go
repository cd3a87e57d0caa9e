package handler

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/user/tripmate/internal/config"
	"github.com/user/tripmate/internal/model"
	"github.com/user/tripmate/internal/repository"
	"github.com/user/tripmate/internal/service"
	"github.com/user/tripmate/internal/utils"
)

// PlaceRecommendResult 景点推荐响应体，带命中的兜底层级
type PlaceRecommendResult struct {
	Tier   string                      `json:"tier"`
	Places []model.PlaceRecommendation `json:"places"`
}

// Handler HTTP 处理器
type Handler struct {
	Repos       *repository.Repositories
	Config      *config.Config
	Recommender *service.RecommendService

	// 推荐结果缓存。底层目录启动后不变，缓存只为跳过重复聚合
	placeCache *utils.RecCache[PlaceRecommendResult]
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config, recommender *service.RecommendService) *Handler {
	// 注册性别字段校验规则
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("sex", func(fl validator.FieldLevel) bool {
			switch fl.Field().String() {
			case "Male", "Female", "Other":
				return true
			}
			return false
		})
	}

	return &Handler{
		Repos:       repos,
		Config:      cfg,
		Recommender: recommender,
		placeCache:  utils.NewRecCache[PlaceRecommendResult](1000, time.Hour),
	}
}
