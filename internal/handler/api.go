package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/tripmate/internal/model"
	"github.com/user/tripmate/internal/repository"
	"github.com/user/tripmate/internal/utils"
)

// categorySentinel 表示层"未选择类别"的占位值
const categorySentinel = "Select a category"

// RecommendPlaces 景点推荐
func (h *Handler) RecommendPlaces(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.BadRequest(c, "请先选择城市")
		return
	}

	category := c.Query("category")
	if category == categorySentinel {
		category = ""
	}

	rating, err := strconv.ParseFloat(c.DefaultQuery("rating", "5"), 64)
	if err != nil {
		utils.BadRequest(c, "rating 参数无效")
		return
	}

	alpha := h.Recommender.DefaultAlpha()
	if raw := c.Query("alpha"); raw != "" {
		alpha, err = strconv.ParseFloat(raw, 64)
		if err != nil || alpha < 0 || alpha > 1 {
			utils.BadRequest(c, "alpha 参数必须在 0 到 1 之间")
			return
		}
	}

	var userID *int
	userKey := "-"
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.BadRequest(c, "user_id 参数无效")
			return
		}
		userID = &id
		userKey = raw
	}

	if len(h.Recommender.Cities()) == 0 {
		utils.SuccessWithMessage(c, "景点目录为空，暂无可推荐内容", PlaceRecommendResult{Places: []model.PlaceRecommendation{}})
		return
	}

	cacheKey := fmt.Sprintf("places|%s|%s|%.3f|%s", city, category, alpha, userKey)
	if cached, ok := h.placeCache.Get(cacheKey); ok {
		utils.Success(c, cached)
		return
	}

	places, tier := h.Recommender.RecommendPlaces(city, category, rating, alpha, userID)
	result := PlaceRecommendResult{
		Tier:   tier.String(),
		Places: places,
	}
	h.placeCache.Set(cacheKey, result)
	utils.Success(c, result)
}

// RecommendHotels 酒店推荐
func (h *Handler) RecommendHotels(c *gin.Context) {
	city := c.Query("city")
	if city == "" {
		utils.BadRequest(c, "请先选择城市")
		return
	}

	minReviews, err := strconv.ParseFloat(c.DefaultQuery("min_reviews", "3"), 64)
	if err != nil {
		utils.BadRequest(c, "min_reviews 参数无效")
		return
	}

	cacheKey := fmt.Sprintf("hotels|%s|%.2f", city, minReviews)
	if cached, ok := utils.CacheGet(cacheKey); ok {
		utils.Success(c, cached)
		return
	}

	hotels := h.Recommender.RecommendHotels(city, minReviews)
	if len(hotels) == 0 {
		utils.SuccessWithMessage(c, "酒店目录为空，暂无可推荐内容", []model.HotelRecommendation{})
		return
	}
	utils.CacheSet(cacheKey, hotels, 30*time.Minute)
	utils.Success(c, hotels)
}

// Cities 城市列表（表示层下拉框数据源）
func (h *Handler) Cities(c *gin.Context) {
	utils.Success(c, h.Recommender.Cities())
}

// Categories 类别列表
func (h *Handler) Categories(c *gin.Context) {
	utils.Success(c, h.Recommender.Categories())
}

// RegisterRequest 注册请求体
type RegisterRequest struct {
	Name          string  `json:"name" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Age           int     `json:"age" binding:"omitempty,gte=1,lte=100"`
	Sex           string  `json:"sex" binding:"required,sex"`
	PlacesVisited string  `json:"places_visited"`
	RatingsGiven  float64 `json:"ratings_given" binding:"omitempty,gte=1,lte=5"`
}

// Register 用户注册
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请填写所有必填字段（姓名、邮箱、性别）")
		return
	}
	if req.Age == 0 {
		req.Age = 25
	}

	user, err := h.Repos.User.Register(model.User{
		Name:          req.Name,
		Email:         req.Email,
		Age:           req.Age,
		Sex:           req.Sex,
		PlacesVisited: req.PlacesVisited,
		RatingsGiven:  req.RatingsGiven,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			utils.Conflict(c, "邮箱已存在，请直接登录")
			return
		}
		utils.InternalServerError(c, "注册失败，请重试")
		return
	}

	utils.SuccessWithMessage(c, fmt.Sprintf("注册成功！您的用户 ID 是 %d", user.ID), user)
}

// LoginRequest 登录请求体
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Login 用户登录（按邮箱查找，无会话管理）
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "请输入有效的邮箱")
		return
	}

	user := h.Repos.User.FindByEmail(req.Email)
	if user == nil {
		utils.NotFound(c, "用户不存在，请先注册")
		return
	}
	utils.SuccessWithMessage(c, fmt.Sprintf("欢迎回来，%s！", user.Name), user)
}
