package service

import (
	"sort"
	"strings"

	"github.com/user/tripmate/internal/model"
	"github.com/user/tripmate/internal/repository"
	"golang.org/x/sync/errgroup"
)

// topN 推荐列表长度上限
const topN = 10

// 年龄分段的类别兜底集合
var (
	youngCategories = map[string]struct{}{
		"Beaches": {}, "Valleys": {}, "Waterbodies": {}, "Trekking": {}, "Adventurous Trips": {},
	}
	seniorCategories = map[string]struct{}{
		"Temples": {}, "Hospitals": {}, "Forts": {}, "Tunnels": {},
	}
)

// FallbackTier 候选集放宽层级。每次推荐都会报告命中的层级，便于逐层验证
type FallbackTier int

const (
	// TierCategory 城市 + 所选类别直接命中
	TierCategory FallbackTier = iota
	// TierAgeBand 类别无结果，按用户年龄段的类别集合兜底
	TierAgeBand
	// TierCityOnly 仍无结果，退回整个城市候选集
	TierCityOnly
	// TierGlobalPopular 城市内没有可用景点，返回全局评分 Top10
	TierGlobalPopular
	// TierCityPopular 个性化结果被排除后为空，返回候选集内评分 Top10
	TierCityPopular
)

func (t FallbackTier) String() string {
	switch t {
	case TierCategory:
		return "category"
	case TierAgeBand:
		return "age_band"
	case TierCityOnly:
		return "city_only"
	case TierGlobalPopular:
		return "global_popular"
	case TierCityPopular:
		return "city_popular"
	default:
		return "unknown"
	}
}

// RecommendService 混合推荐引擎。目录和相似度矩阵在构建时生成一次，此后只读
type RecommendService struct {
	places       []model.Place
	hotels       []model.Hotel
	placeByName  map[string]*model.Place
	userRepo     *repository.UserRepository
	content      *SimilarityMatrix
	collab       *SimilarityMatrix
	ratings      *RatingMatrix
	defaultAlpha float64
}

// NewRecommendService 创建推荐引擎，两个相似度矩阵并发构建
func NewRecommendService(places []model.Place, hotels []model.Hotel, userRepo *repository.UserRepository, defaultAlpha float64) *RecommendService {
	s := &RecommendService{
		places:       places,
		hotels:       hotels,
		placeByName:  make(map[string]*model.Place, len(places)),
		userRepo:     userRepo,
		ratings:      BuildRatingMatrix(RatingsFromPlaces(places)),
		defaultAlpha: defaultAlpha,
	}
	for i := range places {
		if _, ok := s.placeByName[places[i].Name]; !ok {
			s.placeByName[places[i].Name] = &places[i]
		}
	}

	var g errgroup.Group
	g.Go(func() error {
		s.content = BuildContentSimilarity(places)
		return nil
	})
	g.Go(func() error {
		s.collab = BuildCollabSimilarity(s.ratings)
		return nil
	})
	_ = g.Wait()

	return s
}

// DefaultAlpha 配置的默认混合权重
func (s *RecommendService) DefaultAlpha() float64 {
	return s.defaultAlpha
}

// Cities 目录中的城市列表（按首次出现顺序去重）
func (s *RecommendService) Cities() []string {
	return distinct(s.places, func(p model.Place) string { return p.City })
}

// Categories 目录中的类别列表（按首次出现顺序去重）
func (s *RecommendService) Categories() []string {
	return distinct(s.places, func(p model.Place) string { return p.Category })
}

// RecommendPlaces 按城市/类别推荐景点。
// ratingHint 为表示层传入的期望评分，与原始评分流程保持参数兼容，当前打分不使用。
// 依次执行：城市过滤、类别过滤、年龄段兜底、全城兜底，
// 再把候选景点的混合得分向量逐点累加成一个需求信号，
// 排除该用户已正向评分的景点后取 Top10；全程保证目录非空时结果非空
func (s *RecommendService) RecommendPlaces(city, category string, ratingHint, alpha float64, userID *int) ([]model.PlaceRecommendation, FallbackTier) {
	// 1. 已知用户则取出年龄
	ageKnown := false
	age := 0
	if userID != nil {
		if u := s.userRepo.FindByID(*userID); u != nil {
			age = u.Age
			ageKnown = true
		}
	}

	// 2. 城市过滤（大小写不敏感精确匹配）
	cityLower := strings.ToLower(city)
	cityPlaces := make([]model.Place, 0)
	for _, p := range s.places {
		if strings.ToLower(p.City) == cityLower {
			cityPlaces = append(cityPlaces, p)
		}
	}

	// 3. 类别过滤
	tier := TierCategory
	candidates := cityPlaces
	if category != "" {
		candidates = filterByCategory(cityPlaces, func(c string) bool { return c == category })
	}

	// 4. 兜底一：类别无结果且年龄已知，换用年龄段类别集合
	if len(candidates) == 0 && ageKnown {
		band := youngCategories
		if age >= 40 {
			band = seniorCategories
		}
		candidates = filterByCategory(cityPlaces, func(c string) bool {
			_, ok := band[c]
			return ok
		})
		tier = TierAgeBand
	}

	// 5. 兜底二：仍无结果，退回整个城市候选集
	if len(candidates) == 0 {
		candidates = cityPlaces
		tier = TierCityOnly
	}

	// 6. 候选名与内容矩阵索引求交集，得到"有信号"的种子景点。
	//    按内容矩阵索引顺序遍历，保证聚合顺序与同分次序可复现
	candidateNames := make(map[string]struct{}, len(candidates))
	for _, p := range candidates {
		candidateNames[p.Name] = struct{}{}
	}
	relevant := make([]string, 0, len(candidateNames))
	for _, name := range s.content.Names() {
		if _, ok := candidateNames[name]; ok {
			relevant = append(relevant, name)
		}
	}

	// 7. 兜底三：城市内没有任何可用景点，返回全局评分 Top10
	if len(relevant) == 0 {
		return s.popular(s.places, category), TierGlobalPopular
	}

	// 8. 以每个种子景点为查询累加混合得分，把城市+类别上下文合成一个需求信号
	sum := make(map[string]float64, s.content.Len())
	order := make([]string, 0, s.content.Len())
	for _, seed := range relevant {
		for _, sp := range s.HybridScores(seed, alpha) {
			if _, ok := sum[sp.Name]; !ok {
				order = append(order, sp.Name)
			}
			sum[sp.Name] += sp.Score
		}
	}

	// 9. 排除该用户已正向评分的景点
	if userID != nil && s.ratings.HasUser(*userID) {
		rated := s.ratings.PositivelyRated(*userID)
		kept := order[:0]
		for _, name := range order {
			if _, ok := rated[name]; ok {
				delete(sum, name)
				continue
			}
			kept = append(kept, name)
		}
		order = kept
	}

	// 10. 稳定降序取 Top10，同分保持累加插入顺序
	sort.SliceStable(order, func(i, j int) bool {
		return sum[order[i]] > sum[order[j]]
	})
	if len(order) > topN {
		order = order[:topN]
	}

	// 11. 兜底四：排除后为空，返回当前候选集内评分 Top10
	if len(order) == 0 {
		return s.popular(candidates, category), TierCityPopular
	}

	recs := make([]model.PlaceRecommendation, 0, len(order))
	for _, name := range order {
		rec := s.toRecommendation(name, sum[name])
		rec.Reason = s.reasonFor(name, category)
		recs = append(recs, rec)
	}
	return recs, tier
}

// popular 评分降序的 TopN（按景点名去重保留首条）
func (s *RecommendService) popular(pool []model.Place, category string) []model.PlaceRecommendation {
	sorted := make([]model.Place, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UserRating > sorted[j].UserRating
	})

	recs := make([]model.PlaceRecommendation, 0, topN)
	seen := make(map[string]struct{}, topN)
	for _, p := range sorted {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		rec := s.toRecommendation(p.Name, p.UserRating)
		rec.Reason = s.reasonFor(p.Name, category)
		recs = append(recs, rec)
		if len(recs) == topN {
			break
		}
	}
	return recs
}

// toRecommendation 用目录首条记录补全展示字段
func (s *RecommendService) toRecommendation(name string, score float64) model.PlaceRecommendation {
	rec := model.PlaceRecommendation{Name: name, Score: score}
	if p, ok := s.placeByName[name]; ok {
		rec.Category = p.Category
		rec.Rating = p.UserRating
		rec.Description = p.Description
		rec.BestTime = p.BestTime
		rec.Distance = p.Distance
	}
	return rec
}

func filterByCategory(places []model.Place, match func(string) bool) []model.Place {
	out := make([]model.Place, 0)
	for _, p := range places {
		if match(p.Category) {
			out = append(out, p)
		}
	}
	return out
}

func distinct(places []model.Place, key func(model.Place) string) []string {
	seen := make(map[string]struct{}, len(places))
	out := make([]string, 0)
	for _, p := range places {
		k := key(p)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
