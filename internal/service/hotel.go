package service

import (
	"sort"
	"strings"

	"github.com/user/tripmate/internal/model"
)

// 酒店综合评分的三项权重
const (
	guestWeight = 0.5
	siteWeight  = 0.3
	starWeight  = 0.2
)

// RecommendHotels 按城市推荐酒店。
// 先做城市（大小写不敏感）加最低评论分过滤；过滤后为空则返回全局 site_review_rating Top10。
// 综合分 = 0.5*guest + 0.3*site + 0.2*star，在过滤后的子集内做 min-max 归一化，
// 所以同一酒店在不同城市查询下的得分不可比，这是既定行为
func (s *RecommendService) RecommendHotels(city string, minReviews float64) []model.HotelRecommendation {
	cityLower := strings.ToLower(city)
	filtered := make([]model.Hotel, 0)
	for _, h := range s.hotels {
		if strings.ToLower(h.City) == cityLower && h.SiteReviewRating >= minReviews {
			filtered = append(filtered, h)
		}
	}

	// 兜底：全局 Top10
	if len(filtered) == 0 {
		sorted := make([]model.Hotel, len(s.hotels))
		copy(sorted, s.hotels)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].SiteReviewRating > sorted[j].SiteReviewRating
		})

		recs := make([]model.HotelRecommendation, 0, topN)
		seen := make(map[string]struct{}, topN)
		for _, h := range sorted {
			if _, ok := seen[h.Name]; ok {
				continue
			}
			seen[h.Name] = struct{}{}
			recs = append(recs, hotelRecommendation(h, 0))
			if len(recs) == topN {
				break
			}
		}
		return recs
	}

	weighted := make([]float64, len(filtered))
	minW, maxW := 0.0, 0.0
	for i, h := range filtered {
		w := guestWeight*h.GuestRecommendation + siteWeight*h.SiteReviewRating + starWeight*h.StarRating
		weighted[i] = w
		if i == 0 || w < minW {
			minW = w
		}
		if i == 0 || w > maxW {
			maxW = w
		}
	}

	recs := make([]model.HotelRecommendation, 0, len(filtered))
	for i, h := range filtered {
		score := 0.0
		if maxW > minW {
			score = (weighted[i] - minW) / (maxW - minW)
		}
		recs = append(recs, hotelRecommendation(h, score))
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > topN {
		recs = recs[:topN]
	}
	return recs
}

func hotelRecommendation(h model.Hotel, score float64) model.HotelRecommendation {
	return model.HotelRecommendation{
		Name:            h.Name,
		Description:     h.Description,
		StarRating:      h.StarRating,
		PropertyType:    h.PropertyType,
		PointOfInterest: h.PointOfInterest,
		Score:           score,
	}
}
