package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/tripmate/internal/model"
)

func hotelFixture() []model.Hotel {
	return []model.Hotel{
		{City: "Delhi", Name: "Taj Palace", StarRating: 5, SiteReviewRating: 4.5, GuestRecommendation: 95, PropertyType: "Hotel"},
		{City: "Delhi", Name: "Budget Inn", StarRating: 2, SiteReviewRating: 3.2, GuestRecommendation: 60, PropertyType: "Guest House"},
		{City: "Delhi", Name: "Mid Hotel", StarRating: 3, SiteReviewRating: 4.0, GuestRecommendation: 80, PropertyType: "Hotel"},
		{City: "Delhi", Name: "Low Review", StarRating: 4, SiteReviewRating: 2.0, GuestRecommendation: 90, PropertyType: "Hotel"},
		{City: "Mumbai", Name: "Sea View", StarRating: 4, SiteReviewRating: 4.8, GuestRecommendation: 97, PropertyType: "Resort"},
	}
}

func TestRecommendHotels_FilterAndScore(t *testing.T) {
	s := newTestRecommender(t, nil, hotelFixture(), "")

	recs := s.RecommendHotels("Delhi", 3)

	// Low Review（评论分 2.0）和 Sea View（孟买）被过滤
	require.Len(t, recs, 3)
	assert.Equal(t, "Taj Palace", recs[0].Name)
	assert.Equal(t, "Mid Hotel", recs[1].Name)
	assert.Equal(t, "Budget Inn", recs[2].Name)

	// min-max 归一化：最高分 1，最低分 0
	assert.InDelta(t, 1.0, recs[0].Score, 1e-12)
	// Mid Hotel 加权分 41.8，区间 [31.36, 49.85]
	assert.InDelta(t, (41.8-31.36)/(49.85-31.36), recs[1].Score, 1e-9)
	assert.InDelta(t, 0.0, recs[2].Score, 1e-12)
}

func TestRecommendHotels_CityCaseInsensitive(t *testing.T) {
	s := newTestRecommender(t, nil, hotelFixture(), "")

	lower := s.RecommendHotels("delhi", 3)
	upper := s.RecommendHotels("DELHI", 3)

	assert.Equal(t, lower, upper)
}

func TestRecommendHotels_ScoreScopedToCity(t *testing.T) {
	s := newTestRecommender(t, nil, hotelFixture(), "")

	// 归一化只在过滤后的子集内进行：阈值变化会改变同一家酒店的得分
	loose := s.RecommendHotels("Delhi", 3)
	strict := s.RecommendHotels("Delhi", 3.5)

	require.Len(t, strict, 2)
	assert.Equal(t, "Taj Palace", strict[0].Name)
	assert.Equal(t, "Mid Hotel", strict[1].Name)
	// 子集只剩两家时 Mid Hotel 落到区间下界
	assert.InDelta(t, 0.0, strict[1].Score, 1e-12)
	assert.Greater(t, loose[1].Score, strict[1].Score)
}

func TestRecommendHotels_GlobalFallback(t *testing.T) {
	s := newTestRecommender(t, nil, hotelFixture(), "")

	recs := s.RecommendHotels("Paris", 3)

	// 无匹配城市：全局按站点评论分降序，得分置 0
	require.Len(t, recs, 5)
	assert.Equal(t, "Sea View", recs[0].Name)
	assert.Equal(t, "Taj Palace", recs[1].Name)
	for _, r := range recs {
		assert.Equal(t, 0.0, r.Score)
	}
}

func TestRecommendHotels_SingleMatchScoresZero(t *testing.T) {
	s := newTestRecommender(t, nil, hotelFixture(), "")

	recs := s.RecommendHotels("Mumbai", 3)

	// 区间退化（max == min）时得分为 0 而非 NaN
	require.Len(t, recs, 1)
	assert.Equal(t, "Sea View", recs[0].Name)
	assert.Equal(t, 0.0, recs[0].Score)
}

func TestRecommendHotels_EmptyCatalog(t *testing.T) {
	s := newTestRecommender(t, nil, nil, "")

	assert.Empty(t, s.RecommendHotels("Delhi", 3))
}
