package service

import (
	"github.com/user/tripmate/internal/model"
)

// RatingsFromPlaces 从目录行投影出 (用户, 景点, 评分) 三元组
func RatingsFromPlaces(places []model.Place) []model.Rating {
	ratings := make([]model.Rating, 0, len(places))
	for _, p := range places {
		ratings = append(ratings, model.Rating{
			UserID:    p.UserID,
			PlaceName: p.Name,
			Value:     p.UserRating,
		})
	}
	return ratings
}

// BuildCollabSimilarity 基于用户评分共现构建景点×景点协同相似度矩阵。
// 每个用户行先做均值中心化加标准差缩放，再对转置后的景点列两两求余弦。
// 没有共同评分者的景点对相似度为 0
func BuildCollabSimilarity(rm *RatingMatrix) *SimilarityMatrix {
	norm := rm.normalizedRows()
	places := rm.Places()

	// 列视图：每个景点一个长度为用户数的向量
	columns := make([][]float64, len(places))
	for p := range places {
		col := make([]float64, len(norm))
		for u := range norm {
			col[u] = norm[u][p]
		}
		columns[p] = col
	}

	m := newSimilarityMatrix(places)
	for i := 0; i < m.Len(); i++ {
		m.data[i][i] = 1.0
		for j := i + 1; j < m.Len(); j++ {
			m.set(i, j, cosine(columns[i], columns[j]))
		}
	}
	return m
}
