package service

import "sort"

// ScoredPlace 带混合得分的景点
type ScoredPlace struct {
	Name  string
	Score float64
}

// HybridScores 对单个种子景点计算混合得分向量并降序排序。
// 种子不在任一矩阵索引中时返回 nil，表示"该景点无信号"而非错误。
// 得分只在两个矩阵索引交集上计算，alpha=1 退化为纯内容，alpha=0 退化为纯协同
func (s *RecommendService) HybridScores(place string, alpha float64) []ScoredPlace {
	if !s.content.Has(place) || !s.collab.Has(place) {
		return nil
	}

	scored := make([]ScoredPlace, 0, s.content.Len())
	for _, name := range s.content.Names() {
		if !s.collab.Has(name) {
			continue
		}
		c, _ := s.content.Score(place, name)
		v, _ := s.collab.Score(place, name)
		scored = append(scored, ScoredPlace{
			Name:  name,
			Score: alpha*c + (1-alpha)*v,
		})
	}

	// 稳定排序，同分保持内容矩阵索引顺序
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
