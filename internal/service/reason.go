package service

import "fmt"

// reasonFor 为一条推荐生成简短理由（基于优先级算法）。
// 只做展示修饰，不参与排序
func (s *RecommendService) reasonFor(name, requestedCategory string) string {
	p, ok := s.placeByName[name]
	if !ok {
		return "基于内容与评分共现综合推荐"
	}

	// 1. 最高优先级：与所选类别一致
	if requestedCategory != "" && p.Category == requestedCategory {
		return fmt.Sprintf("与所选类别一致的%s景点", p.Category)
	}

	// 2. 第二优先级：高分景点
	if p.UserRating >= 4.5 {
		return fmt.Sprintf("高分佳地（评分 %.1f）", p.UserRating)
	}

	// 3. 第三优先级：有明确的推荐游览时间
	if p.BestTime != "" {
		return fmt.Sprintf("口碑之选，适合在%s前往", p.BestTime)
	}

	// 兜底
	return "基于内容与评分共现综合推荐"
}
