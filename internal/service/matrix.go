package service

import (
	"math"

	"github.com/user/tripmate/internal/model"
)

// SimilarityMatrix 以景点名为索引的对称相似度方阵。
// 构建后只读，行列标签去重保证唯一
type SimilarityMatrix struct {
	names []string
	pos   map[string]int
	data  [][]float64
}

// newSimilarityMatrix 创建空矩阵，重复名称只保留首次出现
func newSimilarityMatrix(names []string) *SimilarityMatrix {
	m := &SimilarityMatrix{
		pos: make(map[string]int, len(names)),
	}
	for _, name := range names {
		if _, ok := m.pos[name]; ok {
			continue
		}
		m.pos[name] = len(m.names)
		m.names = append(m.names, name)
	}
	m.data = make([][]float64, len(m.names))
	for i := range m.data {
		m.data[i] = make([]float64, len(m.names))
	}
	return m
}

// Names 索引顺序的景点名列表
func (m *SimilarityMatrix) Names() []string {
	return m.names
}

// Len 矩阵维度
func (m *SimilarityMatrix) Len() int {
	return len(m.names)
}

// Has 景点名是否在索引中
func (m *SimilarityMatrix) Has(name string) bool {
	_, ok := m.pos[name]
	return ok
}

// Score 两个景点的相似度，任一名称未知时返回 (0, false)
func (m *SimilarityMatrix) Score(a, b string) (float64, bool) {
	i, ok := m.pos[a]
	if !ok {
		return 0, false
	}
	j, ok := m.pos[b]
	if !ok {
		return 0, false
	}
	return m.data[i][j], true
}

// set 对称写入一个相似度值
func (m *SimilarityMatrix) set(i, j int, v float64) {
	m.data[i][j] = v
	m.data[j][i] = v
}

// RatingMatrix 用户×景点稠密评分矩阵，缺失单元为 0
type RatingMatrix struct {
	userIDs  []int
	userPos  map[int]int
	places   []string
	placePos map[string]int
	data     [][]float64
}

// BuildRatingMatrix 把评分三元组透视为稠密矩阵。
// 同一 (用户, 景点) 出现多条评分时保留首条，后续丢弃
func BuildRatingMatrix(ratings []model.Rating) *RatingMatrix {
	m := &RatingMatrix{
		userPos:  make(map[int]int),
		placePos: make(map[string]int),
	}
	type cell struct{ u, p int }
	filled := make(map[cell]struct{}, len(ratings))

	// 先定索引（按首次出现顺序），再填值
	for _, r := range ratings {
		if _, ok := m.userPos[r.UserID]; !ok {
			m.userPos[r.UserID] = len(m.userIDs)
			m.userIDs = append(m.userIDs, r.UserID)
		}
		if _, ok := m.placePos[r.PlaceName]; !ok {
			m.placePos[r.PlaceName] = len(m.places)
			m.places = append(m.places, r.PlaceName)
		}
	}
	m.data = make([][]float64, len(m.userIDs))
	for i := range m.data {
		m.data[i] = make([]float64, len(m.places))
	}
	for _, r := range ratings {
		u := m.userPos[r.UserID]
		p := m.placePos[r.PlaceName]
		if _, ok := filled[cell{u, p}]; ok {
			continue
		}
		filled[cell{u, p}] = struct{}{}
		m.data[u][p] = r.Value
	}
	return m
}

// Places 列索引顺序的景点名列表
func (m *RatingMatrix) Places() []string {
	return m.places
}

// HasUser 用户是否出现在矩阵中
func (m *RatingMatrix) HasUser(userID int) bool {
	_, ok := m.userPos[userID]
	return ok
}

// PositivelyRated 用户评分大于 0 的景点集合
func (m *RatingMatrix) PositivelyRated(userID int) map[string]struct{} {
	out := make(map[string]struct{})
	u, ok := m.userPos[userID]
	if !ok {
		return out
	}
	for p, name := range m.places {
		if m.data[u][p] > 0 {
			out[name] = struct{}{}
		}
	}
	return out
}

// normalizedRows 每行做 (x - 均值) / (标准差 + 1e-9)。
// 标准差取样本标准差（与 pandas 一致），零方差行因 epsilon 收敛到约 0 而非 NaN
func (m *RatingMatrix) normalizedRows() [][]float64 {
	const epsilon = 1e-9

	out := make([][]float64, len(m.data))
	for u, row := range m.data {
		n := float64(len(row))
		if n == 0 {
			out[u] = nil
			continue
		}
		var sum float64
		for _, v := range row {
			sum += v
		}
		mean := sum / n

		var sq float64
		for _, v := range row {
			d := v - mean
			sq += d * d
		}
		std := 0.0
		if len(row) > 1 {
			std = math.Sqrt(sq / (n - 1))
		}

		norm := make([]float64, len(row))
		for p, v := range row {
			norm[p] = (v - mean) / (std + epsilon)
		}
		out[u] = norm
	}
	return out
}

// cosine 两个向量的余弦相似度，任一为零向量时返回 0
func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
