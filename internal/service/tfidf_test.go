package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/tripmate/internal/model"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "小写化并剔除停用词",
			text: "The ancient temple of Delhi",
			want: []string{"ancient", "temple", "delhi"},
		},
		{
			name: "剔除单字符词和标点",
			text: "a beach, X sunset!",
			want: []string{"beach", "sunset"},
		},
		{
			name: "空文本",
			text: "",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tokenize(tt.text))
		})
	}
}

func TestBuildVocabulary_CapAndOrder(t *testing.T) {
	docs := [][]string{
		{"temple", "fort"},
		{"temple", "beach"},
		{"temple", "beach"},
	}
	vocab, docFreq := buildVocabulary(docs)

	require.Len(t, vocab, 3)
	// df 降序：temple(3) > beach(2) > fort(1)
	assert.Equal(t, 0, vocab["temple"])
	assert.Equal(t, 1, vocab["beach"])
	assert.Equal(t, 2, vocab["fort"])
	assert.Equal(t, []int{3, 2, 1}, docFreq)
}

func TestBuildContentSimilarity_SelfSimilarity(t *testing.T) {
	m := BuildContentSimilarity(contentFixture())

	for _, name := range m.Names() {
		got, ok := m.Score(name, name)
		require.True(t, ok)
		assert.InDelta(t, 1.0, got, 1e-12, "自相似度必须为 1: %s", name)
	}
}

func TestBuildContentSimilarity_Symmetric(t *testing.T) {
	m := BuildContentSimilarity(contentFixture())

	names := m.Names()
	for _, a := range names {
		for _, b := range names {
			ab, _ := m.Score(a, b)
			ba, _ := m.Score(b, a)
			assert.InDelta(t, ab, ba, 1e-12)
		}
	}
}

func TestBuildContentSimilarity_TextOverlap(t *testing.T) {
	m := BuildContentSimilarity(contentFixture())

	// 文本完全一致的两个景点相似度为 1
	same, ok := m.Score("Lotus Temple", "Akshardham")
	require.True(t, ok)
	assert.InDelta(t, 1.0, same, 1e-9)

	// 没有共同词的两个景点相似度为 0
	none, ok := m.Score("Lotus Temple", "Juhu Beach")
	require.True(t, ok)
	assert.InDelta(t, 0.0, none, 1e-12)
}

func TestBuildContentSimilarity_DuplicateNameKeepsFirst(t *testing.T) {
	places := []model.Place{
		{Name: "Red Fort", Description: "mughal fort walls", Category: "Forts"},
		{Name: "Red Fort", Description: "completely different text", Category: "Beaches"},
		{Name: "Juhu Beach", Description: "mughal fort walls", Category: "Forts"},
	}
	m := BuildContentSimilarity(places)

	require.Equal(t, 2, m.Len())
	// 保留首条：Red Fort 的文本与 Juhu Beach 完全一致
	got, ok := m.Score("Red Fort", "Juhu Beach")
	require.True(t, ok)
	assert.InDelta(t, 1.0, got, 1e-9)
}

func TestBuildContentSimilarity_Idempotent(t *testing.T) {
	places := contentFixture()
	m1 := BuildContentSimilarity(places)
	m2 := BuildContentSimilarity(places)

	require.Equal(t, m1.Names(), m2.Names())
	assert.Equal(t, m1.data, m2.data, "同一目录重建必须逐位一致")
}

func TestSimilarityMatrix_UnknownName(t *testing.T) {
	m := BuildContentSimilarity(contentFixture())

	assert.False(t, m.Has("Atlantis"))
	_, ok := m.Score("Atlantis", "Lotus Temple")
	assert.False(t, ok)
}

func contentFixture() []model.Place {
	return []model.Place{
		{City: "Delhi", Name: "Lotus Temple", Description: "serene marble temple gardens", Category: "Temples"},
		{City: "Delhi", Name: "Akshardham", Description: "serene marble temple gardens", Category: "Temples"},
		{City: "Delhi", Name: "Red Fort", Description: "mughal fort sandstone walls", Category: "Forts"},
		{City: "Mumbai", Name: "Juhu Beach", Description: "sunset shoreline snacks", Category: "Beaches"},
	}
}
