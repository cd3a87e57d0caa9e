package service

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/user/tripmate/internal/model"
)

// maxVocabulary 词表上限，按文档频率排序截断
const maxVocabulary = 1000

// tokenize 小写化后按非字母数字切分，剔除单字符词和停用词
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) < 2 {
			continue
		}
		if _, stop := englishStopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// buildVocabulary 统计文档频率并截断到词表上限。
// 按 df 降序排序，同频词按字典序，保证重建结果逐位一致
func buildVocabulary(docs [][]string) (map[string]int, []int) {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, t := range doc {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}

	terms := make([]string, 0, len(df))
	for t := range df {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if df[terms[i]] != df[terms[j]] {
			return df[terms[i]] > df[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxVocabulary {
		terms = terms[:maxVocabulary]
	}

	vocab := make(map[string]int, len(terms))
	docFreq := make([]int, len(terms))
	for i, t := range terms {
		vocab[t] = i
		docFreq[i] = df[t]
	}
	return vocab, docFreq
}

// tfidfVectors 计算平滑 idf 的 TF-IDF 向量并做 L2 归一化
func tfidfVectors(docs [][]string, vocab map[string]int, docFreq []int) []map[int]float64 {
	n := float64(len(docs))
	idf := make([]float64, len(docFreq))
	for i, df := range docFreq {
		idf[i] = math.Log((1+n)/(1+float64(df))) + 1
	}

	vectors := make([]map[int]float64, len(docs))
	for d, doc := range docs {
		v := make(map[int]float64)
		for _, t := range doc {
			if col, ok := vocab[t]; ok {
				v[col]++
			}
		}
		var norm float64
		for col := range v {
			v[col] *= idf[col]
			norm += v[col] * v[col]
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for col := range v {
				v[col] /= norm
			}
		}
		vectors[d] = v
	}
	return vectors
}

// sparseDot 两个已归一化稀疏向量的点积，即余弦相似度
func sparseDot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for col, va := range a {
		if vb, ok := b[col]; ok {
			dot += va * vb
		}
	}
	return dot
}

// BuildContentSimilarity 基于"描述 + 类别"文本特征构建景点×景点内容相似度矩阵。
// 景点名去重保留首条，向量化采用英文停用词表和 1000 词上限
func BuildContentSimilarity(places []model.Place) *SimilarityMatrix {
	names := make([]string, 0, len(places))
	docs := make([][]string, 0, len(places))
	seen := make(map[string]struct{}, len(places))
	for _, p := range places {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
		docs = append(docs, tokenize(p.Description+" "+p.Category))
	}

	vocab, docFreq := buildVocabulary(docs)
	vectors := tfidfVectors(docs, vocab, docFreq)

	m := newSimilarityMatrix(names)
	for i := 0; i < m.Len(); i++ {
		m.data[i][i] = 1.0
		for j := i + 1; j < m.Len(); j++ {
			m.set(i, j, sparseDot(vectors[i], vectors[j]))
		}
	}
	return m
}
