package domain_util

import (
	"container/heap"
	"sort"
)

type TagCount struct {
	Tag   string
	Count int
}

// TagMinHeap 最小堆实现 (基于container/heap)，用于Top-N话题统计
type TagMinHeap []TagCount

func (h TagMinHeap) Len() int            { return len(h) }
func (h TagMinHeap) Less(i, j int) bool  { return h[i].Count < h[j].Count }
func (h TagMinHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *TagMinHeap) Push(x interface{}) { *h = append(*h, x.(TagCount)) }
func (h *TagMinHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// TopTags 取出现次数最高的n个标签，按次数降序返回
func TopTags(counts map[string]int, n int) []TagCount {
	if n <= 0 {
		return []TagCount{}
	}

	h := &TagMinHeap{}
	heap.Init(h)
	for tag, count := range counts {
		if h.Len() < n {
			heap.Push(h, TagCount{Tag: tag, Count: count})
		} else if count > (*h)[0].Count {
			heap.Pop(h)
			heap.Push(h, TagCount{Tag: tag, Count: count})
		}
	}

	result := make([]TagCount, h.Len())
	copy(result, *h)
	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			return result[i].Tag < result[j].Tag
		}
		return result[i].Count > result[j].Count
	})
	return result
}
