package search

import (
	"errors"
	"fmt"
	"time"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Index 帖子全文索引, 基于 bleve
type Index struct {
	index bleve.Index
}

// TopicDocument 索引中的帖子文档
type TopicDocument struct {
	ID         string
	Title      string
	Content    string
	Type       string
	Tags       []string
	UserID     int64
	CreateTime time.Time
}

type Hit struct {
	ID    string
	Score float64
}

// Open 打开或新建磁盘索引, path 为空时使用内存索引
func Open(path string) (*Index, error) {
	if path == "" {
		return NewMemOnly()
	}
	idx, err := bleve.Open(path)
	if errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
		idx, err = bleve.New(path, buildIndexMapping())
		if err != nil {
			return nil, fmt.Errorf("create index: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}
	return &Index{index: idx}, nil
}

func NewMemOnly() (*Index, error) {
	idx, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create mem index: %w", err)
	}
	return &Index{index: idx}, nil
}

func buildIndexMapping() mapping.IndexMapping {
	keyword := bleve.NewKeywordFieldMapping()

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("Title", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Content", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("Type", keyword)
	docMapping.AddFieldMappingsAt("Tags", keyword)
	docMapping.AddFieldMappingsAt("CreateTime", bleve.NewDateTimeFieldMapping())

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping
	return indexMapping
}

// Add 新增或覆盖一篇帖子
func (i *Index) Add(doc *TopicDocument) error {
	return i.index.Index(doc.ID, doc)
}

func (i *Index) Delete(id string) error {
	return i.index.Delete(id)
}

// Search 按 query string 语法检索, 返回帖子 id
func (i *Index) Search(queryStr string, limit int) ([]Hit, error) {
	query := bleve.NewQueryStringQuery(queryStr)
	req := bleve.NewSearchRequestOptions(query, limit, 0, false)
	res, err := i.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, Hit{ID: h.ID, Score: h.Score})
	}
	return hits, nil
}

func (i *Index) Count() (uint64, error) {
	return i.index.DocCount()
}

func (i *Index) Close() error {
	return i.index.Close()
}
