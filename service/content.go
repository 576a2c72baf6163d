package service

import (
	"Forum/config"
	"Forum/dao"
	"Forum/models"
	"Forum/pkg/utils"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/microcosm-cc/bluemonday"
)

var _ IContentService = (*ContentService)(nil)

// IContentService 正文过滤和大文本存储
type IContentService interface {
	// Filter 过滤掉不安全的 html
	Filter(text string) string
	// Put 保存正文, 返回正文 id
	Put(ctx context.Context, text string) (string, error)
	Get(ctx context.Context, id string) (string, error)
}

type blobStore interface {
	put(ctx context.Context, id, text string) error
	get(ctx context.Context, id string) (string, error)
}

type ContentService struct {
	policy *bluemonday.Policy
	store  blobStore
}

// NewContentService 配置了 oss 时正文存 oss, 否则存 t_big_content
func NewContentService(cfg *config.Config, repo *dao.BigContent, client *oss.Client) IContentService {
	var store blobStore = &dbBlobStore{repo: repo}
	if client != nil && cfg.Oss.Enabled() {
		store = &ossBlobStore{client: client, bucket: cfg.Oss.Bucket}
	}
	return &ContentService{
		policy: bluemonday.UGCPolicy(),
		store:  store,
	}
}

func (s *ContentService) Filter(text string) string {
	return s.policy.Sanitize(text)
}

func (s *ContentService) Put(ctx context.Context, text string) (string, error) {
	id := utils.UU32()
	if err := s.store.put(ctx, id, text); err != nil {
		return "", fmt.Errorf("save content: %w", err)
	}
	return id, nil
}

func (s *ContentService) Get(ctx context.Context, id string) (string, error) {
	return s.store.get(ctx, id)
}

type dbBlobStore struct {
	repo *dao.BigContent
}

func (d *dbBlobStore) put(ctx context.Context, id, text string) error {
	return d.repo.Create(ctx, &models.BigContent{ID: id, Data: text})
}

func (d *dbBlobStore) get(ctx context.Context, id string) (string, error) {
	c, err := d.repo.FindById(ctx, id)
	if err != nil {
		return "", err
	}
	if c == nil {
		return "", nil
	}
	return c.Data, nil
}

type ossBlobStore struct {
	client *oss.Client
	bucket string
}

func contentKey(id string) string {
	return "content/" + id[:2] + "/" + id
}

func (o *ossBlobStore) put(ctx context.Context, id, text string) error {
	_, err := o.client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(o.bucket),
		Key:    oss.Ptr(contentKey(id)),
		Body:   strings.NewReader(text),
	})
	return err
}

func (o *ossBlobStore) get(ctx context.Context, id string) (string, error) {
	out, err := o.client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(o.bucket),
		Key:    oss.Ptr(contentKey(id)),
	})
	if err != nil {
		return "", err
	}
	defer out.Body.Close()
	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
