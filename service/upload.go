package service

import (
	"Forum/config"
	"Forum/pkg/utils"
	"Forum/types"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
)

// MaxUploadSize 单个文件上限 10MB
const MaxUploadSize int64 = 10 << 20

var _ IUploadService = (*UploadService)(nil)

type IUploadService interface {
	// Upload size 为客户端声明的大小, 实际写入超过上限同样拒绝
	Upload(ctx context.Context, userID int64, r io.Reader, size int64) (*types.UploadResponse, error)
}

// FileStore 上传文件的落地位置, path 形如 /ab/cdef...
type FileStore interface {
	Save(ctx context.Context, path string, r io.Reader) error
}

type UploadService struct {
	Store     FileStore
	URLPrefix string
}

// NewUploadService 配置了 oss 时上传到 oss, 否则写本地目录
func NewUploadService(cfg *config.Config, client *oss.Client) *UploadService {
	if client != nil && cfg.Oss.Enabled() {
		return &UploadService{
			Store:     &OssFileStore{Client: client, Bucket: cfg.Oss.Bucket, Prefix: "upload"},
			URLPrefix: strings.TrimRight(cfg.Oss.PublicURL, "/") + "/upload",
		}
	}
	return &UploadService{
		Store:     &LocalFileStore{Dir: cfg.Forum.ImageDir},
		URLPrefix: cfg.Forum.UploadURLPrefix,
	}
}

func (s *UploadService) Upload(ctx context.Context, userID int64, r io.Reader, size int64) (*types.UploadResponse, error) {
	if userID < 1 {
		return nil, ErrNotLogin
	}
	if r == nil || size == 0 {
		return nil, ErrEmptyFile
	}
	if size > MaxUploadSize {
		return nil, ErrFileTooLarge
	}

	id := utils.UU32()
	path := "/" + id[:2] + "/" + id[2:]
	lr := &limitedReader{r: r, n: MaxUploadSize}
	if err := s.Store.Save(ctx, path, lr); err != nil {
		if errors.Is(err, errTooLarge) {
			return nil, ErrFileTooLarge
		}
		return nil, fmt.Errorf("save upload: %w", err)
	}
	return &types.UploadResponse{
		Success: true,
		Url:     s.URLPrefix + path,
	}, nil
}

var errTooLarge = errors.New("upload exceeds size limit")

// limitedReader 超过 n 字节时返回 errTooLarge, 而不是像 io.LimitReader 那样静默截断
type limitedReader struct {
	r io.Reader
	n int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.n < 0 {
		return 0, errTooLarge
	}
	if int64(len(p)) > l.n+1 {
		p = p[:l.n+1]
	}
	n, err := l.r.Read(p)
	l.n -= int64(n)
	if l.n < 0 {
		return n, errTooLarge
	}
	return n, err
}

// LocalFileStore 两级目录存放在本地
type LocalFileStore struct {
	Dir string
}

func (f *LocalFileStore) Save(_ context.Context, path string, r io.Reader) error {
	target := filepath.Join(f.Dir, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	out, err := os.Create(target)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		_ = os.Remove(target)
		return err
	}
	return out.Close()
}

type OssFileStore struct {
	Client *oss.Client
	Bucket string
	Prefix string
}

func (f *OssFileStore) Save(ctx context.Context, path string, r io.Reader) error {
	_, err := f.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(f.Bucket),
		Key:    oss.Ptr(f.Prefix + path),
		Body:   r,
	})
	return err
}
