package oss

import (
	"Forum/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// NewClient 未配置 bucket 时返回 nil, 调用方退回本地/数据库存储
func NewClient(cfg *config.OssConfig) *oss.Client {
	if !cfg.Enabled() {
		return nil
	}
	var provider credentials.CredentialsProvider
	if cfg.AccessKeyID != "" {
		provider = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.AccessKeySecret)
	} else {
		provider = credentials.NewEnvironmentVariableCredentialsProvider()
	}
	ossCfg := oss.LoadDefaultConfig().
		WithCredentialsProvider(provider).
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region)
	return oss.NewClient(ossCfg)
}
