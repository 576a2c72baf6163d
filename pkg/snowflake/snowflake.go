package snowflake

import (
	"github.com/bwmarrin/snowflake"
	"github.com/speps/go-hashids/v2"
)

var (
	node   *snowflake.Node
	hasher *hashids.HashID
)

func init() {
	node, _ = snowflake.NewNode(1)

	hd := hashids.NewData()
	hd.Salt = "forum"
	hd.MinLength = 12
	hasher, _ = hashids.NewWithData(hd)
}

func GenID() int64 {
	return node.Generate().Int64()
}

// GenStringID 帖子/回复使用的字符串主键, snowflake 经 hashids 编码
func GenStringID() string {
	id := GenID()
	s, err := hasher.EncodeInt64([]int64{id})
	if err != nil {
		return node.Generate().Base58()
	}
	return s
}
