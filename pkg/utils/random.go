package utils

import (
	"strings"

	"github.com/google/uuid"
)

// UU32 32 位十六进制随机串
func UU32() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
