package common

import (
	"crypto/sha256"
	"fmt"
	"os"
	"sync"

	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var (
	snowflakeNode *snowflake.Node
	snowflakeOnce sync.Once
)

// UUIDint64 returns a time-ordered unique int64 id.
func UUIDint64() int64 {
	snowflakeOnce.Do(func() {
		var err error
		snowflakeNode, err = snowflake.NewNode(1)
		if err != nil {
			panic(err)
		}
	})
	return snowflakeNode.Generate().Int64()
}

// UUID returns the string form of UUIDint64.
func UUID() string {
	return fmt.Sprintf("%d", UUIDint64())
}

func Sha256HashWithSalt(src string, salt string) string {
	h := sha256.New()
	h.Write([]byte(src))
	h.Write([]byte(salt))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// GetSecretSalt reads the hash salt from the environment, falling back to a
// fixed development salt.
func GetSecretSalt() string {
	salt := os.Getenv("NEXTGENEV_SECRET_SALT")
	if salt == "" {
		return "nextgenev-salt"
	}
	return salt
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func MakeDirs(paths ...string) {
	for _, path := range paths {
		if !FileExists(path) {
			_ = os.MkdirAll(path, 0o755)
		}
	}
}
