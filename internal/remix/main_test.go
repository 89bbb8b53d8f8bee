package remix

import (
	"os"
	"testing"

	"github.com/treykane/cipher-nexus/internal/logging"
)

func TestMain(m *testing.M) {
	if os.Getenv(logging.EnvFile) == "" {
		os.Setenv(logging.EnvFile, "off")
	}
	os.Exit(m.Run())
}
