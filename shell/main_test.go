package shell

import (
	"io"
	"os"
	"testing"

	"github.com/brettbedarf/inodefs/internal/util"
)

func TestMain(m *testing.M) {
	// route component loggers through the configured level, silently
	util.InitializeLogger(createTestConfig().LogLvl, io.Discard)
	os.Exit(m.Run())
}
