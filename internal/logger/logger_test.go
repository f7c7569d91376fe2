package logger_test

import (
	"os"
	"testing"

	"github.com/Anthya1104/evenodd-raid6/internal/config"
	"github.com/Anthya1104/evenodd-raid6/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		err := logger.InitLogger(config.LogLevelDebug)
		assert.Nil(t, err)
		assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
		_, statErr := os.Stat(config.LogFilePath)
		assert.Nil(t, statErr)
	})

	t.Run("unknown level", func(t *testing.T) {
		err := logger.InitLogger("nonsense")
		assert.NotNil(t, err)
	})
}
