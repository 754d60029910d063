package logger

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// LoggerTestSuite logger 测试套件.
type LoggerTestSuite struct {
	suite.Suite
	tmpDir string
}

func TestLoggerSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) SetupTest() {
	s.tmpDir = s.T().TempDir()
}

func (s *LoggerTestSuite) TestNewLogger_NilConfig() {
	log, err := NewLogger(nil)
	s.Error(err)
	s.Nil(log)

	var cfgErr *ConfigError
	s.True(errors.As(err, &cfgErr))
	s.Equal("config", cfgErr.Field)
}

func (s *LoggerTestSuite) TestNewLogger_DefaultConfig() {
	log, err := NewLogger(DefaultConfig())
	s.NoError(err)
	s.NotNil(log)
	s.NoError(log.Close())
}

func (s *LoggerTestSuite) TestNewLogger_InvalidFields() {
	cases := []struct {
		name  string
		cfg   *Config
		field string
	}{
		{"level", &Config{Level: "verbose"}, "level"},
		{"format", &Config{Format: "xml"}, "format"},
		{"output", &Config{Output: "syslog"}, "output"},
		{"file without path", &Config{Output: OutputFile}, "log_file"},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			log, err := NewLogger(tc.cfg)
			s.Nil(log)

			var cfgErr *ConfigError
			s.Require().True(errors.As(err, &cfgErr))
			s.Equal(tc.field, cfgErr.Field)
		})
	}
}

func (s *LoggerTestSuite) TestFileOutput_JSON() {
	path := filepath.Join(s.tmpDir, "dsctl.log")
	log, err := NewLogger(&Config{
		Level:   LevelDebug,
		Format:  FormatJSON,
		Output:  OutputFile,
		LogFile: path,
	})
	s.Require().NoError(err)

	log.With(Int("index", 3), String("op", "union")).Debugf("merged %d groups", 2)
	log.Info("done")
	s.Require().NoError(log.Close())

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	out := string(data)
	s.Contains(out, `"msg":"merged 2 groups"`)
	s.Contains(out, `"index":3`)
	s.Contains(out, `"op":"union"`)
	s.Contains(out, `"msg":"done"`)
}

func (s *LoggerTestSuite) TestFileOutput_LevelFilter() {
	path := filepath.Join(s.tmpDir, "warn.log")
	log, err := NewLogger(&Config{
		Level:   LevelWarn,
		Format:  FormatConsole,
		Output:  OutputFile,
		LogFile: path,
	})
	s.Require().NoError(err)

	log.Info("hidden")
	log.Warnf("visible %s", "warning")
	log.With(Err(errors.New("boom"))).Error("failed")
	s.Require().NoError(log.Close())

	data, err := os.ReadFile(path)
	s.Require().NoError(err)
	out := string(data)
	s.NotContains(out, "hidden")
	s.Contains(out, "visible warning")
	s.Contains(out, "boom")
}

func (s *LoggerTestSuite) TestFileOutput_BadPath() {
	log, err := NewLogger(&Config{
		Output:  OutputFile,
		LogFile: filepath.Join(s.tmpDir, "missing", "dir", "x.log"),
	})
	s.Error(err)
	s.Nil(log)
}

func (s *LoggerTestSuite) TestMustNewLogger() {
	s.Panics(func() {
		MustNewLogger(&Config{Level: "nope"})
	})
}

func (s *LoggerTestSuite) TestNop() {
	log := NewNop()
	s.NotPanics(func() {
		log.With(Bool("ok", true), Any("pair", []int{1, 2})).Info("ignored")
	})
	s.NoError(log.Close())
}
