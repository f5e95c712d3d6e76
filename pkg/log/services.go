package log

import (
	"fmt"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
)

func New(level string) (*logrus.Logger, error) {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed parse loglevel: %w", err)
	}

	logger.SetLevel(logLevel)

	return logger, nil
}

func Register(injector *do.Injector, logger *logrus.Logger) {
	do.ProvideValue[logrus.FieldLogger](injector, logger)
}
