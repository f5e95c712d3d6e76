package testhelpers

import (
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/eagerbind/pkg/config"
	"github.com/zhulik/eagerbind/pkg/core"
)

func NewInjector() *do.Injector {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	injector := do.New()
	do.ProvideValue[logrus.FieldLogger](injector, logger)

	do.ProvideValue[core.Config](injector, config.Config{})

	return injector
}
