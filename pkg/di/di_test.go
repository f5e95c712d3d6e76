package di_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/eagerbind/pkg/config"
	"github.com/zhulik/eagerbind/pkg/container"
	"github.com/zhulik/eagerbind/pkg/core"
	"github.com/zhulik/eagerbind/pkg/di"
)

var _ = Describe("New", func() {
	Context("when the log level is valid", func() {
		var injector *do.Injector

		BeforeEach(func() {
			injector = lo.Must(di.New(config.Config{LogLevel_: "trace"}))
		})

		It("provides the logger configured with it", func() {
			logger := do.MustInvoke[logrus.FieldLogger](injector)

			Expect(logger).To(BeAssignableToTypeOf(&logrus.Logger{}))
			Expect(logger.(*logrus.Logger).GetLevel()).To(Equal(logrus.TraceLevel)) //nolint:forcetypeassert
		})

		It("provides the given config", func() {
			Expect(do.MustInvoke[core.Config](injector).LogLevel()).To(Equal("trace"))
		})

		It("provides the container", func() {
			Expect(do.MustInvoke[*container.Container](injector)).ToNot(BeNil())
		})
	})

	Context("when the log level is invalid", func() {
		It("returns an error", func() {
			_, err := di.New(config.Config{LogLevel_: "loud"})

			Expect(err).To(MatchError(ContainSubstring("failed parse loglevel")))
		})
	})
})
